// SPDX-License-Identifier: EPL-2.0

// Package wav parses, decodes, encodes and hashes RIFF/WAVE files.
//
// # Header
//
// ParseHeader validates a whole file held in memory and returns its
// Descriptor. Chunks are expected in the order RIFF, fmt, optional LIST,
// data. The fmt chunk must describe linear PCM and be 16 or 18 bytes long.
// Every read is bounds checked, so a short buffer yields ErrTruncatedFile
// instead of a panic.
//
//	buf, _ := os.ReadFile("tone.wav")
//	d, err := wav.ParseHeader(buf)
//	if errors.Is(err, wav.ErrUnsupportedAudioFormat) {
//	    // not PCM
//	}
//
// Chunks lists every top-level chunk of a stream, including chunks found
// after data, using github.com/go-audio/riff.
//
// # Samples
//
// Decode turns a 16-bit payload into one []float64 per channel with values
// in [-1, 1). Encode and EncodeChannels go the other way and produce a
// complete file with a canonical 44-byte header at 16, 24 or 32 bits.
//
//	buf, err := wav.Encode(samples, 8000, 16)
//
// Decoder adapts a WAV stream to audio.Source so it can feed the resampler
// and the other processors of package audio.
//
// # Hash
//
// Hash is the uppercase hex SHA-256 of the bytes from DataOffset to the end
// of the file. Header rewrites leave it unchanged.
package wav
