// SPDX-License-Identifier: EPL-2.0

// Package wavkit reads, rewrites and converts PCM WAV files.
//
// The module is split by concern:
//   - formats/wav parses, decodes, encodes and hashes RIFF/WAVE buffers
//   - wavfile is the file-level facade: read, write, copy, hash, normalize
//   - convert turns other audio into 8 kHz PCM WAV, through ffmpeg or the
//     native pipeline, one file or a whole directory at a time
//   - audio and formats/{mp3,vorbis,aiff,flac} are the decoders and sample
//     processors the native pipeline is built from
//
// This package holds the pipeline glue. Render runs a decoded source
// through channel selection, mono mixing and resampling:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	out, err := wavkit.Render(src, wavkit.RenderOptions{Mix: true, SampleRate: 8000}, 4096)
//
// ResampleToMono is the shortcut for the common mono case.
package wavkit
