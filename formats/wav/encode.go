// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/wavkit/utils"
)

// Encode returns a complete mono PCM WAV file holding samples.
func Encode(samples []float64, sampleRate, bitsPerSample int) ([]byte, error) {
	return EncodeChannels(samples, 1, sampleRate, bitsPerSample)
}

// EncodeChannels returns a complete PCM WAV file holding the interleaved
// samples of channels channels.
//
// Samples are quantized as floor(s * mag). mag is 2^(bits-1)-1 when the
// positive peak is the larger one and 2^(bits-1) otherwise, so the extreme
// sample always lands inside the signed range. Anything still out of range
// is clamped; NaN is written as 0.
func EncodeChannels(samples []float64, channels, sampleRate, bitsPerSample int) ([]byte, error) {
	switch bitsPerSample {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedSampleWidth, bitsPerSample)
	}

	if channels < 1 || channels > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidFormatChunk, channels)
	}

	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not fill %d-channel frames",
			ErrInvalidFormatChunk, len(samples), channels)
	}

	bytesPerSample := bitsPerSample / 8

	// byte rate and RIFF size are uint32 fields
	if sampleRate < 1 || int64(sampleRate)*int64(channels*bytesPerSample) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidFormatChunk, sampleRate)
	}
	if int64(len(samples))*int64(bytesPerSample)+HeaderSize-8 > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d samples do not fit a WAV file", ErrInvalidFormatChunk, len(samples))
	}

	buf := make([]byte, HeaderSize+len(samples)*bytesPerSample)

	putHeader(buf, channels, sampleRate, bitsPerSample)

	mag := magnitude(samples, bitsPerSample)
	hi := float64(int64(1)<<(bitsPerSample-1) - 1)
	lo := -float64(int64(1) << (bitsPerSample - 1))

	pos := HeaderSize
	for _, s := range samples {
		q := math.Floor(s * mag)
		switch {
		case math.IsNaN(q):
			q = 0
		case q > hi:
			q = hi
		case q < lo:
			q = lo
		}

		putSample(buf[pos:pos+bytesPerSample], int64(q))
		pos += bytesPerSample
	}

	return buf, nil
}

func magnitude(samples []float64, bitsPerSample int) float64 {
	full := float64(int64(1) << (bitsPerSample - 1))

	peakMax, err := utils.Max(samples)
	if err != nil {
		return full
	}
	peakMin, _ := utils.Min(samples)

	if math.Abs(peakMax) > math.Abs(peakMin) {
		return full - 1
	}

	return full
}

func putSample(b []byte, v int64) {
	switch len(b) {
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case 3:
		u := uint32(int32(v))
		b[0] = byte(u)
		b[1] = byte(u >> 8)
		b[2] = byte(u >> 16)
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	}
}

// putHeader fills the first HeaderSize bytes of buf with a canonical header
// whose sizes are derived from len(buf).
func putHeader(buf []byte, channels, sampleRate, bitsPerSample int) {
	bytesPerSample := bitsPerSample / 8

	// RIFF header
	copy(buf[0:4], riffID)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(buf)-8))
	copy(buf[8:12], waveID)

	// fmt chunk
	copy(buf[12:16], fmtID)
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], PCMFormat)
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*channels*bytesPerSample))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(channels*bytesPerSample))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(bitsPerSample))

	// data chunk header
	copy(buf[36:40], dataID)
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(buf)-HeaderSize))
}
