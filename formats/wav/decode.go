// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

// Decode deinterleaves the PCM payload described by d into one slice of
// normalized samples per channel.
//
// Only 16-bit PCM is supported; the width is checked before any sample
// byte is read.
func Decode(buf []byte, d Descriptor) ([][]float64, error) {
	if d.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedSampleWidth, d.BitsPerSample)
	}

	channels := int(d.NumChannels)
	samples := d.NumSamples()
	need := samples * channels * 2

	if d.DataOffset < 0 || d.DataOffset > len(buf) || len(buf)-d.DataOffset < need {
		return nil, fmt.Errorf("%w: payload needs %d bytes at offset %d, have %d",
			ErrTruncatedFile, need, d.DataOffset, len(buf)-d.DataOffset)
	}

	norm := 1.0 / float64(int(1)<<(d.BitsPerSample-1))

	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, samples)
	}

	pos := d.DataOffset
	for i := range samples {
		for ch := range channels {
			v := int16(binary.LittleEndian.Uint16(buf[pos : pos+2]))
			out[ch][i] = float64(v) * norm
			pos += 2
		}
	}

	return out, nil
}
