// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavkit/audio"
)

type wavSource struct {
	payload    []byte
	pos        int
	sampleRate int
	channels   int
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	left := (len(s.payload) - s.pos) / 2
	if left == 0 {
		return 0, io.EOF
	}

	n := min(len(dst), left)
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(s.payload[s.pos : s.pos+2]))
		dst[i] = float64(v) / 32768.0
		s.pos += 2
	}

	if n == left {
		return n, io.EOF
	}

	return n, nil
}

// Decoder adapts a WAV stream to an audio.Source.
type Decoder struct{}

// Decode reads the whole stream, parses its header and serves the
// interleaved samples of its data chunk. Only 16-bit PCM is accepted.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	d, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}

	if d.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedSampleWidth, d.BitsPerSample)
	}

	end := d.DataOffset + int(d.DataChunkSize)
	if end > len(buf) {
		end = len(buf)
	}
	// whole frames only
	frame := int(d.NumChannels) * 2
	end -= (end - d.DataOffset) % frame

	return &wavSource{
		payload:    buf[d.DataOffset:end],
		sampleRate: int(d.SampleRate),
		channels:   int(d.NumChannels),
	}, nil
}
