// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavkit/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
)

// pcmReader is the part of gomp3.Decoder the source uses.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float64) (int, error) {
	// whole frames only, so the stereo interleave never slips
	want := len(dst) - len(dst)%channels
	if want == 0 {
		return 0, nil
	}

	need := want * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	n, err := io.ReadFull(s.dec, buf)
	switch err {
	case nil:
	case io.ErrUnexpectedEOF:
		err = io.EOF
	case io.EOF:
		return 0, io.EOF
	default:
		err = fmt.Errorf("%w", err)
	}

	samples := n / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[i*bytesPerSample:]))
		dst[i] = float64(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

// Decode prepares r for streaming. Mono files come out as two identical
// channels.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
	}

	return newSource(dec), nil
}

func newSource(dec pcmReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}
