// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/wavkit/audio"
)

// valueReader is the part of oggvorbis.Reader the source uses. Read fills
// p with interleaved values and returns how many it wrote.
type valueReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec        valueReader
	sampleRate int
	channels   int
	buf        []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) }

func (s *source) ReadSamples(dst []float64) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	buf := s.buf[:want]

	n, err := s.dec.Read(buf)
	for i, v := range buf[:n] {
		dst[i] = float64(v)
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
	}

	return newSource(dec), nil
}

func newSource(dec valueReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   max(dec.Channels(), 1),
		buf:        make([]float32, 4096),
	}
}
