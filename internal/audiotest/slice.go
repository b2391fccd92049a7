// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// SliceSource serves a fixed set of interleaved samples.
type SliceSource struct {
	sampleRate int
	channels   int
	samples    []float64
	pos        int
	closed     bool
}

func NewSliceSource(sampleRate, channels int, samples []float64) *SliceSource {
	return &SliceSource{sampleRate: sampleRate, channels: channels, samples: samples}
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return s.channels }
func (s *SliceSource) BufSize() int    { return 4096 }

func (s *SliceSource) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *SliceSource) Closed() bool { return s.closed }

func (s *SliceSource) ReadSamples(dst []float64) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}

	return n, nil
}
