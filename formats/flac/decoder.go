// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/wavkit/audio"
)

// frameParser is the part of flac.Stream the source uses.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source interleaves the subframes of one FLAC frame at a time.
type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	scale      float64

	pending []float64 // interleaved samples of the current frame not yet read
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// next decodes one frame into s.pending.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d subframes, stream has %d channels",
			ErrInvalidStream, len(f.Subframes), s.channels)
	}

	n := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:] {
		n = min(n, len(sub.Samples))
	}

	s.pending = s.pending[:0]
	for i := range n {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, float64(sub.Samples[i])/s.scale)
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	written := 0
	for written < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.next(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:want], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if s.eof && len(s.pending) == 0 {
		return written, io.EOF
	}

	return written, nil
}

type Decoder struct{}

// Decode reads the STREAMINFO block of r and streams its frames. Samples
// are scaled by the full-scale value of the stream's bit depth.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
	}

	info := stream.Info
	bits := int(info.BitsPerSample)
	if bits < 4 || bits > 32 {
		_ = stream.Close()
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), bits), nil
}

func newSource(stream frameParser, sampleRate, channels, bits int) *source {
	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
		scale:      float64(int64(1) << (bits - 1)),
	}
}
