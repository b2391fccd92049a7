// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/mewkiz/flac/frame"
)

type fakeStream struct {
	frames []*frame.Frame
	err    error
	closed bool
}

func (f *fakeStream) ParseNext() (*frame.Frame, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.frames) == 0 {
		return nil, io.EOF
	}

	next := f.frames[0]
	f.frames = f.frames[1:]

	return next, nil
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

func stereoFrame(left, right []int32) *frame.Frame {
	return &frame.Frame{
		Subframes: []*frame.Subframe{
			{Samples: left, NSamples: len(left)},
			{Samples: right, NSamples: len(right)},
		},
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	want := []float64{0.5, -0.5, 0.25, -0.25, -1, 0, 0.125, 0.75}

	for _, size := range []int{2, 3, 4, 6, 64} {
		stream := &fakeStream{frames: []*frame.Frame{
			stereoFrame([]int32{16384, 8192}, []int32{-16384, -8192}),
			stereoFrame([]int32{-32768, 4096}, []int32{0, 24576}),
		}}
		s := newSource(stream, 44100, 2, 16)

		var got []float64
		buf := make([]float64, size)

		for {
			n, err := s.ReadSamples(buf)
			got = append(got, buf[:n]...)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("size %d: ReadSamples() error = %v", size, err)
			}
		}

		if !slices.Equal(got, want) {
			t.Errorf("size %d: samples = %v, want %v", size, got, want)
		}
	}
}

func TestSource_Scale(t *testing.T) {
	t.Parallel()

	stream := &fakeStream{frames: []*frame.Frame{{
		Subframes: []*frame.Subframe{{Samples: []int32{-8388608, 4194304}, NSamples: 2}},
	}}}
	s := newSource(stream, 96000, 1, 24)

	dst := make([]float64, 4)

	n, err := s.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = %d, %v; want 2, EOF", n, err)
	}
	if !slices.Equal(dst[:2], []float64{-1, 0.5}) {
		t.Errorf("samples = %v, want [-1 0.5]", dst[:2])
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	broken := newSource(&fakeStream{err: io.ErrUnexpectedEOF}, 8000, 1, 16)
	if _, err := broken.ReadSamples(make([]float64, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}

	mismatch := newSource(&fakeStream{frames: []*frame.Frame{
		stereoFrame([]int32{1}, []int32{2}),
	}}, 8000, 1, 16)
	if _, err := mismatch.ReadSamples(make([]float64, 4)); !errors.Is(err, ErrInvalidStream) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidStream", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	stream := &fakeStream{}

	if err := newSource(stream, 8000, 1, 16).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !stream.closed {
		t.Error("Close() did not close the stream")
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, in := range [][]byte{nil, []byte("RIFF\x24\x00\x00\x00WAVEfmt ")} {
		_, err := Decoder{}.Decode(bytes.NewReader(in))
		if !errors.Is(err, ErrInvalidStream) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidStream", in, err)
		}
	}
}
