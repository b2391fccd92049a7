// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/wavkit/internal/audiotest"
)

// stallSource never produces samples and never ends.
type stallSource struct{ audiotest.SliceSource }

func (*stallSource) ReadSamples([]float64) (int, error) { return 0, nil }

type failSource struct {
	*audiotest.SliceSource
	err error
}

func (f *failSource) ReadSamples(dst []float64) (int, error) {
	dst[0] = 1
	return 1, f.err
}

func TestCollect(t *testing.T) {
	t.Parallel()

	samples := []float64{0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4}

	for _, size := range []int{1, 2, 3, 4, 5, 64} {
		src := audiotest.NewSliceSource(8000, 2, samples)

		got, err := Collect(src, size)
		if err != nil {
			t.Fatalf("Collect(size %d) error = %v", size, err)
		}
		if !slices.Equal(got, samples) {
			t.Errorf("Collect(size %d) = %v, want %v", size, got, samples)
		}
	}
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	got, err := Collect(audiotest.NewSliceSource(8000, 1, nil), 16)
	if err != nil || len(got) != 0 {
		t.Errorf("Collect() = %v, %v; want empty, nil", got, err)
	}
}

func TestCollect_NoProgress(t *testing.T) {
	t.Parallel()

	src := &stallSource{*audiotest.NewSliceSource(8000, 1, nil)}

	_, err := Collect(src, 16)
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Collect() error = %v, want io.ErrNoProgress", err)
	}
}

func TestCollect_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := &failSource{SliceSource: audiotest.NewSliceSource(8000, 1, nil), err: boom}

	got, err := Collect(src, 4)
	if !errors.Is(err, boom) {
		t.Fatalf("Collect() error = %v, want %v", err, boom)
	}
	if !slices.Equal(got, []float64{1}) {
		t.Errorf("Collect() kept %v, want the samples read before the error", got)
	}
}
