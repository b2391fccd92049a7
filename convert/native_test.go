// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavkit/formats/wav"
	"github.com/ik5/wavkit/wavfile"
)

func writeInput(t *testing.T, name string, samples []float64, channels, rate int) string {
	t.Helper()

	buf, err := wav.EncodeChannels(samples, channels, rate, 16)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	return path
}

func TestNative_MixAndResample(t *testing.T) {
	t.Parallel()

	const frames = 1600

	samples := make([]float64, 0, frames*2)
	for i := range frames {
		v := 0.5 * math.Sin(2*math.Pi*440*float64(i)/16000)
		samples = append(samples, v, -v)
	}

	in := writeInput(t, "stereo.wav", samples, 2, 16000)
	out := filepath.Join(t.TempDir(), "mono.wav")

	n := NewNative(nil)
	require.NoError(t, n.Convert(context.Background(), in, out, Options{Mix: true}))

	f, err := wavfile.New(nil).Read(out, wavfile.Options{})
	require.NoError(t, err)

	assert.EqualValues(t, 1, f.NumChannels)
	assert.EqualValues(t, DefaultSampleRate, f.SampleRate)
	assert.EqualValues(t, 16, f.BitsPerSample)
	assert.Equal(t, frames/2, f.NumSamples())
}

func TestNative_SelectChannel(t *testing.T) {
	t.Parallel()

	// left and right of four frames; the right channel survives 16-bit
	// quantization exactly in both directions
	in := writeInput(t, "stereo.wav", []float64{
		-1, -0.5,
		0.5, 0.25,
		0.25, 0.125,
		-0.5, -0.25,
	}, 2, 16000)
	out := filepath.Join(t.TempDir(), "right.wav")

	err := NewNative(nil).Convert(context.Background(), in, out, Options{
		Channels:   []int{1},
		SampleRate: 16000,
	})
	require.NoError(t, err)

	f, err := wavfile.New(nil).Read(out, wavfile.Options{Data: true})
	require.NoError(t, err)

	assert.EqualValues(t, 16000, f.SampleRate)
	require.Len(t, f.Data, 1)
	assert.Equal(t, []float64{-0.5, 0.25, 0.125, -0.25}, f.Data[0])
}

func TestNative_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("this is not a wav file at all, just some text"), 0o644))

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello"), 0o644))

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()

		err := NewNative(nil).Convert(context.Background(), text, filepath.Join(t.TempDir(), "o.wav"), Options{})
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("undecodable input", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "o.wav")

		err := NewNative(nil).Convert(context.Background(), garbage, out, Options{})
		assert.ErrorIs(t, err, ErrConversionFailed)
		assert.ErrorIs(t, err, wav.ErrInvalidHeader)
		assert.NoFileExists(t, out)
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		err := NewNative(nil).Convert(context.Background(), filepath.Join(dir, "absent.wav"), filepath.Join(t.TempDir(), "o.wav"), Options{})
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.NotErrorIs(t, err, ErrConversionFailed)
	})

	t.Run("invalid channel", func(t *testing.T) {
		t.Parallel()

		in := writeInput(t, "mono.wav", []float64{0, 0.5}, 1, 8000)

		err := NewNative(nil).Convert(context.Background(), in, filepath.Join(t.TempDir(), "o.wav"), Options{Channels: []int{3}})
		assert.ErrorIs(t, err, ErrConversionFailed)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		in := writeInput(t, "mono.wav", []float64{0, 0.5}, 1, 8000)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewNative(nil).Convert(ctx, in, filepath.Join(t.TempDir(), "o.wav"), Options{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"aif", "aiff", "flac", "mp3", "oga", "ogg", "wav", "wave"},
		DefaultRegistry().Formats())
}
