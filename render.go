// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"fmt"

	"github.com/ik5/wavkit/audio"
)

// RenderOptions selects what Render does to a source.
type RenderOptions struct {
	// Channels lists the zero based input channels to keep, in output
	// order. Nil keeps every channel.
	Channels []int

	// Mix averages the kept channels down to mono.
	Mix bool

	// SampleRate is the output rate in Hz. Zero keeps the source rate.
	SampleRate int
}

// Rendered is the collected output of Render.
type Rendered struct {
	Samples    []float64 // interleaved
	SampleRate int
	Channels   int
}

// Render drains src through a channel select -> mono mix -> resample
// pipeline and returns every output sample. Stages that would not change
// anything are left out, so a mono source rendered at its own rate comes
// back sample for sample.
//
// bufferSize is the read size used while collecting. Render does not close
// src.
func Render(src audio.Source, opts RenderOptions, bufferSize int) (Rendered, error) {
	var (
		stage audio.Source = src
		err   error
	)

	if len(opts.Channels) > 0 {
		stage, err = audio.NewChannelSelector(stage, opts.Channels)
		if err != nil {
			return Rendered{}, fmt.Errorf("%w", err)
		}
	}

	if opts.Mix && stage.Channels() > 1 {
		stage = audio.NewMonoMixer(stage)
	}

	if opts.SampleRate > 0 && opts.SampleRate != stage.SampleRate() {
		stage = audio.NewResampler(stage, opts.SampleRate)
	}

	samples, err := audio.Collect(stage, bufferSize)
	if err != nil {
		return Rendered{}, fmt.Errorf("%w", err)
	}

	return Rendered{
		Samples:    samples,
		SampleRate: stage.SampleRate(),
		Channels:   stage.Channels(),
	}, nil
}

// ResampleToMono mixes src down to one channel at targetRate and returns
// the samples together with the output rate.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono, rate, err := wavkit.ResampleToMono(src, 8000, 4096)
func ResampleToMono(src audio.Source, targetRate int, bufferSize int) ([]float64, int, error) {
	out, err := Render(src, RenderOptions{Mix: true, SampleRate: targetRate}, bufferSize)
	if err != nil {
		return nil, targetRate, err
	}

	return out.Samples, out.SampleRate, nil
}
