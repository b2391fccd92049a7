// SPDX-License-Identifier: EPL-2.0

package convert

import "context"

// DefaultSampleRate is used when Options.SampleRate is zero.
const DefaultSampleRate = 8000

// Options describes the PCM WAV a conversion produces.
type Options struct {
	// Channels lists the zero based input channels to keep. Nil keeps all.
	Channels []int

	// Mix downmixes the output to a single channel.
	Mix bool

	// SampleRate of the output in Hz, DefaultSampleRate when zero.
	SampleRate int
}

func (o Options) rate() int {
	if o.SampleRate <= 0 {
		return DefaultSampleRate
	}

	return o.SampleRate
}

// Converter turns the audio file in into a PCM WAV file at out.
type Converter interface {
	Convert(ctx context.Context, in, out string, opts Options) error
}
