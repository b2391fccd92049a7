// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Waveform returns the sample of channel ch at frame i.
type Waveform func(i, ch int) float64

// Generate renders frames frames of w, interleaved, into a SliceSource.
func Generate(sampleRate, channels, frames int, w Waveform) *SliceSource {
	samples := make([]float64, 0, frames*channels)
	for i := range frames {
		for ch := range channels {
			samples = append(samples, w(i, ch))
		}
	}

	return NewSliceSource(sampleRate, channels, samples)
}

func NewSilentSource(sampleRate, channels, frames int) *SliceSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float64) *SliceSource {
	return Generate(sampleRate, channels, frames, func(int, int) float64 { return value })
}

// NewSineSource plays the same sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *SliceSource {
	step := 2 * math.Pi * frequency / float64(sampleRate)

	return Generate(sampleRate, channels, frames, func(i, _ int) float64 {
		return math.Sin(step * float64(i))
	})
}
