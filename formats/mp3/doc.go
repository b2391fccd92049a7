// SPDX-License-Identifier: EPL-2.0

// Package mp3 adapts github.com/hajimehoshi/go-mp3 to audio.Source.
//
// go-mp3 always decodes to 16-bit stereo, so every source reports two
// channels; a mono file shows up as two identical channels. Samples are
// scaled to float64 by 1/32768.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	out, err := wavkit.Render(src, wavkit.RenderOptions{Mix: true, SampleRate: 8000}, 4096)
package mp3
