// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample pipeline the native converter is built from.
//
// # Source Interface
//
// Every decoder and processor implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float64 values in [-1.0, 1.0]. ReadSamples returns
// io.EOF once the stream is finished, possibly together with the last samples.
//
// # Processors
//
//   - ChannelSelector keeps a subset of the input channels
//   - MonoMixer averages every frame down to one channel
//   - Resampler changes the sample rate with cubic interpolation and a
//     one-pole low-pass when downsampling
//
// They chain in any order:
//
//	sel, _ := audio.NewChannelSelector(src, []int{0})
//	res := audio.NewResampler(sel, 8000)
//	samples, err := audio.Collect(res, 4096)
//
// # Format Registry
//
// Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
package audio
