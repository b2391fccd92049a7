// SPDX-License-Identifier: EPL-2.0

package wavkit_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/formats/wav"
)

// Example_render decodes a stereo file, keeps its second channel and
// halves the rate.
func Example_render() {
	buf, err := wav.EncodeChannels([]float64{-1, 0.5, -0.5, 0.25, 0, 0, 0.5, -0.25}, 2, 16000, 16)
	if err != nil {
		fmt.Println(err)
		return
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(buf))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer src.Close()

	out, err := wavkit.Render(src, wavkit.RenderOptions{Channels: []int{1}, SampleRate: 8000}, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d samples, %d channel, %d Hz\n", len(out.Samples), out.Channels, out.SampleRate)
	// Output: 2 samples, 1 channel, 8000 Hz
}

// Example_resampleToMono is the telephony case: anything in, 8 kHz mono out.
func Example_resampleToMono() {
	buf, _ := wav.EncodeChannels(make([]float64, 2*44100), 2, 44100, 16)
	src, _ := wav.Decoder{}.Decode(bytes.NewReader(buf))

	samples, rate, err := wavkit.ResampleToMono(src, 8000, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %.1f seconds\n", rate, float64(len(samples))/float64(rate))
	// Output: 8000 Hz, 1.0 seconds
}

// Example_errorHandling shows how header errors surface through the decoder.
func Example_errorHandling() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("not an audio file")))
	if err == wav.ErrInvalidHeader {
		fmt.Println("not a WAV file")
	}
	// Output: not a WAV file
}
