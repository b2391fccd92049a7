// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"

	"github.com/ik5/wavkit/formats/wav"
)

func ExampleEncode() {
	buf, err := wav.Encode([]float64{-1, -0.5, 0, 0.5}, 8000, 16)
	if err != nil {
		fmt.Println(err)
		return
	}

	d, err := wav.ParseHeader(buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(d.NumChannels, d.SampleRate, d.BitsPerSample, d.NumSamples())
	// Output: 1 8000 16 4
}

func ExampleHash() {
	buf, _ := wav.Encode(nil, 8000, 16)
	d, _ := wav.ParseHeader(buf)

	fmt.Println(wav.Hash(buf, d))
	// Output: E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855
}
