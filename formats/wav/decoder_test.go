// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/wavkit/internal/audiotest"
)

func TestDecoder_Source(t *testing.T) {
	t.Parallel()

	buf := audiotest.WAV{
		SampleRate: 16000,
		Channels:   2,
		Samples:    []int16{16384, -16384, 8192, -8192},
	}.Bytes()

	src, err := Decoder{}.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 16000 || src.Channels() != 2 {
		t.Errorf("format = %d Hz, %d channels; want 16000 Hz, 2 channels", src.SampleRate(), src.Channels())
	}

	dst := make([]float64, 3)

	n, err := src.ReadSamples(dst)
	if n != 3 || err != nil {
		t.Fatalf("first ReadSamples() = %d, %v; want 3, nil", n, err)
	}
	if diff := cmp.Diff([]float64{0.5, -0.5, 0.25}, dst); diff != "" {
		t.Errorf("first read mismatch (-want +got):\n%s", diff)
	}

	n, err = src.ReadSamples(dst)
	if n != 1 || !errors.Is(err, io.EOF) {
		t.Fatalf("second ReadSamples() = %d, %v; want 1, EOF", n, err)
	}
	if dst[0] != -0.25 {
		t.Errorf("last sample = %v, want -0.25", dst[0])
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, EOF", n, err)
	}
}

func TestDecoder_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	buf := audiotest.WAV{Channels: 2, Raw: []byte{1, 0, 2, 0, 3, 0}}.Bytes()

	src, err := Decoder{}.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float64, 8)

	n, err := src.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v; want 2, EOF", n, err)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"not RIFF", []byte("ID3\x03\x00\x00\x00\x00\x00\x00"), ErrInvalidHeader},
		{"8-bit", audiotest.WAV{BitsPerSample: 8, Raw: []byte{0x80}}.Bytes(), ErrUnsupportedSampleWidth},
		{"float", audiotest.WAV{AudioFormat: 3, Samples: []int16{0}}.Bytes(), ErrUnsupportedAudioFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
