// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"strings"
	"testing"

	"github.com/ik5/wavkit/internal/audiotest"
)

func hashOf(t *testing.T, buf []byte) string {
	t.Helper()

	d, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	return Hash(buf, d)
}

func TestHash_KnownPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []int16
		want    string
	}{
		{"empty", nil, "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"},
		{"1 2 3", []int16{1, 2, 3}, "047DBF5366372631BA7E3E02520E651446B899C96C4B64663BAC378A298A7BF7"},
		{"ramp", []int16{-1000, -500, 0, 500, 1000}, "DFEE42846585D7F4936281925D6A50D8B3E87962D4BAD1400A4810EF0EDE65D1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hashOf(t, audiotest.WAV{Samples: tt.samples}.Bytes())
			if got != tt.want {
				t.Errorf("Hash() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHash_IgnoresHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{1, 2, 3}
	want := hashOf(t, audiotest.WAV{Samples: samples}.Bytes())

	for _, w := range []audiotest.WAV{
		{SampleRate: 44100, Samples: samples},
		{FmtSize: 18, Samples: samples},
		{List: []byte("INFO"), Samples: samples},
		{FmtSize: 18, CbSize: 22, List: []byte("INFOICMT\x02\x00\x00\x00hi"), Samples: samples},
	} {
		if got := hashOf(t, w.Bytes()); got != want {
			t.Errorf("Hash(%+v) = %s, want %s", w, got, want)
		}
	}
}

func TestHash_CoversTrailingBytes(t *testing.T) {
	t.Parallel()

	plain := hashOf(t, audiotest.WAV{Samples: []int16{1, 2, 3}}.Bytes())
	trailed := hashOf(t, audiotest.WAV{Samples: []int16{1, 2, 3}, Trailer: []byte("junk\x00\x00\x00\x00")}.Bytes())

	if plain == trailed {
		t.Error("bytes after the data chunk did not change the hash")
	}
}

func TestHash_Format(t *testing.T) {
	t.Parallel()

	got := hashOf(t, audiotest.WAV{Samples: []int16{42, -42}}.Bytes())

	if len(got) != 64 {
		t.Errorf("len(Hash()) = %d, want 64", len(got))
	}
	if got != strings.ToUpper(got) {
		t.Errorf("Hash() = %s, want uppercase", got)
	}
}

func TestHash_OffsetOutOfRange(t *testing.T) {
	t.Parallel()

	const empty = "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"

	if got := Hash([]byte("short"), Descriptor{DataOffset: 44}); got != empty {
		t.Errorf("Hash() = %s, want hash of empty payload", got)
	}
}
