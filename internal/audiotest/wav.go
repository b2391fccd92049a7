// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV describes a RIFF/WAVE buffer to build for a test. Zero values pick
// 8 kHz mono 16-bit PCM with a 16-byte fmt chunk.
type WAV struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	AudioFormat   int
	FmtSize       int    // 16 or 18; anything else is written as given
	CbSize        uint16 // written only when FmtSize is 18
	List          []byte // payload of a LIST chunk placed before data, when not nil
	Samples       []int16
	Raw           []byte // data payload used instead of Samples, when not nil
	Trailer       []byte // bytes appended after the data chunk
}

// Bytes serializes w.
func (w WAV) Bytes() []byte {
	rate := orDefault(w.SampleRate, 8000)
	channels := orDefault(w.Channels, 1)
	bits := orDefault(w.BitsPerSample, 16)
	format := orDefault(w.AudioFormat, 1)
	fmtSize := orDefault(w.FmtSize, 16)

	payload := w.Raw
	if payload == nil {
		payload = make([]byte, 2*len(w.Samples))
		for i, s := range w.Samples {
			binary.LittleEndian.PutUint16(payload[2*i:], uint16(s))
		}
	}

	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	body.WriteString("fmt ")
	le(body, uint32(fmtSize))
	le(body, uint16(format))
	le(body, uint16(channels))
	le(body, uint32(rate))
	le(body, uint32(rate*channels*bits/8))
	le(body, uint16(channels*bits/8))
	le(body, uint16(bits))
	if fmtSize == 18 {
		le(body, w.CbSize)
	}

	if w.List != nil {
		body.WriteString("LIST")
		le(body, uint32(len(w.List)))
		body.Write(w.List)
	}

	body.WriteString("data")
	le(body, uint32(len(payload)))
	body.Write(payload)
	body.Write(w.Trailer)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	le(out, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

// HeaderLen returns the offset of the first payload byte in w.Bytes().
func (w WAV) HeaderLen() int {
	n := 12 + 8 + orDefault(w.FmtSize, 16) + 8
	if w.List != nil {
		n += 8 + len(w.List)
	}

	return n
}

func le(buf *bytes.Buffer, v any) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}

	return v
}
