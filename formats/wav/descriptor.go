// SPDX-License-Identifier: EPL-2.0

package wav

import "time"

// Canonical chunk identifiers.
const (
	riffID = "RIFF"
	waveID = "WAVE"
	fmtID  = "fmt "
	listID = "LIST"
	dataID = "data"
)

// PCMFormat is the fmt chunk audio format tag of linear PCM.
const PCMFormat = 1

// HeaderSize is the length of the canonical header written by Encode.
const HeaderSize = 44

// Descriptor is the validated header of a WAV file.
//
// CbSize is only meaningful when Subchunk1Size is 18 and ListChunkSize only
// when Subchunk2ID is "LIST". DataOffset is the index of the first PCM byte
// in the buffer the descriptor was parsed from.
type Descriptor struct {
	ChunkID       string
	ChunkSize     uint32
	Format        string
	Subchunk1ID   string
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	CbSize        uint16
	Subchunk2ID   string
	ListChunkSize uint32
	DataChunkSize uint32
	DataOffset    int
}

// NumSamples returns the number of samples per channel in the data chunk.
//
// BlockAlign already spans every channel of a frame, so the frame count is
// the per-channel sample count.
func (d Descriptor) NumSamples() int {
	if d.BlockAlign == 0 {
		return 0
	}

	return int(d.DataChunkSize / uint32(d.BlockAlign))
}

// Seconds returns the playing time of the data chunk in seconds.
func (d Descriptor) Seconds() float64 {
	if d.SampleRate == 0 {
		return 0
	}

	return float64(d.NumSamples()) / float64(d.SampleRate)
}

// Duration returns the playing time of the data chunk.
func (d Descriptor) Duration() time.Duration {
	return time.Duration(d.Seconds() * float64(time.Second))
}
