// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

// cursor reads little-endian fields from a byte slice without ever reading
// past its end.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) take(n int, field string) ([]byte, error) {
	if n < 0 || len(c.buf)-c.pos < n {
		return nil, fmt.Errorf("%w: reading %s at offset %d", ErrTruncatedFile, field, c.pos)
	}

	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

func (c *cursor) id(field string) (string, error) {
	b, err := c.take(4, field)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (c *cursor) u16(field string) (uint16, error) {
	b, err := c.take(2, field)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32(field string) (uint32, error) {
	b, err := c.take(4, field)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) skip(n uint32, field string) error {
	if uint64(len(c.buf)-c.pos) < uint64(n) {
		return fmt.Errorf("%w: skipping %d bytes of %s at offset %d", ErrTruncatedFile, n, field, c.pos)
	}

	c.pos += int(n)

	return nil
}

// stage consumes one region of the header and returns the stage that parses
// the next one. A nil stage with a nil error ends parsing.
type stage func(c *cursor, d *Descriptor) (stage, error)

// ParseHeader parses the header of the WAV file held in buf.
//
// The chunks must appear in the order RIFF, fmt, optional LIST, data. The fmt
// chunk may be 16 or 18 bytes long. Nothing past the data chunk header is
// inspected.
func ParseHeader(buf []byte) (Descriptor, error) {
	var d Descriptor

	c := &cursor{buf: buf}
	for st := stage(parseRIFF); st != nil; {
		next, err := st(c, &d)
		if err != nil {
			return Descriptor{}, err
		}
		st = next
	}

	d.DataOffset = c.pos

	return d, nil
}

func parseRIFF(c *cursor, d *Descriptor) (stage, error) {
	var err error

	d.ChunkID, err = c.id("chunk id")
	if err != nil || d.ChunkID != riffID {
		return nil, ErrInvalidHeader
	}

	if d.ChunkSize, err = c.u32("chunk size"); err != nil {
		return nil, err
	}

	if d.Format, err = c.id("format"); err != nil {
		return nil, err
	}
	if d.Format != waveID {
		return nil, ErrInvalidFormat
	}

	return parseFmt, nil
}

func parseFmt(c *cursor, d *Descriptor) (stage, error) {
	var err error

	if d.Subchunk1ID, err = c.id("fmt chunk id"); err != nil {
		return nil, err
	}
	if d.Subchunk1ID != fmtID {
		return nil, ErrMissingFmtChunk
	}

	if d.Subchunk1Size, err = c.u32("fmt chunk size"); err != nil {
		return nil, err
	}

	if d.AudioFormat, err = c.u16("audio format"); err != nil {
		return nil, err
	}
	if d.AudioFormat != PCMFormat {
		return nil, ErrUnsupportedAudioFormat
	}

	if d.NumChannels, err = c.u16("channel count"); err != nil {
		return nil, err
	}
	if d.SampleRate, err = c.u32("sample rate"); err != nil {
		return nil, err
	}
	if d.ByteRate, err = c.u32("byte rate"); err != nil {
		return nil, err
	}
	if d.BlockAlign, err = c.u16("block align"); err != nil {
		return nil, err
	}
	if d.BitsPerSample, err = c.u16("bits per sample"); err != nil {
		return nil, err
	}

	switch d.Subchunk1Size {
	case 16:
	case 18:
		if d.CbSize, err = c.u16("extension size"); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidFormatChunk
	}

	if d.NumChannels == 0 || d.BlockAlign == 0 {
		return nil, ErrInvalidFormatChunk
	}

	return parseSecondChunk, nil
}

func parseSecondChunk(c *cursor, d *Descriptor) (stage, error) {
	var err error

	if d.Subchunk2ID, err = c.id("chunk id"); err != nil {
		return nil, err
	}

	switch d.Subchunk2ID {
	case listID:
		return parseList, nil
	case dataID:
		return parseData, nil
	default:
		return nil, &ChunkError{ID: d.Subchunk2ID}
	}
}

func parseList(c *cursor, d *Descriptor) (stage, error) {
	var err error

	if d.ListChunkSize, err = c.u32("LIST chunk size"); err != nil {
		return nil, err
	}
	if err = c.skip(d.ListChunkSize, "LIST chunk"); err != nil {
		return nil, err
	}

	id, err := c.id("data chunk id")
	if err != nil {
		return nil, err
	}
	if id != dataID {
		return nil, ErrMissingDataChunk
	}

	return parseData, nil
}

func parseData(c *cursor, d *Descriptor) (stage, error) {
	var err error

	if d.DataChunkSize, err = c.u32("data chunk size"); err != nil {
		return nil, err
	}

	return nil, nil
}
