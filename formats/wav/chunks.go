// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ChunkInfo describes one top-level chunk of a RIFF/WAVE stream.
type ChunkInfo struct {
	ID   string
	Size int
}

// Chunks walks every top-level chunk of the WAVE stream read from r,
// including the ones ParseHeader never looks at (anything after data).
func Chunks(r io.Reader) ([]ChunkInfo, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedFile, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	if p.ID != riff.RiffID {
		return nil, ErrInvalidHeader
	}
	if p.Format != riff.WavFormatID {
		return nil, ErrInvalidFormat
	}

	var chunks []ChunkInfo
	for {
		ch, err := p.NextChunk()
		if errors.Is(err, io.EOF) {
			return chunks, nil
		}
		if err != nil {
			return chunks, fmt.Errorf("%w: %w", ErrTruncatedFile, err)
		}

		chunks = append(chunks, ChunkInfo{ID: string(ch.ID[:]), Size: ch.Size})
		ch.Drain()
	}
}
