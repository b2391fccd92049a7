// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrTruncatedFile          = errors.New("truncated WAV file")
	ErrInvalidHeader          = errors.New("invalid header")
	ErrInvalidFormat          = errors.New("invalid format")
	ErrMissingFmtChunk        = errors.New("missing chunk: fmt ")
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
	ErrInvalidFormatChunk     = errors.New("invalid chunk: format")
	ErrMissingDataChunk       = errors.New("missing chunk: data")
	ErrUnsupportedChunk       = errors.New("unsupported chunk")
	ErrUnsupportedSampleWidth = errors.New("unsupported sample width")
)

// ChunkError reports a chunk that may not appear where it was found.
// It matches ErrUnsupportedChunk with errors.Is.
type ChunkError struct {
	ID string
}

func (e *ChunkError) Error() string {
	return ErrUnsupportedChunk.Error() + ": " + e.ID
}

func (e *ChunkError) Is(target error) bool {
	return target == ErrUnsupportedChunk
}
