// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const maxEmptyReads = 100

// Collect drains src and returns every interleaved sample it produced.
// bufferSize is the read size and is rounded down to whole frames.
func Collect(src Source, bufferSize int) ([]float64, error) {
	channels := max(src.Channels(), 1)
	bufferSize -= bufferSize % channels
	if bufferSize <= 0 {
		bufferSize = channels
	}

	var out []float64
	buf := make([]float64, bufferSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return out, io.ErrNoProgress
		}
	}
}
