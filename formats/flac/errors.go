// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrInvalidStream is returned when the input has no fLaC signature or
	// STREAMINFO block.
	ErrInvalidStream = errors.New("invalid FLAC stream")

	// ErrUnsupportedBitDepth is returned for sample widths outside 4..32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)
