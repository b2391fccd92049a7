// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned by ReadSamples when len(dst) does not
	// hold a whole number of frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	ErrInvalidChannel = errors.New("channel index out of range")
	ErrNoChannels     = errors.New("no channels selected")
)
