// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	// ErrConversionFailed is returned when a conversion ran but produced no
	// usable output.
	ErrConversionFailed = errors.New("conversion failed")

	// ErrUnknownFormat is returned by Native for inputs without a registered decoder.
	ErrUnknownFormat = errors.New("unknown input format")

	// ErrSameDirectory is returned by Watch when its output would land in
	// the watched directory.
	ErrSameDirectory = errors.New("origin and destination are the same directory")
)
