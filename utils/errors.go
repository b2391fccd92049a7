// SPDX-License-Identifier: EPL-2.0

package utils

import "errors"

var (
	// ErrEmpty is returned by reductions over an empty sequence.
	ErrEmpty = errors.New("empty sample sequence")

	// ErrLengthMismatch is returned by elementwise operations on sequences of different length.
	ErrLengthMismatch = errors.New("sample sequences differ in length")

	// ErrZeroPeak is returned when a signal with no non-zero sample is peak normalized.
	ErrZeroPeak = errors.New("peak amplitude is zero")
)
