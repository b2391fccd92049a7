// SPDX-License-Identifier: EPL-2.0

package wavfile

import "errors"

var (
	// ErrUnsupportedChannelCount is returned by Normalize for anything but mono.
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")

	// ErrHashUnavailable is returned by Hash when no digest could be produced.
	ErrHashUnavailable = errors.New("hash unavailable")

	// ErrSameFile is returned by Copy when source and destination are one file.
	ErrSameFile = errors.New("source and destination are the same file")
)
