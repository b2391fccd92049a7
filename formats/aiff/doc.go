// SPDX-License-Identifier: EPL-2.0

// Package aiff adapts github.com/go-audio/aiff to audio.Source.
//
// PCM at 8, 16, 24 and 32 bits is accepted and scaled to float64 by the
// full-scale value of its width. Streams that cannot seek are read into
// memory first because go-audio walks the chunk list with Seek.
package aiff
