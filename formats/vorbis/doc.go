// SPDX-License-Identifier: EPL-2.0

// Package vorbis adapts github.com/jfreymuth/oggvorbis to audio.Source.
//
// The library already produces interleaved float32 values in [-1, 1]; the
// source widens them to float64 and keeps reads aligned to whole frames.
package vorbis
