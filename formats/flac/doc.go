// SPDX-License-Identifier: EPL-2.0

// Package flac adapts github.com/mewkiz/flac to audio.Source.
//
// Frames are decoded one at a time and their subframes interleaved, so
// memory use is bounded by the largest block in the stream.
package flac
