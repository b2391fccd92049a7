// SPDX-License-Identifier: EPL-2.0

// Package wavfile reads and rewrites WAV files on disk.
//
// A Files value carries the logger every operation reports to. Each call
// reads its file into memory, works on that buffer and drops it; nothing is
// cached between calls.
//
//	files := wavfile.New(log)
//	f, err := files.Read("in.wav", wavfile.Options{Hash: true, Data: true})
//	if errors.Is(err, wav.ErrUnsupportedAudioFormat) {
//	    // not PCM
//	}
//
// Writes go to a temporary file in the destination directory that is renamed
// over the target, so readers never observe a half written file.
package wavfile
