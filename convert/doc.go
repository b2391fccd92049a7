// SPDX-License-Identifier: EPL-2.0

// Package convert turns audio files into PCM WAV files.
//
// Two Converters are provided. FFmpeg runs the ffmpeg executable and only
// reports success when the process exited cleanly and left an output file
// behind. Native decodes WAV, MP3, Ogg Vorbis, AIFF and FLAC in process and
// writes 16-bit PCM through package wavfile.
//
//	conv := convert.NewFFmpeg("", log)
//	err := conv.Convert(ctx, "call.mp3", "call.wav", convert.Options{Mix: true})
//
// Batch applies a Converter to a whole directory, either once with Dir or
// continuously with Watch, which picks up new files as they settle.
package convert
