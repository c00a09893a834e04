// SPDX-License-Identifier: EPL-2.0

// Package formats ties the bundled decoders together.
//
// Layer files are chosen by extension:
//
//	wav        formats/wav
//	mp3        formats/mp3
//	ogg        formats/vorbis
//	aiff, aif  formats/aiff
//
// DecodeFile opens, decodes and collects a file into an audio.Buffer in one
// call; this is what the sequencer uses to load layers:
//
//	buf, err := formats.DecodeFile("loops/bass.wav")
//	if errors.Is(err, formats.ErrUnsupportedFormat) {
//	    // unknown extension
//	}
//
// A custom registry can be passed to DecodeFileWith to add or override
// decoders.
package formats
