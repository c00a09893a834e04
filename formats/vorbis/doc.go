// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis decodes to floating point, so samples are clamped and quantized to
// 16-bit on the way out, matching what the offline renderer does to a mix.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("pad.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// Reads are rounded down to whole frames; a destination shorter than one
// frame reads nothing.
package vorbis
