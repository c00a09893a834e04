// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files, the format
// many sample packs ship in.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("snare.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// Only 16-bit PCM is accepted; other depths fail with
// ErrOnlyPCM16bitSupported. Samples are already big-endian decoded by
// go-audio, so they pass through unchanged.
package aiff
