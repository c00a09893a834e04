// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// interleaved 16-bit PCM.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("loop.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: signed 16-bit
//   - Channels: 2 (go-mp3 duplicates mono streams)
//   - Sample rate: Depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// # Limitations
//
// MP3 writing is not supported. Layers loaded from MP3 are mixed like any
// other stereo layer.
package mp3
