// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading and writing WAV files in PCM 16-bit format.
// It uses the github.com/go-audio/wav library for RIFF chunk handling.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit (most common WAV format)
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	file, _ := os.Open("kick.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// Inputs that cannot seek are buffered in memory first, since the RIFF
// walker needs random access to skip unknown chunks.
//
// # Writing WAV Files
//
// Use WritePCM16 for a one-shot write, or an Encoder when frames arrive in
// chunks, as they do during an offline render:
//
//	file, _ := os.Create("mix.wav")
//	enc, _ := wav.NewEncoder(file, 44100, 2)
//	for chunk := range chunks {
//	    enc.Write(chunk)
//	}
//	enc.Close()
//
// The RIFF sizes are patched when the encoder is closed, so the destination
// must implement io.WriteSeeker.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//   - ErrPartialFrame: A write did not hold whole frames
//
// Example:
//
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
