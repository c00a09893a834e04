// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/formats/wav"
	"github.com/ik5/audseq/internal/audiotest"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	samples := []int16{100, 200, 300, 400, 500}
	wavData := audiotest.WAVBytes(16000, 1, 16, samples)

	source, err := wav.Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]int16, 10)
	n, err := source.ReadPCM(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples
}

// Example_roundTrip shows encoding stereo PCM and then decoding it.
func Example_roundTrip() {
	original := []int16{-1000, 1000, -500, 500, 0, 0}

	// In real code the destination is an *os.File
	out := &audiotest.MemFile{}
	frames, err := wav.WritePCM16(out, 44100, 2, original)
	if err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %d frames\n", frames)

	src, err := wav.Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	decoded, err := audio.ReadAll(src, 4096)
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Println(decoded.Samples)
	// Output:
	// Wrote 3 frames
	// [-1000 1000 -500 500 0 0]
}
