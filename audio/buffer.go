// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is a fully decoded PCM stream held in memory.
type Buffer struct {
	// Samples are interleaved signed 16-bit PCM values.
	Samples    []int16
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames (samples per channel).
func (b Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Seconds returns the playing time of the buffer in seconds.
func (b Buffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Duration is Seconds expressed as a time.Duration.
func (b Buffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// Empty reports whether the buffer holds no samples.
func (b Buffer) Empty() bool { return len(b.Samples) == 0 }

// ReadAll drains src into a Buffer.
//
// The stream is read in chunks of bufferSize samples (rounded down to a whole
// number of frames). io.EOF from the source ends the read and is not returned.
// The source is not closed.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src, 4096)
//	if err != nil {
//	    return err
//	}
//	// buf.Samples now holds the interleaved PCM of the whole file
func ReadAll(src Source, bufferSize int) (Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return Buffer{}, ErrNoChannels
	}
	rate := src.SampleRate()
	if rate <= 0 {
		return Buffer{}, ErrInvalidSampleRate
	}

	chunk := bufferSize - bufferSize%channels
	if chunk <= 0 {
		chunk = channels * 1024
	}

	// Start with ~1 second and grow by doubling
	pcm := make([]int16, 0, rate*channels)
	buf := make([]int16, chunk)

	for {
		n, err := src.ReadPCM(buf)
		if n > 0 {
			if cap(pcm)-len(pcm) < n {
				newCap := len(pcm) + max(n, cap(pcm))
				grown := make([]int16, len(pcm), newCap)
				copy(grown, pcm)
				pcm = grown
			}
			pcm = append(pcm, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Buffer{}, fmt.Errorf("reading pcm: %w", err)
		}

		if n == 0 {
			// A source that neither advances nor reports EOF is treated as drained.
			break
		}
	}

	// Drop a trailing partial frame
	pcm = pcm[:len(pcm)-len(pcm)%channels]

	return Buffer{
		Samples:    pcm,
		SampleRate: rate,
		Channels:   channels,
	}, nil
}
