// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// chunkSize bounds the intermediate []int handed to go-audio per write.
const chunkSize = 8192

// Encoder writes interleaved 16-bit PCM frames as a RIFF/WAVE stream.
// The RIFF sizes are patched on Close, which is why the destination must seek.
type Encoder struct {
	enc      *gowav.Encoder
	channels int
	frames   int
	buf      *goaudio.IntBuffer
}

// NewEncoder prepares a 16-bit PCM encoder. Nothing is written until the
// first call to Write.
func NewEncoder(w io.WriteSeeker, sampleRate, channels int) (*Encoder, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	format := &goaudio.Format{
		NumChannels: channels,
		SampleRate:  sampleRate,
	}

	return &Encoder{
		enc:      gowav.NewEncoder(w, sampleRate, 16, channels, pcmFormat),
		channels: channels,
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 0, chunkSize),
			SourceBitDepth: 16,
		},
	}, nil
}

// Write encodes samples and returns the number of whole frames written.
// len(samples) must be a multiple of the channel count.
func (e *Encoder) Write(samples []int16) (int, error) {
	if len(samples)%e.channels != 0 {
		return 0, ErrPartialFrame
	}

	written := 0
	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		e.buf.Data = e.buf.Data[:len(chunk)]
		for j, s := range chunk {
			e.buf.Data[j] = int(s)
		}

		if err := e.enc.Write(e.buf); err != nil {
			e.frames += written / e.channels
			return written / e.channels, fmt.Errorf("%w", err)
		}
		written += len(chunk)
	}

	e.frames += written / e.channels

	return written / e.channels, nil
}

// Frames returns the total number of frames written so far.
func (e *Encoder) Frames() int { return e.frames }

// Close finalizes the RIFF header. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WritePCM16 writes a complete 16-bit PCM WAV stream and returns the number of
// frames written.
func WritePCM16(w io.WriteSeeker, sampleRate, channels int, samples []int16) (int, error) {
	enc, err := NewEncoder(w, sampleRate, channels)
	if err != nil {
		return 0, err
	}

	frames, err := enc.Write(samples)
	if err != nil {
		_ = enc.Close()
		return frames, err
	}

	if err := enc.Close(); err != nil {
		return frames, err
	}

	return frames, nil
}
