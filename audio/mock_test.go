// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// mockSource is a test helper that generates 16-bit PCM for testing.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int // frames generated so far
	waveform    func(frame int, channel int) int16
	failAfter   int // fail with errMockRead once this many frames were produced; <0 disables
}

var errMockRead = errors.New("mock read failure")

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int16) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
		failAfter:   -1,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) int16 { return 0 })
}

// newRampSource emits frame index on channel 0 and its negation on channel 1.
func newRampSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		if channel%2 == 1 {
			return int16(-(frame % 32768))
		}
		return int16(frame % 32768)
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadPCM(dst []int16) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, errMockRead
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalFrames-m.generated)

	for frame := range framesToWrite {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return written, io.EOF
	}

	return written, nil
}
