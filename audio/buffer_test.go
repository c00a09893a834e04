// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
	"time"
)

func TestReadAll_Stereo(t *testing.T) {
	t.Parallel()

	src := newRampSource(44100, 2, 10000)

	buf, err := ReadAll(src, 4096)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", buf.SampleRate)
	}
	if buf.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Channels)
	}
	if buf.Frames() != 10000 {
		t.Fatalf("Frames() = %d, want 10000", buf.Frames())
	}

	for _, frame := range []int{0, 1, 4095, 5000, 9999} {
		if got := buf.Samples[frame*2]; got != int16(frame) {
			t.Errorf("left[%d] = %d, want %d", frame, got, frame)
		}
		if got := buf.Samples[frame*2+1]; got != int16(-frame) {
			t.Errorf("right[%d] = %d, want %d", frame, got, -frame)
		}
	}
}

func TestReadAll_OddBufferSize(t *testing.T) {
	t.Parallel()

	// 4095 is not a multiple of 2 channels; ReadAll must still read whole frames
	src := newRampSource(8000, 2, 3000)

	buf, err := ReadAll(src, 4095)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 3000 {
		t.Errorf("Frames() = %d, want 3000", buf.Frames())
	}
}

func TestReadAll_ZeroBufferSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 5000)

	buf, err := ReadAll(src, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(buf.Samples) != 5000 {
		t.Errorf("len(Samples) = %d, want 5000", len(buf.Samples))
	}
}

func TestReadAll_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  *mockSource
		want error
	}{
		{"no channels", newSilentSource(8000, 0, 10), ErrNoChannels},
		{"zero rate", newSilentSource(0, 1, 10), ErrInvalidSampleRate},
		{"read failure", func() *mockSource {
			m := newSilentSource(8000, 1, 10000)
			m.failAfter = 1024
			return m
		}(), errMockRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadAll(tt.src, 1024)
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadAll() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuffer_Timing(t *testing.T) {
	t.Parallel()

	buf := Buffer{
		Samples:    make([]int16, 44100*2),
		SampleRate: 44100,
		Channels:   2,
	}

	if buf.Frames() != 44100 {
		t.Errorf("Frames() = %d, want 44100", buf.Frames())
	}
	if buf.Seconds() != 1 {
		t.Errorf("Seconds() = %v, want 1", buf.Seconds())
	}
	if buf.Duration() != time.Second {
		t.Errorf("Duration() = %v, want 1s", buf.Duration())
	}
	if buf.Empty() {
		t.Error("Empty() = true for a filled buffer")
	}

	var zero Buffer
	if zero.Frames() != 0 || zero.Seconds() != 0 || !zero.Empty() {
		t.Errorf("zero Buffer: Frames=%d Seconds=%v Empty=%v", zero.Frames(), zero.Seconds(), zero.Empty())
	}
}

func BenchmarkReadAll(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		src := newRampSource(44100, 2, 44100)
		_, _ = ReadAll(src, 4096)
	}
}
