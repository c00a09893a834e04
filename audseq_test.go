// SPDX-License-Identifier: EPL-2.0

package audseq

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ik5/audseq/device"
	"github.com/ik5/audseq/engine"
	"github.com/ik5/audseq/formats"
	"github.com/ik5/audseq/internal/audiotest"
	"github.com/ik5/audseq/project"
)

// writeProject stores a project next to a one-bar mono tone.
func writeProject(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	tone := make([]int16, 88200)
	for i := range tone {
		tone[i] = audiotest.SineSample(44100, i, 220, 0.5)
	}
	audiotest.WriteWAVFile(t, dir, "tone.wav", 44100, 1, tone)

	path := filepath.Join(dir, "song.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

const song = `
bpm: 120
layers:
  - path: tone.wav
    blocks: [{start: 0, length: 1}]
  - path: missing.wav
    blocks: [{start: 0, length: 16}]
drums:
  - voice: kick
    blocks: [{start: 0, length: 0.25}, {start: 1, length: 0.25}]
groove: {bars: [0], resolution: 4}
`

func TestOpen(t *testing.T) {
	t.Parallel()

	e, err := Open(writeProject(t, song), Options{Rand: rand.New(rand.NewPCG(1, 2))})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	// tone, kick and two groove hats; the missing layer is dropped
	if got := len(e.Layers()); got != 4 {
		t.Errorf("len(Layers()) = %d, want 4", got)
	}
	if got := e.MaxBars(); got != 2 {
		t.Errorf("MaxBars() = %v, want 2", got)
	}
	if e.State() != engine.Running {
		t.Errorf("State() = %v, want running", e.State())
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"bad yaml", "bpm: [", project.ErrInvalidProject},
		{"bad log config", "log: \"audseq=NOISY\"", project.ErrLogConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Open(writeProject(t, tt.body), Options{}); !errors.Is(err, tt.wantErr) {
				t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Open(filepath.Join(t.TempDir(), "none.yaml"), Options{}); !errors.Is(err, project.ErrReadProject) {
		t.Errorf("Open(missing) error = %v, want ErrReadProject", err)
	}
}

func TestBounce(t *testing.T) {
	t.Parallel()

	path := writeProject(t, song)
	out := filepath.Join(t.TempDir(), "song.wav")

	if err := Bounce(path, out, 0); err != nil {
		t.Fatalf("Bounce() error = %v", err)
	}

	p, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := formats.DecodeFile(out)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if got, want := int64(buf.Frames()), TrackFrames(p); got != want {
		t.Errorf("bounced %d frames, want %d", got, want)
	}
	if buf.Channels != 2 || buf.SampleRate != 44100 {
		t.Errorf("bounced format %d Hz / %d ch", buf.SampleRate, buf.Channels)
	}
}

func TestBounce_NothingToRender(t *testing.T) {
	t.Parallel()

	path := writeProject(t, "layers: [{path: missing.wav, blocks: [{start: 0, length: 1}]}]")
	out := filepath.Join(t.TempDir(), "empty.wav")

	if err := Bounce(path, out, 0); !errors.Is(err, engine.ErrNoLayers) {
		t.Fatalf("Bounce() error = %v, want ErrNoLayers", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output created: %v", err)
	}
}

func TestTrackFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		yaml string
		want int64
	}{
		{"bpm: 120\nmax_bars: 4", 352800},
		{"bpm: 60\nmax_bars: 1", 176400},
		{"bpm: 120\nsample_rate: 48000\nmax_bars: 1", 96000},
		{"drums: [{voice: snare, blocks: [{start: 1, length: 1}]}]", 176400},
	}

	for _, tt := range tests {
		p, err := project.Parse([]byte(tt.yaml), "")
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.yaml, err)
		}
		if got := TrackFrames(p); got != tt.want {
			t.Errorf("TrackFrames(%q) = %d, want %d", tt.yaml, got, tt.want)
		}
	}
}

func TestPlay_Headless(t *testing.T) {
	t.Parallel()

	var finished atomic.Int32
	var last atomic.Value
	n := engine.NotifierFuncs{
		OnProgress: func(p float32) { last.Store(p) },
		OnFinished: func() { finished.Add(1) },
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := Play(ctx, writeProject(t, song), device.NewHeadless(2048, 0), n); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if got := finished.Load(); got != 1 {
		t.Errorf("Finished called %d times, want 1", got)
	}
	if got := last.Load(); got != float32(0) {
		t.Errorf("last progress = %v, want 0 after the track ends", got)
	}
}

func TestPlay_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// realtime pacing keeps the 2-bar track running well past the cancel
	err := Play(ctx, writeProject(t, song), device.Realtime(44100, 512), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, want context.Canceled", err)
	}
}

func TestPlay_NoOutput(t *testing.T) {
	t.Parallel()

	if err := Play(context.Background(), writeProject(t, song), nil, nil); !errors.Is(err, ErrNoOutput) {
		t.Errorf("Play() error = %v, want ErrNoOutput", err)
	}
}
