// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/device"
	"github.com/ik5/audseq/layer"
)

var errNotFound = errors.New("no such layer file")

// framesPerBar120 is one bar at 120 BPM and 44.1 kHz.
const framesPerBar120 = 88200

// memLoader serves buffers from memory.
func memLoader(files map[string]audio.Buffer) Loader {
	return LoaderFunc(func(path string) (audio.Buffer, error) {
		buf, ok := files[path]
		if !ok {
			return audio.Buffer{}, fmt.Errorf("%s: %w", path, errNotFound)
		}
		return buf, nil
	})
}

func constBuffer(value int16, frames, rate, channels int) audio.Buffer {
	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = value
	}

	return audio.Buffer{Samples: samples, SampleRate: rate, Channels: channels}
}

// rampBuffer holds frame index modulo 30000 in every channel.
func rampBuffer(frames, rate, channels int) audio.Buffer {
	samples := make([]int16, frames*channels)
	for f := range frames {
		for c := range channels {
			samples[f*channels+c] = int16(f % 30000)
		}
	}

	return audio.Buffer{Samples: samples, SampleRate: rate, Channels: channels}
}

func newLayer(id int, buf audio.Buffer, blocks ...layer.Block) *layer.Layer {
	return &layer.Layer{ID: id, Path: fmt.Sprintf("layer%d.wav", id), Buffer: buf, Blocks: blocks}
}

// installed returns a 120 BPM engine with layers installed.
func installed(tb testing.TB, maxBars float64, layers ...*layer.Layer) *Engine {
	tb.Helper()

	e := New(Options{})
	if err := e.Install(layers, maxBars); err != nil {
		tb.Fatalf("Install() error = %v", err)
	}

	return e
}

// renderFrames renders frames stereo frames in buffers of bufFrames.
func renderFrames(e *Engine, frames, bufFrames int) []float32 {
	out := make([]float32, frames*2)
	for done := 0; done < frames; {
		n := min(bufFrames, frames-done)
		e.Render(out[done*2 : (done+n)*2])
		done += n
	}

	return out
}

// fakeOutput hands buffers to the callback only when pulled.
type fakeOutput struct {
	startErr error

	mu      sync.Mutex
	cb      device.Callback
	stopped bool
}

func (f *fakeOutput) Start(cb device.Callback) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cb = cb

	return nil
}

func (f *fakeOutput) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true

	return nil
}

func (f *fakeOutput) pull(buf []float32) device.Action {
	f.mu.Lock()
	cb := f.cb
	f.mu.Unlock()

	return cb(buf)
}

// recorder is a Notifier that keeps every event.
type recorder struct {
	mu       sync.Mutex
	progress []float32
	finished int
	events   []string
}

func (r *recorder) Progress(p float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, p)
	r.events = append(r.events, fmt.Sprintf("progress %.3f", p))
}

func (r *recorder) Finished() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++
	r.events = append(r.events, "finished")
}

func (r *recorder) snapshot() ([]float32, int, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]float32(nil), r.progress...), r.finished, append([]string(nil), r.events...)
}
