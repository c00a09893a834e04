// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"

	"github.com/ik5/audseq/device"
)

// Start rewinds the clock and starts pulling buffers through out. Progress
// is reported to the notifier after every buffer. When the track ends the
// notifier gets Progress(0) and Finished, once, and the stream is asked to
// stop; the engine stays Playing until Stop is called.
func (e *Engine) Start(out device.Output) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.live.Load() {
		return ErrPlaying
	}

	e.rewind()
	e.live.Store(true)

	if err := out.Start(e.pull); err != nil {
		e.live.Store(false)
		return fmt.Errorf("%w: %w", ErrDevice, err)
	}

	e.out = out
	e.state.Store(int32(Running))
	logger.Infof("playback started: %.2f bars at %.1f BPM", e.MaxBars(), e.BPM())

	return nil
}

// pull is the device callback.
func (e *Engine) pull(buf []float32) device.Action {
	e.Render(buf)
	e.notifier.Progress(e.Progress())

	if !e.finished.Load() {
		return device.Continue
	}

	if e.notified.CompareAndSwap(false, true) {
		e.notifier.Progress(0)
		e.notifier.Finished()
	}

	return device.Stop
}

// Stop ends live playback and releases the output. Stopping an engine that
// is not playing is a no-op.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.out
	e.out = nil
	e.live.Store(false)
	e.state.Store(int32(Idle))

	if out == nil {
		return nil
	}

	if err := out.Stop(); err != nil {
		return fmt.Errorf("%w: %w", ErrDevice, err)
	}
	logger.Infof("playback stopped at frame %d", e.frames.Load())

	return nil
}
