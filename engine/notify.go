// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync"
	"sync/atomic"
)

// Notifier receives playback events from the render goroutine. Its methods
// are called from the audio callback and must return quickly; wrap slow
// sinks with NewAsyncNotifier.
type Notifier interface {
	// Progress reports the fraction of the track played, in [0, 1].
	Progress(p float32)
	// Finished is called once when the track has played to the end.
	Finished()
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) Progress(float32) {}
func (NopNotifier) Finished()        {}

// NotifierFuncs adapts plain functions to Notifier. Nil fields are skipped.
type NotifierFuncs struct {
	OnProgress func(p float32)
	OnFinished func()
}

func (n NotifierFuncs) Progress(p float32) {
	if n.OnProgress != nil {
		n.OnProgress(p)
	}
}

func (n NotifierFuncs) Finished() {
	if n.OnFinished != nil {
		n.OnFinished()
	}
}

// AsyncNotifier forwards events to a sink on its own goroutine so the audio
// callback never blocks. Progress updates the sink has not consumed yet are
// replaced by newer ones; Finished is delivered at most once, after any
// pending progress.
type AsyncNotifier struct {
	sink     Notifier
	progress chan float32
	finished chan struct{}
	quit     chan struct{}
	done     chan struct{}
	once     sync.Once
	sent     atomic.Bool
}

// NewAsyncNotifier starts the forwarding goroutine. Call Close to stop it.
func NewAsyncNotifier(sink Notifier) *AsyncNotifier {
	a := &AsyncNotifier{
		sink:     sink,
		progress: make(chan float32, 1),
		finished: make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go a.run()

	return a
}

func (a *AsyncNotifier) run() {
	defer close(a.done)

	for {
		select {
		case p := <-a.progress:
			a.sink.Progress(p)
		case <-a.finished:
			select {
			case p := <-a.progress:
				a.sink.Progress(p)
			default:
			}
			a.sink.Finished()
		case <-a.quit:
			return
		}
	}
}

// Progress never blocks; a stale pending value is dropped in favour of p.
func (a *AsyncNotifier) Progress(p float32) {
	for {
		select {
		case a.progress <- p:
			return
		default:
		}

		select {
		case <-a.progress:
		default:
		}
	}
}

// Finished never blocks; only the first call is delivered.
func (a *AsyncNotifier) Finished() {
	if a.sent.CompareAndSwap(false, true) {
		a.finished <- struct{}{}
	}
}

// Close stops forwarding. Events still queued may be dropped.
func (a *AsyncNotifier) Close() {
	a.once.Do(func() { close(a.quit) })
	<-a.done
}
