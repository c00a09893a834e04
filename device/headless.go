// SPDX-License-Identifier: EPL-2.0

package device

import (
	"sync"
	"time"
)

// Headless drives a Callback from its own goroutine without any audio
// hardware. With a zero interval it renders as fast as the callback allows;
// otherwise one buffer is requested per tick.
type Headless struct {
	frames   int
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewHeadless returns an output that requests frames stereo frames per buffer.
func NewHeadless(frames int, interval time.Duration) *Headless {
	if frames < 1 {
		frames = 512
	}

	return &Headless{frames: frames, interval: interval}
}

// Realtime paces buffers at the rate a sound card running at sampleRate
// would consume them.
func Realtime(sampleRate, frames int) *Headless {
	return NewHeadless(frames, time.Duration(frames)*time.Second/time.Duration(sampleRate))
}

func (h *Headless) Start(cb Callback) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stop != nil {
		return ErrAlreadyStarted
	}

	h.stop = make(chan struct{})
	h.done = make(chan struct{})

	go h.loop(cb, h.stop, h.done)

	return nil
}

func (h *Headless) loop(cb Callback, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var tick <-chan time.Time
	if h.interval > 0 {
		t := time.NewTicker(h.interval)
		defer t.Stop()
		tick = t.C
	}

	buf := make([]float32, h.frames*Channels)
	for {
		select {
		case <-stop:
			return
		default:
		}

		if tick != nil {
			select {
			case <-stop:
				return
			case <-tick:
			}
		}

		if cb(buf) == Stop {
			logger.Debugf("headless stream finished")
			return
		}
	}
}

// Done is closed once the stream has ended, either because the callback
// answered Stop or because Stop was called. It is nil before Start.
func (h *Headless) Done() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.done
}

func (h *Headless) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stop == nil {
		return nil
	}

	close(h.stop)
	<-h.done
	h.stop = nil

	return nil
}
