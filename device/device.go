// SPDX-License-Identifier: EPL-2.0

package device

import "github.com/juju/loggo"

var logger = loggo.GetLogger("audseq.device")

// Action is the callback's answer after filling a buffer.
type Action int

const (
	// Continue asks for another buffer.
	Continue Action = iota
	// Stop ends the stream after the buffer just filled.
	Stop
)

func (a Action) String() string {
	if a == Stop {
		return "stop"
	}

	return "continue"
}

// Callback fills out with interleaved stereo float32 samples in [-1, 1].
// It runs on the device's goroutine and must not block.
type Callback func(out []float32) Action

// Output is a stereo output stream that pulls audio through a Callback.
type Output interface {
	// Start opens the stream and begins calling cb. It fails when the stream
	// is already running or the device cannot be opened.
	Start(cb Callback) error
	// Stop halts the stream and releases the device. Stopping a stream that
	// is not running is a no-op.
	Stop() error
}

// Channels is the channel count every Output delivers.
const Channels = 2
