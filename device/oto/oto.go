// SPDX-License-Identifier: EPL-2.0

package oto

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"

	ebitenoto "github.com/ebitengine/oto/v3"
	"github.com/ik5/audseq/device"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("audseq.device.oto")

// oto permits a single context per process
var (
	ctxMu   sync.Mutex
	ctx     *ebitenoto.Context
	ctxRate int
)

func otoContext(sampleRate int) (*ebitenoto.Context, error) {
	ctxMu.Lock()
	defer ctxMu.Unlock()

	if ctx != nil {
		if ctxRate != sampleRate {
			return nil, fmt.Errorf("%w: open at %d Hz, want %d Hz", ErrSampleRateMismatch, ctxRate, sampleRate)
		}
		return ctx, nil
	}

	c, ready, err := ebitenoto.NewContext(&ebitenoto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: device.Channels,
		Format:       ebitenoto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	<-ready

	ctx, ctxRate = c, sampleRate
	logger.Infof("audio context ready: %d Hz stereo float32", sampleRate)

	return ctx, nil
}

// Output plays through the system audio device using ebitengine/oto.
type Output struct {
	sampleRate int

	cb      atomic.Pointer[device.Callback]
	stopped atomic.Bool
	buf     []float32 // only touched by oto's reader goroutine

	mu     sync.Mutex // guards player
	player *ebitenoto.Player
}

// New returns an output for sampleRate. The device is opened on Start.
func New(sampleRate int) *Output {
	return &Output{
		sampleRate: sampleRate,
		buf:        make([]float32, 4096),
	}
}

func (o *Output) Start(cb device.Callback) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil {
		return device.ErrAlreadyStarted
	}

	c, err := otoContext(o.sampleRate)
	if err != nil {
		return err
	}

	o.arm(cb)
	o.player = c.NewPlayer(o)
	o.player.Play()

	return nil
}

func (o *Output) arm(cb device.Callback) {
	o.cb.Store(&cb)
	o.stopped.Store(false)
}

func (o *Output) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopped.Store(true)
	if o.player == nil {
		return nil
	}

	err := o.player.Close()
	o.player = nil
	if err != nil {
		return fmt.Errorf("closing player: %w", err)
	}

	return nil
}

// Read implements io.Reader for oto's player. It renders whole stereo
// frames and encodes them as float32 little-endian.
func (o *Output) Read(p []byte) (int, error) {
	if o.stopped.Load() {
		return 0, io.EOF
	}

	cb := o.cb.Load()
	frames := len(p) / (4 * device.Channels)
	if cb == nil || frames == 0 {
		clear(p)
		return len(p), nil
	}

	n := frames * device.Channels
	if cap(o.buf) < n {
		o.buf = make([]float32, n)
	}
	out := o.buf[:n]

	action := (*cb)(out)
	for i, v := range out {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}

	if action == device.Stop {
		o.stopped.Store(true)
	}

	return n * 4, nil
}
