// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/device"
	"github.com/ik5/audseq/formats"
	"github.com/ik5/audseq/layer"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("audseq.engine")

const (
	DefaultSampleRate = 44100
	DefaultBPM        = 120.0

	// BeatsPerBar is fixed; block positions are always in 4/4 bars.
	BeatsPerBar = 4
)

// State of the engine's session.
type State int32

const (
	// Idle has no session armed.
	Idle State = iota
	// Running has a layer set installed and ready to render.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}

	return "idle"
}

// Loader resolves a layer path into decoded PCM.
type Loader interface {
	Load(path string) (audio.Buffer, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (audio.Buffer, error)

func (f LoaderFunc) Load(path string) (audio.Buffer, error) { return f(path) }

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	// SampleRate of the output in Hz. Defaults to 44100.
	SampleRate int
	// BPM is the session tempo. Defaults to 120.
	BPM float64
	// Loader decodes layer files. Defaults to formats.DecodeFile.
	Loader Loader
	// Notifier receives live playback progress. Defaults to NopNotifier.
	Notifier Notifier
}

// session is an immutable snapshot of everything Render reads besides the
// clock. It is replaced wholesale, never mutated.
type session struct {
	layers       []*layer.Layer
	maxBars      float64
	bpm          float64
	framesPerBar float64
}

func newSession(layers []*layer.Layer, maxBars, bpm float64, sampleRate int) *session {
	return &session{
		layers:       layers,
		maxBars:      maxBars,
		bpm:          bpm,
		framesPerBar: float64(sampleRate) * BeatsPerBar * 60 / bpm,
	}
}

// Engine mixes a set of layers into stereo float32 buffers, either pulled by
// an output device or driven offline into a WAV file.
type Engine struct {
	sampleRate int
	loader     Loader
	notifier   Notifier

	sess     atomic.Pointer[session]
	frames   atomic.Int64 // render clock
	finished atomic.Bool
	notified atomic.Bool
	state    atomic.Int32
	live     atomic.Bool
	lastBar  atomic.Int64

	mu  sync.Mutex // guards out
	out device.Output
}

// New returns an idle engine with no layers.
func New(opts Options) *Engine {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if !(opts.BPM > 0) {
		opts.BPM = DefaultBPM
	}
	if opts.Loader == nil {
		opts.Loader = LoaderFunc(formats.DecodeFile)
	}
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}

	e := &Engine{
		sampleRate: opts.SampleRate,
		loader:     opts.Loader,
		notifier:   opts.Notifier,
	}
	e.sess.Store(newSession(nil, 0, opts.BPM, opts.SampleRate))
	e.lastBar.Store(-1)

	return e
}

func (e *Engine) SampleRate() int { return e.sampleRate }

func (e *Engine) BPM() float64 { return e.sess.Load().bpm }

// MaxBars returns the track length in bars.
func (e *Engine) MaxBars() float64 { return e.sess.Load().maxBars }

// Layers returns the installed layers. The slice must not be modified.
func (e *Engine) Layers() []*layer.Layer { return e.sess.Load().layers }

func (e *Engine) State() State { return State(e.state.Load()) }

// Playing reports whether a live stream is running.
func (e *Engine) Playing() bool { return e.live.Load() }

// Finished reports whether the clock has passed the end of the track.
func (e *Engine) Finished() bool { return e.finished.Load() }

// Frames returns the number of frames rendered since the last rewind.
func (e *Engine) Frames() int64 { return e.frames.Load() }

// TrackFrames returns the length of the track in frames at the current tempo.
func (e *Engine) TrackFrames() int64 {
	s := e.sess.Load()
	return int64(s.maxBars * s.framesPerBar)
}

// Progress returns the fraction of the track rendered so far, in [0, 1].
func (e *Engine) Progress() float32 {
	total := e.TrackFrames()
	if total <= 0 {
		return 0
	}

	return float32(min(1, float64(e.frames.Load())/float64(total)))
}

func (e *Engine) rewind() {
	e.frames.Store(0)
	e.finished.Store(false)
	e.notified.Store(false)
	e.lastBar.Store(-1)
}
