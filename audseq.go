// SPDX-License-Identifier: EPL-2.0

package audseq

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/ik5/audseq/device"
	"github.com/ik5/audseq/engine"
	"github.com/ik5/audseq/project"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("audseq")

// Options tunes how a project is opened. The zero value decodes layers from
// disk, discards playback events and seeds the drum synthesizer randomly.
type Options struct {
	Loader   engine.Loader
	Notifier engine.Notifier
	// Rand drives drum synthesis. Fix it for repeatable bounces.
	Rand *rand.Rand
}

// Open loads the project file at projectPath and returns an engine with its
// sample layers and drums installed.
func Open(projectPath string, opts Options) (*engine.Engine, error) {
	p, err := project.Load(projectPath)
	if err != nil {
		return nil, err
	}

	return OpenProject(p, opts)
}

// OpenProject is Open for a project already in memory. Layers that cannot
// be loaded are logged and left out.
func OpenProject(p *project.Project, opts Options) (*engine.Engine, error) {
	if err := p.ConfigureLogging(); err != nil {
		return nil, err
	}

	e := engine.New(engine.Options{
		SampleRate: p.SampleRate,
		BPM:        p.BPM,
		Loader:     opts.Loader,
		Notifier:   opts.Notifier,
	})

	layers := e.LoadLayers(p.Layers)
	if len(layers) < len(p.Layers) {
		logger.Warningf("%d of %d layers failed to load", len(p.Layers)-len(layers), len(p.Layers))
	}
	layers = append(layers, p.DrumLayers(opts.Rand)...)

	if err := e.Install(layers, p.MaxBars); err != nil {
		return nil, err
	}

	return e, nil
}

// Bounce renders the project at projectPath to a 16-bit stereo WAV file at
// outPath. A frames value of zero or less renders the whole track.
func Bounce(projectPath, outPath string, frames int) error {
	e, err := Open(projectPath, Options{})
	if err != nil {
		return err
	}

	return e.RenderToFile(outPath, frames)
}

// Play streams the project at projectPath through out until the track ends
// or ctx is done, and returns ctx.Err in the latter case. Pass an oto.New
// output at the project's sample rate to hear it, or a device.Headless. n
// receives progress from the audio goroutine and may be nil.
func Play(ctx context.Context, projectPath string, out device.Output, n engine.Notifier) error {
	if out == nil {
		return ErrNoOutput
	}
	if n == nil {
		n = engine.NopNotifier{}
	}

	finished := make(chan struct{})
	var once sync.Once
	notify := engine.NotifierFuncs{
		OnProgress: n.Progress,
		OnFinished: func() {
			n.Finished()
			once.Do(func() { close(finished) })
		},
	}

	e, err := Open(projectPath, Options{Notifier: notify})
	if err != nil {
		return err
	}

	if err := e.Start(out); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-finished:
	}

	if serr := e.Stop(); serr != nil && err == nil {
		err = serr
	}

	return err
}

// TrackFrames returns the length of p in output frames, assuming every layer
// loads.
func TrackFrames(p *project.Project) int64 {
	framesPerBar := float64(p.SampleRate) * engine.BeatsPerBar * 60 / p.BPM
	return int64(p.Bars() * framesPerBar)
}
