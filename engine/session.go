// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/audseq/layer"
)

// LoadLayers decodes every info through the engine's loader. A layer that
// fails to load is logged and left out; the rest keep their position in
// infos as their ID.
func (e *Engine) LoadLayers(infos []layer.Info) []*layer.Layer {
	layers := make([]*layer.Layer, 0, len(infos))

	for id, info := range infos {
		buf, err := e.loader.Load(info.Path)
		if err != nil {
			logger.Errorf("cannot load layer %d (%s): %v", id, info.Path, err)
			continue
		}

		l := &layer.Layer{
			ID:     id,
			Path:   info.Path,
			Buffer: buf,
			Blocks: slices.Clone(info.Blocks),
		}
		logger.Infof("loaded layer %d (%s): %d frames, %d blocks", id, info.Path, l.Frames(), len(l.Blocks))
		layers = append(layers, l)
	}

	return layers
}

// SetLayers loads infos and installs the result. See Install for maxBars.
func (e *Engine) SetLayers(infos []layer.Info, maxBars float64) error {
	if e.live.Load() {
		return ErrPlaying
	}

	return e.Install(e.LoadLayers(infos), maxBars)
}

// Install replaces the layer set and rewinds the clock. A maxBars of zero or
// less derives the track length from the furthest block end. Invalid layers
// are logged and skipped. Install is refused while a live stream runs.
func (e *Engine) Install(layers []*layer.Layer, maxBars float64) error {
	if e.live.Load() {
		return ErrPlaying
	}

	valid := make([]*layer.Layer, 0, len(layers))
	for _, l := range layers {
		if l == nil {
			continue
		}
		if err := l.Validate(); err != nil {
			logger.Warningf("skipping layer %d (%s): %v", l.ID, l.Path, err)
			continue
		}
		valid = append(valid, l)
	}

	if !(maxBars > 0) || math.IsInf(maxBars, 0) {
		maxBars = layer.MaxEnd(valid)
	}

	cur := e.sess.Load()
	e.sess.Store(newSession(valid, maxBars, cur.bpm, e.sampleRate))
	e.rewind()
	e.state.Store(int32(Running))

	logger.Infof("installed %d layers, %.2f bars at %.1f BPM", len(valid), maxBars, cur.bpm)

	return nil
}

// SetTempo changes the tempo used to place blocks. It is refused while a
// live stream runs.
func (e *Engine) SetTempo(bpm float64) error {
	if e.live.Load() {
		return ErrPlaying
	}
	if !(bpm > 0) || math.IsInf(bpm, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTempo, bpm)
	}

	cur := e.sess.Load()
	e.sess.Store(newSession(cur.layers, cur.maxBars, bpm, e.sampleRate))
	logger.Debugf("tempo set to %.1f BPM", bpm)

	return nil
}
