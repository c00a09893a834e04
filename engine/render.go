// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"

	"github.com/ik5/audseq/layer"
	"github.com/ik5/audseq/utils"
)

// Render fills out with the next len(out)/2 stereo frames of the mix and
// advances the clock by that many frames.
//
// Every block is placed with frame accuracy: a block that starts or ends
// inside the buffer is heard from or up to its exact frame, and each block
// plays its layer from the first sample. Past the last bar Render produces
// silence and marks the engine finished. Render neither locks nor allocates.
func (e *Engine) Render(out []float32) {
	clear(out)

	numFrames := len(out) / 2
	s := e.sess.Load()
	pos := e.frames.Load()
	defer e.frames.Add(int64(numFrames))

	currentBar := float64(pos) / s.framesPerBar
	if currentBar >= s.maxBars {
		e.finished.Store(true)
		return
	}

	if bar := int64(currentBar); e.lastBar.Swap(bar) != bar && logger.IsTraceEnabled() {
		logger.Tracef("bar %d", bar)
	}

	end := s.maxBars * s.framesPerBar
	for _, l := range s.layers {
		if l.Empty() {
			continue
		}
		for _, b := range l.Blocks {
			blockStart := b.Start * s.framesPerBar
			blockEnd := min(b.End()*s.framesPerBar, end)

			f0 := max(0, int(math.Ceil(blockStart-float64(pos))))
			f1 := min(numFrames, int(math.Ceil(blockEnd-float64(pos))))
			if f0 >= f1 {
				continue
			}

			offset := max(0, float64(pos)+float64(f0)-blockStart)
			mix(out, l, sourceFrame(offset, l.SampleRate, e.sampleRate), f0, f1)
		}
	}

	for i, v := range out {
		out[i] = utils.ClampUnit(v)
	}
}

// sourceFrame converts an offset in output frames into a frame index of a
// layer recorded at layerRate. No resampling happens; only the starting
// point honours the layer's own rate.
func sourceFrame(offset float64, layerRate, outRate int) int {
	if layerRate == outRate {
		return int(offset)
	}

	return int(offset / float64(outRate) * float64(layerRate))
}

// mix adds frames [f0, f1) of the layer, starting at source frame start,
// into out. Mono layers feed both channels; channels past the second are
// ignored. Reads past the end of the buffer are silent.
func mix(out []float32, l *layer.Layer, start, f0, f1 int) {
	src := l.Samples
	ch := l.Channels

	for f := f0; f < f1; f++ {
		base := (start + f - f0) * ch
		if base < 0 {
			continue
		}
		if base >= len(src) {
			return
		}

		left := utils.Int16ToFloat32(src[base])
		if ch == 1 {
			out[2*f] += left
			out[2*f+1] += left
			continue
		}

		out[2*f] += left
		if base+1 < len(src) {
			out[2*f+1] += utils.Int16ToFloat32(src[base+1])
		}
	}
}
