// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/layer"
	"github.com/ik5/audseq/utils"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("audseq.synth")

// SampleRate of every synthesized voice.
const SampleRate = 44100

// Generate renders v into l's buffer with a randomly seeded noise source.
// The layer's blocks are left untouched.
func Generate(v Voice, l *layer.Layer) {
	GenerateWith(v, l, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// GenerateWith renders v using rng for the noise, so a fixed seed yields
// identical samples.
func GenerateWith(v Voice, l *layer.Layer, rng *rand.Rand) {
	frames := v.Frames(SampleRate)
	samples := make([]int16, frames*2)

	var next func(i int) float64
	switch v {
	case Kick:
		next = kick(rng, frames)
	case Snare:
		next = snare(rng, frames)
	default:
		h, ok := hats[v]
		if !ok {
			logger.Warningf("unknown voice %v, rendering silence", v)
			next = func(int) float64 { return 0 }
			break
		}
		next = h.render(v, rng, frames)
	}

	for i := range frames {
		s := utils.SaturateInt16(next(i))
		samples[2*i] = s
		samples[2*i+1] = s
	}

	l.Buffer = audio.Buffer{
		Samples:    samples,
		SampleRate: SampleRate,
		Channels:   2,
	}

	logger.Debugf("generated %v: %d frames", v, frames)
}

// kick is a falling sine sweep over a 50 Hz sub, soft clipped.
func kick(rng *rand.Rand, frames int) func(int) float64 {
	return func(i int) float64 {
		t := float64(i) / SampleRate
		freq := 150 * math.Exp(-8*t)

		tone := math.Sin(2 * math.Pi * freq * t)
		sub := 0.3 * math.Sin(2*math.Pi*50*t)
		noise := rng.NormFloat64() * 0.2

		return math.Tanh((tone+sub+noise)*Kick.Envelope(i, frames)) * 0.8
	}
}

// snare is noise over a 300 Hz body.
func snare(rng *rand.Rand, frames int) func(int) float64 {
	return func(i int) float64 {
		t := float64(i) / SampleRate
		noise := rng.NormFloat64()
		tone := math.Sin(2 * math.Pi * 300 * t)

		return (0.6*noise + 0.4*tone) * Snare.Envelope(i, frames)
	}
}

// render returns low-pass filtered noise mixed with a high partial.
func (h hat) render(v Voice, rng *rand.Rand, frames int) func(int) float64 {
	var prev float64

	return func(i int) float64 {
		t := float64(i) / SampleRate

		filtered := h.cutoff*rng.NormFloat64()*h.sigma + (1-h.cutoff)*prev
		prev = filtered

		tone := h.toneGain * math.Sin(2*math.Pi*h.freq*t)

		return (h.mix*filtered + (1-h.mix)*tone) * v.Envelope(i, frames) * h.scale
	}
}

// NewKit renders every voice into its own layer, without blocks.
// A nil rng seeds each voice randomly.
func NewKit(rng *rand.Rand) map[Voice]*layer.Layer {
	kit := make(map[Voice]*layer.Layer, len(Voices))
	for _, v := range Voices {
		l := &layer.Layer{ID: int(v), Path: "synth:" + v.String()}
		if rng == nil {
			Generate(v, l)
		} else {
			GenerateWith(v, l, rng)
		}
		kit[v] = l
	}

	return kit
}
