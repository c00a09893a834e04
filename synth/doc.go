// SPDX-License-Identifier: EPL-2.0

// Package synth renders percussion voices procedurally.
//
// Each voice fills a layer's buffer with 44.1 kHz stereo 16-bit PCM (both
// channels identical), leaving the layer's blocks for the caller:
//
//	kick := &layer.Layer{Blocks: []layer.Block{{Start: 0, Length: 0.25}}}
//	synth.Generate(synth.Kick, kick)
//
// The kick and snare last 0.3 s and the hi-hats 0.07 s. Every envelope has
// decayed below 1% of its peak by the end of the sample, so voices never end
// on an audible click. Noise is drawn from a math/rand/v2 generator; use
// GenerateWith and a seeded generator for repeatable output.
//
// GroovyHiHat lays out an alternating strong/soft hi-hat figure:
//
//	strong := &layer.Layer{}
//	soft := &layer.Layer{}
//	synth.Generate(synth.HiHatStrong, strong)
//	synth.Generate(synth.HiHatSoft, soft)
//	synth.GroovyHiHat(strong, soft, []int{0, 1}, 8)
package synth
