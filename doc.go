// SPDX-License-Identifier: EPL-2.0

// Package audseq is a pattern sequencer: it places audio layers at bar
// positions, mixes them with synthesized drums and either plays the result
// or bounces it to a WAV file.
//
// # Quick Start
//
// A project file names the tempo, the layers and their blocks:
//
//	bpm: 120
//	layers:
//	  - path: bass.wav
//	    blocks: [{start: 0, length: 4}]
//	drums:
//	  - voice: kick
//	    blocks: [{start: 0, length: 0.25}, {start: 1, length: 0.25}]
//	groove: {bars: [0, 1, 2, 3]}
//
// Bounce it to disk:
//
//	err := audseq.Bounce("song.yaml", "song.wav", 0)
//
// Or play it through the sound card, reporting progress:
//
//	p, _ := project.Load("song.yaml")
//	err := audseq.Play(ctx, "song.yaml", oto.New(p.SampleRate), engine.NotifierFuncs{
//	    OnProgress: func(p float32) { fmt.Printf("\r%3.0f%%", p*100) },
//	})
//
// # Packages
//
//   - engine mixes layers, drives live output and renders offline
//   - layer holds the block and layer model
//   - synth synthesizes kick, snare and hi-hat layers
//   - project reads YAML session files
//   - formats decodes WAV, MP3, Ogg Vorbis and AIFF layer files
//   - device defines the output contract and a headless output
//   - device/oto plays through the sound card (needs cgo)
//   - waveform reduces a sample to display points
//
// # Timing
//
// Positions are in 4/4 bars. At tempo bpm and sample rate r one bar lasts
// r*4*60/bpm frames, so 120 BPM at 44.1 kHz gives 88200 frames per bar.
// A block covers the half-open range [start, start+length) and every block
// restarts its layer from the first sample.
package audseq
