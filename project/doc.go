// SPDX-License-Identifier: EPL-2.0

// Package project reads session files: YAML documents naming the tempo, the
// sample layers with their blocks, and the drum patterns to synthesize.
//
//	bpm: 120
//	sample_rate: 44100
//	log: "<root>=INFO"
//	layers:
//	  - path: bass.wav
//	    blocks: [{start: 0, length: 4}]
//	drums:
//	  - voice: kick
//	    blocks: [{start: 0, length: 0.25}, {start: 1, length: 0.25}]
//	groove: {bars: [0, 1, 2, 3], resolution: 8}
//
// Block positions and lengths are in bars. A max_bars of zero derives the
// track length from the furthest block end.
package project
