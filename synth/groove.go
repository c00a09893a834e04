// SPDX-License-Identifier: EPL-2.0

package synth

import "github.com/ik5/audseq/layer"

const (
	// DefaultResolution is the number of hi-hat hits per groove bar.
	DefaultResolution = 8

	// grooveBeats is the span of one groove bar. It is twice a session
	// bar, which makes the pattern swing across bar lines.
	grooveBeats = 8.0
	beatsPerBar = 4.0
)

// GroovyHiHat appends alternating hi-hat blocks for each groove bar in bars.
// Each groove bar is split into resolution equal steps; even steps go to
// strong and odd steps to soft. A resolution below 1 uses
// DefaultResolution. Block positions are in session bars.
func GroovyHiHat(strong, soft *layer.Layer, bars []int, resolution int) {
	if resolution < 1 {
		resolution = DefaultResolution
	}

	step := grooveBeats / float64(resolution) / beatsPerBar

	for _, bar := range bars {
		base := float64(bar) * grooveBeats / beatsPerBar
		for i := range resolution {
			b := layer.Block{Start: base + float64(i)*step, Length: step}
			if i%2 == 0 {
				strong.Blocks = append(strong.Blocks, b)
			} else {
				soft.Blocks = append(soft.Blocks, b)
			}
		}
	}
}
