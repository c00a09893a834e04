// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/ik5/audseq/utils"

// Points is the summary size used for display.
const Points = 100

// Summarize decimates samples to points values in [-1, 1) by taking every
// len(samples)/points-th sample. Channels are not separated; for stereo input
// the picked samples alternate between channels depending on the step.
//
// The result always holds points values. Inputs shorter than points are
// stretched, each sample repeated over its share of the points. Empty input
// or a points value below 1 yields an empty result.
func Summarize(samples []int16, points int) []float32 {
	if len(samples) == 0 || points < 1 {
		return []float32{}
	}

	out := make([]float32, points)

	step := len(samples) / points
	if step == 0 {
		for i := range out {
			out[i] = utils.Int16ToFloat32(samples[i*len(samples)/points])
		}
		return out
	}

	for i := range out {
		out[i] = utils.Int16ToFloat32(samples[i*step])
	}

	return out
}
