// SPDX-License-Identifier: EPL-2.0

package engine

import "github.com/ik5/audseq/waveform"

// SummarizeWaveform loads the file at path through the engine's loader and
// returns waveform.Points display points. A file that cannot be loaded
// yields an empty summary.
func (e *Engine) SummarizeWaveform(path string) []float32 {
	buf, err := e.loader.Load(path)
	if err != nil {
		logger.Warningf("cannot summarize %s: %v", path, err)
		return []float32{}
	}

	return waveform.Summarize(buf.Samples, waveform.Points)
}
