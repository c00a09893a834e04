// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces PCM to a handful of points for drawing.
//
// The reduction is plain decimation: no peak or RMS detection, so short
// transients may fall between points.
//
//	buf, _ := formats.DecodeFile("vocal.wav")
//	points := waveform.Summarize(buf.Samples, waveform.Points)
package waveform
