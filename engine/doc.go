// SPDX-License-Identifier: EPL-2.0

// Package engine is the sequencer: it places layers on a bar grid and mixes
// them into stereo float32 buffers.
//
// # Sessions
//
// A session is a layer set, a track length in bars and a tempo. Bars always
// hold four beats, so at 120 BPM and 44.1 kHz one bar is 88200 frames:
//
//	e := engine.New(engine.Options{BPM: 120})
//	err := e.SetLayers([]layer.Info{
//	    {Path: "drums.wav", Blocks: []layer.Block{{Start: 0, Length: 4}}},
//	    {Path: "bass.wav", Blocks: []layer.Block{{Start: 2, Length: 2}}},
//	}, 0) // 0 derives the length from the last block end
//
// # Rendering
//
// Render is the mixing step shared by both drivers. Each call fills one
// buffer and advances the render clock by its frame count. Layers are
// summed as sample/32768 and the mix is clamped to [-1, 1].
//
// Live playback pulls buffers from an output device:
//
//	err := e.Start(oto.New(e.SampleRate())) // github.com/ik5/audseq/device/oto
//	// ... Notifier.Finished fires at the end of the track
//	e.Stop()
//
// Offline rendering writes 16-bit stereo WAV in 512-frame chunks:
//
//	err := e.RenderToFile("mix.wav", 0) // 0 renders the whole track
//
// Layer set and tempo cannot change while a live stream runs; those calls
// return ErrPlaying.
package engine
