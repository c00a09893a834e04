// SPDX-License-Identifier: EPL-2.0

// Package oto is a device.Output that plays through the sound card with
// github.com/ebitengine/oto/v3. Samples reach oto as float32 little-endian
// stereo.
//
//	out := oto.New(44100)
//	if err := e.Start(out); err != nil {
//	    return err
//	}
//	defer e.Stop()
//
// oto allows one audio context per process, so every Output in a program
// must share a sample rate; New with another rate fails on Start with
// ErrSampleRateMismatch. Building this package needs cgo and, on Linux, the
// ALSA headers.
package oto
