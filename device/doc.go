// SPDX-License-Identifier: EPL-2.0

// Package device connects the renderer to an audio output.
//
// An Output pulls stereo float32 buffers from a Callback until the callback
// answers Stop or the output is stopped:
//
//	out := device.NewHeadless(512, 0)
//	err := out.Start(func(buf []float32) device.Action {
//	    n := fill(buf)
//	    if n == 0 {
//	        return device.Stop
//	    }
//	    return device.Continue
//	})
//	defer out.Stop()
//
// Headless drives the callback with no hardware behind it, for tests, CI and
// offline previews. The sound card output lives in device/oto, which needs
// cgo; this package does not.
package device
