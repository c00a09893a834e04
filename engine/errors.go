// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrNoLayers     = errors.New("no layers to render")
	ErrEncode       = errors.New("cannot encode output")
	ErrShortWrite   = errors.New("output shorter than requested")
	ErrDevice       = errors.New("audio device failure")
	ErrPlaying      = errors.New("engine is playing")
	ErrInvalidTempo = errors.New("tempo must be positive")
)
