// SPDX-License-Identifier: EPL-2.0

package oto

import "errors"

var (
	ErrOpen               = errors.New("cannot open audio device")
	ErrSampleRateMismatch = errors.New("audio device already open at another sample rate")
)
