// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels        = errors.New("stream has no channels")
	ErrInvalidSampleRate = errors.New("stream has no valid sample rate")
)
