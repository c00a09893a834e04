// SPDX-License-Identifier: EPL-2.0

package layer

import "errors"

var (
	ErrInvalidBlock      = errors.New("block length must be positive")
	ErrInvalidChannels   = errors.New("layer has no channels")
	ErrInvalidSampleRate = errors.New("layer sample rate must be positive")
)
