// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var ErrUnknownVoice = errors.New("unknown drum voice")
