// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var ErrAlreadyStarted = errors.New("output already started")
