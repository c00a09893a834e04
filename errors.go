// SPDX-License-Identifier: EPL-2.0

package audseq

import "errors"

var ErrNoOutput = errors.New("no output device")
