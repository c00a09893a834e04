// SPDX-License-Identifier: EPL-2.0

package formats

import "errors"

// ErrUnsupportedFormat is returned for file extensions with no registered decoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")
