// SPDX-License-Identifier: EPL-2.0

package project

import "errors"

var (
	ErrReadProject    = errors.New("cannot read project file")
	ErrInvalidProject = errors.New("invalid project")
	ErrLogConfig      = errors.New("invalid logging configuration")
)
