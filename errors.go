// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every error returned from EncodeChecked
// and DecodeChecked, so callers can test for the whole class with
// errors.Is.
var ErrOutOfRange = errors.New(packageName + "input out of range")

const packageName = "hilbert: "

func rangeErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format+": %w", append(a, ErrOutOfRange)...)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
