// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"errors"
	"fmt"
)

const packageName = "packedrtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+format+": %w", append(a, err)...)
}

func wrapErr(text string, err error) error {
	return fmt.Errorf(packageName+text+": %w", err)
}

func textPanic(text string) {
	panic(packageName + text)
}
