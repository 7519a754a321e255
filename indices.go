// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

import "iter"

// Indices returns an iterator over every valid index of the Hilbert
// curve with the given dimension and level, in ascending order: the
// sequence 0, 1, ..., 2^(dim*level)-1. The sequence is restartable;
// ranging over it a second time replays it from zero.
//
// Panics if dim is not positive, level is negative, or dim*level
// exceeds 63 (the count of indices must itself fit in an uint64).
func Indices(dim, level int) iter.Seq[uint64] {
	n := NumIndices(dim, level)
	return func(yield func(uint64) bool) {
		for i := uint64(0); i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// NumIndices returns the number of points on the Hilbert curve with
// the given dimension and level, i.e. 2^(dim*level). Panics under the
// same conditions as Indices.
func NumIndices(dim, level int) uint64 {
	if dim < 1 {
		fmtPanic("dimension %d is not positive", dim)
	} else if level < 0 {
		fmtPanic("level %d is negative", level)
	} else if dim*level > 63 {
		fmtPanic("dimension %d level %d index count does not fit in uint64", dim, level)
	}
	return uint64(1) << uint(dim*level)
}
