// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

// grayCode returns the binary-reflected Gray code of w. Consecutive
// inputs produce outputs that differ in exactly one bit, which is what
// ties the Hilbert curve's per-level sub-cube ordering to lattice
// adjacency.
func grayCode(w uint64) uint64 {
	return w ^ (w >> 1)
}

// grayCodeInverse recovers w from its Gray code g, for words of dim
// bits. Bit k of w is the XOR of all bits of g at or above position k.
func grayCodeInverse(g uint64, dim int) uint64 {
	w := g
	for j := 1; j < dim; j++ {
		w ^= g >> j
	}
	return w
}
