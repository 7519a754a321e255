// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

import "math/bits"

// A frame is the rotation/reflection state threaded through the
// per-level loop of Encode and Decode. It orients a sub-cube's local
// traversal relative to the canonical lattice frame: entry is the
// sub-cube's entry corner, expressed as a D-bit reflection mask, and
// axis is the intra-sub-cube axis, so that the local frame is the
// canonical frame rotated by axis+1 bit positions and reflected
// through entry.
//
// A frame is local to a single Encode or Decode call. The zero frame
// is the identity orientation used at the most significant level.
type frame struct {
	dim   int
	entry uint64
	axis  int
}

func newFrame(dim int) frame {
	return frame{dim: dim}
}

// mask returns the dim-bit all-ones pattern.
func (f frame) mask() uint64 {
	return uint64(1)<<uint(f.dim) - 1
}

// rotl rotates b left by n positions within dim bits.
func (f frame) rotl(b uint64, n int) uint64 {
	n %= f.dim
	return (b<<uint(n) | b>>uint(f.dim-n)) & f.mask()
}

// rotr rotates b right by n positions within dim bits.
func (f frame) rotr(b uint64, n int) uint64 {
	n %= f.dim
	return (b>>uint(n) | b<<uint(f.dim-n)) & f.mask()
}

// apply maps a canonical-frame bit vector into the sub-cube's local
// frame: rotate into the local axis order, then reflect through the
// entry corner.
func (f frame) apply(v uint64) uint64 {
	return f.rotl(v, f.axis+1) ^ f.entry
}

// applyInverse maps a local-frame bit vector back to the canonical
// frame. It inverts apply: reflect first, then rotate back.
func (f frame) applyInverse(v uint64) uint64 {
	return f.rotr(v^f.entry, f.axis+1)
}

// next derives the frame for the following, finer level from the
// sub-cube rank w consumed or produced at the current level. This is
// the update rule of Hamilton's report: the entry corner picks up the
// w-th sub-cube's own entry corner, rotated into the current frame,
// and the intra axis advances by the w-th sub-cube's internal
// direction plus one, modulo D.
func (f frame) next(w uint64) frame {
	return frame{
		dim:   f.dim,
		entry: f.entry ^ f.rotl(entryCorner(w), f.axis+1),
		axis:  (f.axis + intraAxis(w, f.dim) + 1) % f.dim,
	}
}

// entryCorner returns the corner, as a D-bit vector, at which the
// curve enters the w-th sub-cube of a level: gray(2*floor((w-1)/2)),
// with the curve entering the 0th sub-cube at the origin.
func entryCorner(w uint64) uint64 {
	if w == 0 {
		return 0
	}
	return grayCode(2 * ((w - 1) / 2))
}

// intraAxis returns the axis along which the curve traverses the
// interior of the w-th sub-cube. For w > 0 it is the number of
// trailing one bits of w (odd w) or of w-1 (even w), reduced mod dim.
func intraAxis(w uint64, dim int) int {
	switch {
	case w == 0:
		return 0
	case w&1 == 0:
		return trailingOnes(w-1) % dim
	default:
		return trailingOnes(w) % dim
	}
}

func trailingOnes(w uint64) int {
	return bits.TrailingZeros64(^w)
}
