// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

// Encode returns the Hilbert curve index of a grid point at the given
// curve level. The dimension D of the curve is len(point), and the
// returned index lies in [0, 2^(D*level)).
//
// Encode does not validate its input. Every component of point must be
// less than 2^level, and D*level must not exceed 64, otherwise the
// result is unspecified. See EncodeChecked for a validating variant.
func Encode(point []uint64, level int) uint64 {
	dim := len(point)
	f := newFrame(dim)
	var index uint64
	for i := level - 1; i >= 0; i-- {
		// Gather bit i of every axis into one D-bit vector.
		var r uint64
		for a, p := range point {
			r |= (p >> uint(i) & 1) << uint(a)
		}
		// Rank of the sub-cube holding the point, in traversal order:
		// map the vector into the canonical frame, then invert the
		// Gray code that orders the level's sub-cubes.
		w := grayCodeInverse(f.applyInverse(r), dim)
		index = index<<uint(dim) | w
		f = f.next(w)
	}
	return index
}

// Decode writes into dst the grid point at position index along the
// Hilbert curve of dimension len(dst) and the given level. Any prior
// contents of dst are overwritten. Decode is the inverse of Encode and
// allocates nothing, so the caller can reuse dst across calls.
//
// Decode does not validate its input. The index must be less than
// 2^(D*level), and D*level must not exceed 64, otherwise the result is
// unspecified. See DecodeChecked for a validating variant.
func Decode(dst []uint64, index uint64, level int) {
	dim := len(dst)
	for a := range dst {
		dst[a] = 0
	}
	f := newFrame(dim)
	for i := level - 1; i >= 0; i-- {
		// Next D-bit chunk of the index, most significant first: the
		// rank of the sub-cube entered at this level.
		w := index >> uint(i*dim) & f.mask()
		// Gray-code the rank into the sub-cube corner label, then map
		// it from the canonical frame into the current local frame.
		r := f.apply(grayCode(w))
		// Scatter the D corner bits onto the point's axes.
		for a := range dst {
			dst[a] = dst[a]<<1 | r>>uint(a)&1
		}
		f = f.next(w)
	}
}
