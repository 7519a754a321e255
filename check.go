// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

// EncodeChecked is a validating variant of Encode. It returns an error
// wrapping ErrOutOfRange if the dimension or level is unusable, if
// dimension*level exceeds the 64-bit index width, or if any component
// of point is outside [0, 2^level). On success it returns exactly what
// Encode returns for the same input; the unchecked fast path is not
// altered.
func EncodeChecked(point []uint64, level int) (uint64, error) {
	if err := checkParams(len(point), level); err != nil {
		return 0, err
	}
	for a, p := range point {
		if level < 64 && p >= uint64(1)<<uint(level) {
			return 0, rangeErr("point[%d] = %d exceeds level %d lattice", a, p, level)
		}
	}
	return Encode(point, level), nil
}

// DecodeChecked is a validating variant of Decode. It returns an error
// wrapping ErrOutOfRange if the dimension or level is unusable, if
// dimension*level exceeds the 64-bit index width, or if index is
// outside [0, 2^(dimension*level)). On success it fills dst exactly as
// Decode does for the same input.
func DecodeChecked(dst []uint64, index uint64, level int) error {
	dim := len(dst)
	if err := checkParams(dim, level); err != nil {
		return err
	}
	if dim*level < 64 && index >= uint64(1)<<uint(dim*level) {
		return rangeErr("index %d exceeds dimension %d level %d curve", index, dim, level)
	}
	Decode(dst, index, level)
	return nil
}

func checkParams(dim, level int) error {
	if dim < 1 {
		return rangeErr("dimension %d is not positive", dim)
	}
	if level < 0 {
		return rangeErr("level %d is negative", level)
	}
	if dim*level > 64 {
		return rangeErr("dimension %d level %d index does not fit in 64 bits", dim, level)
	}
	return nil
}
