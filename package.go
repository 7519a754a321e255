// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package hilbert converts between D-dimensional grid points and their
// positions along a D-dimensional Hilbert space-filling curve.
//
// A Hilbert curve of dimension D and level l visits every point of the
// discrete lattice [0, 2^l)^D exactly once, and consecutive positions
// along the curve are always adjacent lattice points. This makes the
// curve index a good spatial sort key: features that are close on the
// curve are close in space. The packedrtree subpackage uses it for
// exactly that purpose.
//
// The algorithm is Butz's iterative construction as formalized in
// Chris Hamilton's technical report "Compact Hilbert Indices"
// (Dalhousie University CS-2006-07). Encode and Decode are pure
// functions with no shared state, so they are safe for concurrent use
// without synchronization.
//
// Encode and Decode do not validate their inputs. Out-of-range inputs
// produce unspecified, though non-crashing, results. Use EncodeChecked
// and DecodeChecked where inputs are not already known to be valid.
package hilbert
