// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package packedrtree provides a packed Hilbert R-tree: a static
// spatial index over a set of bounding-box feature references, laid
// out so that leaves appear in Hilbert curve order.
//
// Build an index by Hilbert-sorting the references with HilbertSort
// and passing them to New. The index can be searched in memory with
// Search, serialized with Marshal, rebuilt with Unmarshal, or searched
// directly against its serialized form with Seek without loading the
// whole tree.
//
// The curve order used for sorting comes from the parent hilbert
// package, which this package exists to exercise: spatial sort keys
// and R-tree leaf ordering are the canonical uses of a Hilbert index.
package packedrtree
