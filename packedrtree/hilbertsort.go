// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"math"
	"sort"

	"github.com/gogama/hilbert"
)

const (
	// SortOrder is the level of the 2-dimensional Hilbert curve used
	// by HilbertSort. Feature midpoints are snapped onto the curve's
	// [0, 2^SortOrder)² lattice before their curve indices are
	// compared.
	SortOrder = 16
	// sortMax is the largest lattice coordinate at SortOrder.
	sortMax = 1<<SortOrder - 1
)

// hilbertSorter implements sort.Interface so HilbertSort can use the
// reflection-free sort.Sort. The extent fields locate the feature
// set's bounding box, against which midpoints are normalized.
type hilbertSorter struct {
	refs       []Ref
	x, y, w, h float64
}

func (s *hilbertSorter) Len() int {
	return len(s.refs)
}

func (s *hilbertSorter) Less(i, j int) bool {
	return s.index(&s.refs[i].Box) < s.index(&s.refs[j].Box)
}

func (s *hilbertSorter) Swap(i, j int) {
	s.refs[i], s.refs[j] = s.refs[j], s.refs[i]
}

// index maps a box midpoint, relative to the sort extent, onto the
// sort curve's lattice and returns its Hilbert index. Degenerate
// extents collapse the corresponding axis to zero.
func (s *hilbertSorter) index(b *Box) uint64 {
	var point [2]uint64
	if s.w != 0 {
		point[0] = uint64(math.Floor(sortMax * (b.midX() - s.x) / s.w))
	}
	if s.h != 0 {
		point[1] = uint64(math.Floor(sortMax * (b.midY() - s.y) / s.h))
	}
	return hilbert.Encode(point[:], SortOrder)
}

// HilbertSort sorts feature references into Hilbert curve order by the
// midpoints of their bounding boxes, where extent is the bounding box
// of the whole feature set. New requires its input in this order.
//
// The sort is not guaranteed to be stable: two references whose
// midpoints land on the same curve cell may appear in either order.
func HilbertSort(refs []Ref, extent Box) {
	s := hilbertSorter{
		refs: refs,
		x:    extent.XMin,
		y:    extent.YMin,
		w:    extent.Width(),
		h:    extent.Height(),
	}
	sort.Sort(&s)
}
