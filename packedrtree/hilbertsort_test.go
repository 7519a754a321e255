// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadrantRefs places one feature in each quadrant of the [-2,2]²
// extent. The level-1 curve visits the quadrants in the order
// (low,low), (low,high), (high,high), (high,low), so the Hilbert sort
// order of these refs by original offset is 0, 2, 1, 3.
func quadrantRefs() []Ref {
	return []Ref{
		{Box: Box{-2, -2, -1, -1}, Offset: 0}, // low x, low y
		{Box: Box{1, 1, 2, 2}, Offset: 1},     // high x, high y
		{Box: Box{-2, 1, -1, 2}, Offset: 2},   // low x, high y
		{Box: Box{1, -2, 2, -1}, Offset: 3},   // high x, low y
	}
}

func refsExtent(refs []Ref) Box {
	extent := EmptyBox
	for i := range refs {
		extent.Expand(&refs[i].Box)
	}
	return extent
}

func TestHilbertSort_QuadrantOrder(t *testing.T) {
	refs := quadrantRefs()

	HilbertSort(refs, refsExtent(refs))

	offsets := make([]int64, len(refs))
	for i := range refs {
		offsets[i] = refs[i].Offset
	}
	assert.Equal(t, []int64{0, 2, 1, 3}, offsets)
}

func TestHilbertSort_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	refs := make([]Ref, 200)
	for i := range refs {
		x := rng.Float64()*2000 - 1000
		y := rng.Float64()*2000 - 1000
		refs[i] = Ref{
			Box:    Box{x, y, x + rng.Float64()*10, y + rng.Float64()*10},
			Offset: int64(i),
		}
	}
	extent := refsExtent(refs)

	HilbertSort(refs, extent)

	s := hilbertSorter{
		refs: refs,
		x:    extent.XMin,
		y:    extent.YMin,
		w:    extent.Width(),
		h:    extent.Height(),
	}
	for i := 1; i < len(refs); i++ {
		require.LessOrEqual(t, s.index(&refs[i-1].Box), s.index(&refs[i].Box),
			"refs %d and %d out of curve order", i-1, i)
	}
}

func TestHilbertSort_DegenerateExtent(t *testing.T) {
	// All features on one vertical line: the x axis contributes
	// nothing and the sort must not divide by the zero width.
	refs := []Ref{
		{Box: Box{5, 9, 5, 9}, Offset: 0},
		{Box: Box{5, 1, 5, 1}, Offset: 1},
		{Box: Box{5, 4, 5, 4}, Offset: 2},
	}

	HilbertSort(refs, refsExtent(refs))

	offsets := make([]int64, len(refs))
	for i := range refs {
		offsets[i] = refs[i].Offset
	}
	// With x pinned to 0, curve order follows the y axis upward.
	assert.Equal(t, []int64{1, 2, 0}, offsets)
}

func TestHilbertSort_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		HilbertSort(nil, EmptyBox)
	})
}
