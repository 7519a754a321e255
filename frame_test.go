// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Rotate(t *testing.T) {
	for dim := 1; dim <= 8; dim++ {
		f := newFrame(dim)
		for n := 0; n <= dim+1; n++ {
			t.Run(fmt.Sprintf("dim=%d,n=%d", dim, n), func(t *testing.T) {
				for b := uint64(0); b < 1<<uint(dim); b++ {
					require.Equal(t, b, f.rotr(f.rotl(b, n), n))
					require.Equal(t, b, f.rotl(f.rotr(b, n), n))
				}
				// A full rotation is the identity.
				for b := uint64(0); b < 1<<uint(dim); b++ {
					require.Equal(t, b, f.rotl(b, dim))
				}
			})
		}
	}
}

// TestFrame_ApplyInverse walks the frames actually reached during a
// traversal and checks that applyInverse undoes apply for every D-bit
// vector in every reached frame.
func TestFrame_ApplyInverse(t *testing.T) {
	for dim := 2; dim <= 6; dim++ {
		t.Run(fmt.Sprintf("dim=%d", dim), func(t *testing.T) {
			f := newFrame(dim)
			for w := uint64(0); w < 1<<uint(dim); w++ {
				for v := uint64(0); v < 1<<uint(dim); v++ {
					require.Equal(t, v, f.applyInverse(f.apply(v)))
					require.Equal(t, v, f.apply(f.applyInverse(v)))
				}
				f = f.next(w)
			}
		})
	}
}

func TestFrame_Next(t *testing.T) {
	t.Run("IdentityAtOrigin", func(t *testing.T) {
		// Sub-cube 0 is entered at the origin along axis 0, so the
		// frame advances by the +1 axis step only.
		f := newFrame(4).next(0)

		assert.Equal(t, uint64(0), f.entry)
		assert.Equal(t, 1, f.axis)
	})

	t.Run("AxisStaysInRange", func(t *testing.T) {
		for dim := 1; dim <= 6; dim++ {
			f := newFrame(dim)
			for w := uint64(0); w < 1<<uint(dim); w++ {
				f = f.next(w)
				assert.Less(t, f.axis, dim)
				assert.GreaterOrEqual(t, f.axis, 0)
				assert.Zero(t, f.entry&^f.mask())
			}
		}
	})
}

func TestEntryCorner(t *testing.T) {
	// Hamilton's e(w) = gray(2*floor((w-1)/2)), e(0) = 0.
	expected := []uint64{0, 0, 0, 3, 3, 6, 6, 5}
	for w, e := range expected {
		assert.Equal(t, e, entryCorner(uint64(w)), "entryCorner(%d)", w)
	}
}

func TestIntraAxis(t *testing.T) {
	// For D=3: d(0)=0, then trailing ones of w (odd) or w-1 (even),
	// mod 3.
	expected := []int{0, 1, 1, 2, 2, 1, 1, 0}
	for w, d := range expected {
		assert.Equal(t, d, intraAxis(uint64(w), 3), "intraAxis(%d, 3)", w)
	}
}
