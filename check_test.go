// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hilbert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeChecked(t *testing.T) {
	t.Run("AgreesWithEncode", func(t *testing.T) {
		for index := uint64(0); index < 1<<9; index++ {
			point := make([]uint64, 3)
			Decode(point, index, 3)

			actual, err := EncodeChecked(point, 3)

			require.NoError(t, err)
			require.Equal(t, Encode(point, 3), actual)
			require.Equal(t, index, actual)
		}
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name  string
			point []uint64
			level int
		}{
			{"ZeroDim", []uint64{}, 4},
			{"NegativeLevel", []uint64{1, 2}, -1},
			{"IndexTooWide", make([]uint64, 5), 13},
			{"CoordinateTooBig", []uint64{3, 4}, 2},
			{"CoordinateTooBigLevelZero", []uint64{1, 0}, 0},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				_, err := EncodeChecked(testCase.point, testCase.level)

				assert.ErrorIs(t, err, ErrOutOfRange)
			})
		}
	})
}

func TestDecodeChecked(t *testing.T) {
	t.Run("AgreesWithDecode", func(t *testing.T) {
		checked := make([]uint64, 2)
		unchecked := make([]uint64, 2)
		for index := uint64(0); index < 1<<8; index++ {
			err := DecodeChecked(checked, index, 4)

			require.NoError(t, err)
			Decode(unchecked, index, 4)
			require.Equal(t, unchecked, checked)
		}
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name  string
			dim   int
			index uint64
			level int
		}{
			{"ZeroDim", 0, 0, 4},
			{"NegativeLevel", 2, 0, -1},
			{"IndexTooWide", 7, 0, 10},
			{"IndexTooBig", 2, 16, 2},
			{"IndexTooBigLevelZero", 3, 1, 0},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				err := DecodeChecked(make([]uint64, testCase.dim), testCase.index, testCase.level)

				assert.ErrorIs(t, err, ErrOutOfRange)
				assert.True(t, errors.Is(err, ErrOutOfRange))
			})
		}
	})

	t.Run("FullWidth", func(t *testing.T) {
		// dim*level == 64 exactly fills the index type; every index is
		// then in range.
		dst := make([]uint64, 8)

		err := DecodeChecked(dst, ^uint64(0), 8)

		assert.NoError(t, err)
	})
}
