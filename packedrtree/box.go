// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"math"
	"strconv"
	"strings"
)

// A Box is an axis-aligned bounding rectangle.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the empty bounding rectangle: it contains no points, and
// expanding it by any box yields that box. Use it, not the zero Box,
// as the seed value when accumulating the extent of a feature set.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the horizontal extent of the box.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Expand grows b to the smallest box containing both b and c.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

func (b *Box) intersects(o *Box) bool {
	if b.XMax < o.XMin || o.XMax < b.XMin {
		return false
	}
	if b.YMax < o.YMin || o.YMax < b.YMin {
		return false
	}
	return true
}

// String returns a compact "[XMin,YMin,XMax,YMax]" rendering of the
// box.
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(strconv.FormatFloat(b.XMin, 'g', 8, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(b.YMin, 'g', 8, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(b.XMax, 'g', 8, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(b.YMax, 'g', 8, 64))
	sb.WriteByte(']')
	return sb.String()
}
