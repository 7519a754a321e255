// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"encoding/binary"
	"io"
	"math"
)

// nodeLen is the serialized size of one node: four float64 box bounds
// followed by an int64 offset, all little-endian. The layout matches
// the index section of the FlatGeobuf format.
const nodeLen = 40

// nodeBuf is the number of nodes converted per I/O call by writeNodes
// and readNodes.
const nodeBuf = 512

func putNode(dst []byte, n *node) {
	binary.LittleEndian.PutUint64(dst[0:], math.Float64bits(n.XMin))
	binary.LittleEndian.PutUint64(dst[8:], math.Float64bits(n.YMin))
	binary.LittleEndian.PutUint64(dst[16:], math.Float64bits(n.XMax))
	binary.LittleEndian.PutUint64(dst[24:], math.Float64bits(n.YMax))
	binary.LittleEndian.PutUint64(dst[32:], uint64(n.Offset))
}

func getNode(src []byte, n *node) {
	n.XMin = math.Float64frombits(binary.LittleEndian.Uint64(src[0:]))
	n.YMin = math.Float64frombits(binary.LittleEndian.Uint64(src[8:]))
	n.XMax = math.Float64frombits(binary.LittleEndian.Uint64(src[16:]))
	n.YMax = math.Float64frombits(binary.LittleEndian.Uint64(src[24:]))
	n.Offset = int64(binary.LittleEndian.Uint64(src[32:]))
}

// writeNodes serializes nodes to w through a fixed-size buffer,
// returning the number of bytes written.
func writeNodes(w io.Writer, nodes []node) (n int, err error) {
	buf := make([]byte, 0, nodeBuf*nodeLen)
	for i := range nodes {
		var scratch [nodeLen]byte
		putNode(scratch[:], &nodes[i])
		buf = append(buf, scratch[:]...)
		if len(buf) == cap(buf) || i == len(nodes)-1 {
			var m int
			m, err = w.Write(buf)
			n += m
			if err != nil {
				return
			}
			buf = buf[:0]
		}
	}
	return
}

// readNodes fills nodes by deserializing exactly
// len(nodes)*nodeLen bytes from r.
func readNodes(r io.Reader, nodes []node) error {
	buf := make([]byte, nodeBuf*nodeLen)
	for len(nodes) > 0 {
		chunk := len(nodes)
		if chunk > nodeBuf {
			chunk = nodeBuf
		}
		b := buf[:chunk*nodeLen]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		for i := 0; i < chunk; i++ {
			getNode(b[i*nodeLen:], &nodes[i])
		}
		nodes = nodes[chunk:]
	}
	return nil
}
