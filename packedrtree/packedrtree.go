// Copyright 2026 The hilbert (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"container/heap"
	"fmt"
	"io"
	"math"
	"sort"
)

// A Ref is one leaf of the index: the bounding box of a feature's
// geometry plus the feature's byte offset into whatever data section
// the caller keeps alongside the index.
type Ref struct {
	Box

	// Offset is the referenced feature's byte offset into the data
	// section.
	Offset int64
}

// String returns a summary description of the feature reference.
func (r Ref) String() string {
	return fmt.Sprintf("Ref{%s,Offset:%d}", r.Box, r.Offset)
}

// A node is one slot of the packed tree. A leaf node is a Ref. An
// internal node's Box is the extent of its subtree and its Offset is
// the node index of its first child.
type node struct {
	Ref
}

// An extent is the closed/open range [start, end) of node indices
// making up one tree level.
type extent struct {
	start, end int
}

func validateParams(numRefs int, nodeSize uint16) {
	if numRefs < 1 {
		textPanic("empty tree not allowed (num refs must be > 0)")
	} else if nodeSize < 2 {
		textPanic("node size must be at least 2")
	}
}

// levelize computes the per-level node index extents implied by a leaf
// count and node size. Level 0 is the leaf level and occupies the tail
// of the node list; the last level is the root, which is always node
// 0. For numRefs = 4, nodeSize = 2 the result is
// [{3,7} {1,3} {0,1}].
func levelize(numRefs, nodeSize int) ([]extent, error) {
	// Count nodes per level, leaf level first: [4, 2, 1] for the
	// example above. Even a single-leaf tree gets a distinct root, to
	// stay serialization-compatible with the other implementations of
	// this layout.
	counts := []int{numRefs}
	var numInternal int
	for n := numRefs; ; {
		n = (n + nodeSize - 1) / nodeSize
		counts = append(counts, n)
		numInternal += n
		if n == 1 {
			break
		}
	}
	if numInternal > math.MaxInt-numRefs {
		return nil, textErr("total node count overflows int")
	}

	// Assign extents back to front: the leaf level ends at the total
	// node count, the root level starts at zero.
	levels := make([]extent, len(counts))
	end := numRefs + numInternal
	for i, c := range counts {
		levels[i] = extent{start: end - c, end: end}
		end -= c
	}
	return levels, nil
}

// numNodes returns the total node count, which is also the exclusive
// upper bound of every level extent's node indices.
func numNodes(levels []extent) int {
	return levels[0].end
}

// Size returns the serialized size in bytes of a packed Hilbert R-tree
// index with the given leaf count and node size. Panics if numRefs is
// less than 1 or nodeSize is less than 2; returns an error if the size
// overflows int64.
func Size(numRefs int, nodeSize uint16) (int64, error) {
	validateParams(numRefs, nodeSize)
	return size(numRefs, int(nodeSize))
}

func size(numRefs, nodeSize int) (int64, error) {
	levels, err := levelize(numRefs, nodeSize)
	if err != nil {
		return 0, err
	}
	n := numNodes(levels)
	if int64(n) > math.MaxInt64/nodeLen {
		return 0, textErr("index size overflows int64")
	}
	return int64(n) * nodeLen, nil
}

// A ticket is a pending unit of search work: the first node of a run
// of siblings to examine, and the level that node belongs to.
type ticket struct {
	node  int
	level int
}

// A frontier holds the tickets not yet processed by a search. The
// in-memory search uses a LIFO stack since node access order is free;
// Seek uses a min-heap keyed on node index so reads advance
// monotonically through the serialized index.
type frontier interface {
	push(t ticket)
	pop() ticket
	size() int
}

type stack []ticket

func (s *stack) push(t ticket) { *s = append(*s, t) }
func (s *stack) size() int     { return len(*s) }
func (s *stack) pop() ticket {
	old := *s
	t := old[len(old)-1]
	*s = old[:len(old)-1]
	return t
}

type minHeap []ticket

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].node < h[j].node }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(ticket)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	t := old[len(old)-1]
	*h = old[:len(old)-1]
	return t
}

func (h *minHeap) push(t ticket) { heap.Push(h, t) }
func (h *minHeap) pop() ticket   { return heap.Pop(h).(ticket) }
func (h *minHeap) size() int     { return len(*h) }

// A fetchFunc loads the nodes in index range [i, j) into the node
// list. It lets search run against an index that is not yet in
// memory; a nil fetchFunc means every node is already loaded.
type fetchFunc func(i, j int, nodes []node) error

// Result is a single search hit.
type Result struct {
	// Offset is the matching feature's byte offset into the data
	// section, copied from the leaf Ref.
	Offset int64
	// RefIndex is the position of the matching Ref in the
	// Hilbert-sorted list the index was built from.
	RefIndex int
}

// Results is a list of search hits implementing sort.Interface in
// ascending order of Result.Offset.
type Results []Result

func (rs Results) Len() int           { return len(rs) }
func (rs Results) Less(i, j int) bool { return rs[i].Offset < rs[j].Offset }
func (rs Results) Swap(i, j int)      { rs[i], rs[j] = rs[j], rs[i] }

// tree carries the search machinery shared by the in-memory
// PackedRTree and the streaming Seek.
type tree struct {
	numRefs  int
	nodeSize int
	levels   []extent
	nodes    []node
}

func newTree(numRefs int, nodeSize uint16) (tree, error) {
	validateParams(numRefs, nodeSize)
	levels, err := levelize(numRefs, int(nodeSize))
	if err != nil {
		return tree{}, err
	}
	return tree{
		numRefs:  numRefs,
		nodeSize: int(nodeSize),
		levels:   levels,
		nodes:    make([]node, numNodes(levels)),
	}, nil
}

// search walks the tree from the root, expanding every run of sibling
// nodes whose boxes intersect the query box, and collects the
// qualifying leaves.
func (t *tree) search(f frontier, fetch fetchFunc, query Box) (Results, error) {
	leafStart := t.levels[0].start
	f.push(ticket{node: 0, level: len(t.levels) - 1})
	results := make(Results, 0)

	for f.size() > 0 {
		tk := f.pop()
		end := tk.node + t.nodeSize
		if t.levels[tk.level].end < end {
			end = t.levels[tk.level].end
		}
		if fetch != nil {
			if err := fetch(tk.node, end, t.nodes); err != nil {
				return nil, err
			}
		}
		for pos := tk.node; pos < end; pos++ {
			n := &t.nodes[pos]
			if !query.intersects(&n.Box) {
				continue
			}
			if tk.level == 0 {
				results = append(results, Result{Offset: n.Offset, RefIndex: pos - leafStart})
			} else {
				f.push(ticket{node: int(n.Offset), level: tk.level - 1})
			}
		}
	}
	return results, nil
}

// PackedRTree is an in-memory packed Hilbert R-tree.
type PackedRTree struct {
	tree
}

// New builds a packed Hilbert R-tree over a non-empty, Hilbert-sorted
// list of feature references with the given node fan-out. Panics if
// the reference list is empty or nodeSize is less than 2.
//
// Use HilbertSort to order the references. If the input is not
// Hilbert-sorted the tree still answers searches correctly, but loses
// the locality that makes it efficient.
func New(refs []Ref, nodeSize uint16) (*PackedRTree, error) {
	t, err := newTree(len(refs), nodeSize)
	if err != nil {
		return nil, err
	}

	// The leaves occupy the tail of the node list, in sort order.
	leafStart := t.levels[0].start
	for i := range refs {
		t.nodes[leafStart+i] = node{refs[i]}
	}

	// Build each internal level from the level below it: every parent
	// covers up to nodeSize children and points at the first one.
	for lv := 0; lv+1 < len(t.levels); lv++ {
		child := t.levels[lv].start
		levelEnd := t.levels[lv].end
		parent := t.levels[lv+1].start
		for child < levelEnd {
			n := node{Ref{Box: EmptyBox, Offset: int64(child)}}
			for c := 0; c < t.nodeSize && child < levelEnd; c++ {
				n.Expand(&t.nodes[child].Box)
				child++
			}
			t.nodes[parent] = n
			parent++
		}
	}

	return &PackedRTree{t}, nil
}

// Bounds returns the bounding box of every feature in the index.
func (prt *PackedRTree) Bounds() Box {
	return prt.nodes[0].Box
}

// NumRefs returns the number of feature references in the index.
func (prt *PackedRTree) NumRefs() int {
	return prt.numRefs
}

// NodeSize returns the index's node fan-out.
func (prt *PackedRTree) NodeSize() uint16 {
	return uint16(prt.nodeSize)
}

// String returns a summary description of the index.
func (prt *PackedRTree) String() string {
	return fmt.Sprintf("PackedRTree{Bounds:%s,NumRefs:%d,NodeSize:%d}", prt.Bounds(), prt.numRefs, prt.nodeSize)
}

// Search returns every feature reference whose bounding box intersects
// the query box. The order of the results is not defined; sort them
// with sort.Sort if a deterministic order is needed.
func (prt *PackedRTree) Search(query Box) Results {
	var f stack
	r, err := prt.search(&f, nil, query)
	if err != nil {
		textPanic("in-memory search cannot fail: " + err.Error())
	}
	return r
}

// Marshal serializes the index to w, returning the number of bytes
// written. The serialized form is the node list in root-first order,
// each node as four little-endian float64 bounds and a little-endian
// 64-bit offset; it is byte-compatible with the index section of the
// FlatGeobuf format.
func (prt *PackedRTree) Marshal(w io.Writer) (int, error) {
	if w == nil {
		textPanic("nil writer")
	}
	return writeNodes(w, prt.nodes)
}

// Unmarshal rebuilds an in-memory packed Hilbert R-tree from its
// serialized form. The leaf count and node size are not part of the
// serialized index, so the caller must supply the values used when
// the index was built.
//
// If the reader continues into a data section, it is left positioned
// at the first byte past the index. To search the serialized index
// without materializing the tree, use Seek instead.
func Unmarshal(r io.Reader, numRefs int, nodeSize uint16) (*PackedRTree, error) {
	if r == nil {
		textPanic("nil reader")
	}
	t, err := newTree(numRefs, nodeSize)
	if err != nil {
		return nil, err
	}
	if err = readNodes(r, t.nodes); err != nil {
		return nil, err
	}
	return &PackedRTree{t}, nil
}

// Seek searches the serialized form of a packed Hilbert R-tree
// directly from a seekable reader, fetching only the node runs the
// search visits. Results are returned in ascending Result.Offset
// order.
//
// The reader must be positioned at the first byte of the index. On
// success it is left positioned at the first byte past the index,
// whether or not the search visited the final nodes.
func Seek(rs io.ReadSeeker, numRefs int, nodeSize uint16, query Box) (Results, error) {
	if rs == nil {
		textPanic("nil read seeker")
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, wrapErr("failed to cache index start offset", err)
	}
	sz, err := size(numRefs, int(nodeSize))
	if err != nil {
		return nil, err
	} else if sz > math.MaxInt64-start {
		return nil, textErr("index end offset overflows int64")
	}
	end := start + sz

	offset := start
	fetch := func(i, j int, nodes []node) error {
		rel := start + int64(i)*nodeLen - offset
		if rel != 0 {
			if offset, err = rs.Seek(rel, io.SeekCurrent); err != nil {
				return fmtErr("failed to seek to node %d", err, i)
			}
		}
		if err := readNodes(rs, nodes[i:j]); err != nil {
			return fmtErr("failed to read nodes %d..%d", err, i, j)
		}
		offset += int64(j-i) * nodeLen
		return nil
	}

	t, err := newTree(numRefs, nodeSize)
	if err != nil {
		return nil, err
	}
	var f minHeap
	results, err := t.search(&f, fetch, query)
	if err != nil {
		return nil, err
	}

	// Skip past any nodes the search never visited, so the caller can
	// rely on the read position afterward.
	if offset != end {
		if _, err = rs.Seek(end, io.SeekStart); err != nil {
			return nil, wrapErr("failed to skip to end of index", err)
		}
	}

	sort.Sort(results)
	return results, nil
}
