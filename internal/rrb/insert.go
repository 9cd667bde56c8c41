package rrb

import "github.com/arborlib/pcol/internal/owner"

const (
	splitCeil  = (M + 1 + 1) / 2 // ceil((M+1)/2)
	splitFloor = (M + 1) / 2     // floor((M+1)/2)
)

// insertRec recurses to the target leaf with a corrected sub-index,
// splitting a full leaf or a full internal node on the way back up
// (spec §4.3.3). It returns the replacement for n and, when n had to
// split, a new sibling of n's own height to be attached by the caller.
func insertRec[T any](n *node[T], i int, v T, o *owner.Owner) (result *node[T], split *node[T]) {
	if n.isLeaf() {
		l := n.asLeaf()
		if len(l.elems) < M {
			nl := ensureMutableLeaf(l, o)
			elems := make([]T, len(nl.elems)+1)
			copy(elems, nl.elems[:i])
			elems[i] = v
			copy(elems[i+1:], nl.elems[i:])
			nl.elems = elems
			nl.count = len(elems)
			return nl.asNode(), nil
		}
		combined := make([]T, M+1)
		copy(combined, l.elems[:i])
		combined[i] = v
		copy(combined[i+1:], l.elems[i:])
		first := newLeafOwned(combined[:splitCeil], o)
		second := newLeafOwned(combined[splitCeil:], o)
		return first, second
	}

	in := n.asInternal()
	slot, sub := in.locate(in.height, i)
	updatedChild, childSplit := insertRec(in.children[slot], sub, v, o)

	ni := ensureMutableInternal(in, o)
	ni.children[slot] = updatedChild

	if childSplit == nil {
		ni.count = totalCount(ni.children)
		ni.sizeTable = computeSizeTable(ni.height, ni.children)
		return ni.asNode(), nil
	}

	if len(ni.children) < M {
		children := make([]*node[T], len(ni.children)+1)
		copy(children, ni.children[:slot+1])
		children[slot+1] = childSplit
		copy(children[slot+2:], ni.children[slot+1:])
		ni.children = children
		ni.count = totalCount(ni.children)
		ni.sizeTable = computeSizeTable(ni.height, ni.children)
		return ni.asNode(), nil
	}

	combined := make([]*node[T], M+1)
	copy(combined, ni.children[:slot+1])
	combined[slot+1] = childSplit
	copy(combined[slot+2:], ni.children[slot+1:])

	ni.children = combined[:splitCeil]
	ni.count = totalCount(ni.children)
	ni.sizeTable = computeSizeTable(ni.height, ni.children)

	sibling := newInternalOwned(ni.height, combined[splitCeil:], o)
	return ni.asNode(), sibling
}

// InsertAt inserts v at index i (0 <= i <= count).
func InsertAt[T any](root *node[T], i int, v T, o *owner.Owner) *node[T] {
	if i == root.count {
		return Append(root, v, o)
	}
	updated, split := insertRec(root, i, v, o)
	if split == nil {
		return updated
	}
	return newInternalOwned(updated.height()+1, []*node[T]{updated, split}, o)
}
