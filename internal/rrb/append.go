package rrb

import "github.com/arborlib/pcol/internal/owner"

// appendRec descends the rightmost spine (spec §4.3.2). It returns the
// (possibly mutated) replacement for n, and — when n had no room left —
// a sibling node of n's own height that must be attached to n's parent,
// or to a freshly grown root if n was the root.
func appendRec[T any](n *node[T], v T, o *owner.Owner) (result *node[T], split *node[T]) {
	if n.isLeaf() {
		l := n.asLeaf()
		if len(l.elems) < M {
			nl := ensureMutableLeaf(l, o)
			nl.elems = append(nl.elems, v)
			nl.count = len(nl.elems)
			return nl.asNode(), nil
		}
		return n, newLeafOwned([]T{v}, o)
	}

	in := n.asInternal()
	lastIdx := len(in.children) - 1
	updatedChild, childSplit := appendRec(in.children[lastIdx], v, o)

	ni := ensureMutableInternal(in, o)
	ni.children[lastIdx] = updatedChild

	if childSplit == nil {
		ni.count = totalCount(ni.children)
		ni.sizeTable = computeSizeTable(ni.height, ni.children)
		return ni.asNode(), nil
	}

	if len(ni.children) < M {
		ni.children = append(ni.children, childSplit)
		ni.count = totalCount(ni.children)
		ni.sizeTable = computeSizeTable(ni.height, ni.children)
		return ni.asNode(), nil
	}

	// No room: propagate a same-height sibling wrapping the split child.
	wrapped := newInternalOwned(ni.height, []*node[T]{childSplit}, o)
	ni.count = totalCount(ni.children)
	ni.sizeTable = computeSizeTable(ni.height, ni.children)
	return ni.asNode(), wrapped
}

// Append adds v to the right end of the tree rooted at root, growing the
// root by one level when every ancestor on the rightmost spine is full.
func Append[T any](root *node[T], v T, o *owner.Owner) *node[T] {
	updated, split := appendRec(root, v, o)
	if split == nil {
		return updated
	}
	return newInternalOwned(updated.height()+1, []*node[T]{updated, split}, o)
}
