package rrb

import "github.com/arborlib/pcol/internal/owner"

// ensureMutableLeaf returns a leaf that o is allowed to mutate in place:
// l itself if it is already owned by o, otherwise a fresh growable copy
// tagged with o (spec §4.1).
func ensureMutableLeaf[T any](l *leaf[T], o *owner.Owner) *leaf[T] {
	if o != nil && l.owner == o {
		return l
	}
	elems := make([]T, len(l.elems), M)
	copy(elems, l.elems)
	nl := &leaf[T]{elems: elems}
	nl.kind = kindLeaf
	nl.owner = o
	nl.count = len(elems)
	return nl
}

// ensureMutableInternal returns an internal node that o is allowed to
// mutate in place, copying children/sizeTable slices when foreign-owned.
func ensureMutableInternal[T any](in *internal[T], o *owner.Owner) *internal[T] {
	if o != nil && in.owner == o {
		return in
	}
	children := make([]*node[T], len(in.children), M)
	copy(children, in.children)
	var table []int
	if in.sizeTable != nil {
		table = make([]int, len(in.sizeTable), M)
		copy(table, in.sizeTable)
	}
	ni := &internal[T]{height: in.height, children: children, sizeTable: table}
	ni.kind = kindInternal
	ni.owner = o
	ni.count = in.count
	return ni
}

// freeze clears the owner field along the reachable subtree for every
// node owned by o, leaving foreign nodes untouched (spec §4.1). Freezing
// is idempotent and a no-op for a different owner.
func freeze[T any](n *node[T], o *owner.Owner) *node[T] {
	if o == nil || n.owner != o {
		return n
	}
	n.owner = nil
	if n.kind == kindInternal {
		in := n.asInternal()
		for _, c := range in.children {
			freeze(c, o)
		}
	}
	return n
}

// update replaces the element at index i with v, returning a new node.
// If o is non-nil, nodes owned by o are mutated in place; otherwise every
// node on the path is path-copied.
func update[T any](n *node[T], i int, v T, o *owner.Owner, identical func(a, b T) bool) *node[T] {
	if n.isLeaf() {
		l := n.asLeaf()
		if identical != nil && identical(l.elems[i], v) {
			return n
		}
		nl := ensureMutableLeaf(l, o)
		nl.elems[i] = v
		return nl.asNode()
	}
	in := n.asInternal()
	slot, sub := in.locate(in.height, i)
	newChild := update(in.children[slot], sub, v, o, identical)
	if newChild == in.children[slot] && o == nil {
		// Without an owner nothing is mutated in place, so an unchanged
		// child pointer means the identical short-circuit was taken below.
		return n
	}
	ni := ensureMutableInternal(in, o)
	ni.children[slot] = newChild
	return ni.asNode()
}
