package rrb

import "github.com/arborlib/pcol/internal/owner"

// removeRec removes the element at index i beneath n, propagating empty
// children, short-child rebalancing, and single-child collapse on the way
// back up (spec §4.3.4). It returns the replacement for n (nil if n
// itself became empty) and whether n became empty.
func removeRec[T any](n *node[T], i int, o *owner.Owner) (result *node[T], empty bool) {
	if n.isLeaf() {
		l := n.asLeaf()
		if len(l.elems) == 1 {
			return nil, true
		}
		nl := ensureMutableLeaf(l, o)
		elems := make([]T, len(nl.elems)-1)
		copy(elems, nl.elems[:i])
		copy(elems[i:], nl.elems[i+1:])
		nl.elems = elems
		nl.count = len(elems)
		return nl.asNode(), false
	}

	in := n.asInternal()
	slot, sub := in.locate(in.height, i)
	updatedChild, childEmpty := removeRec(in.children[slot], sub, o)

	ni := ensureMutableInternal(in, o)

	if childEmpty {
		children := make([]*node[T], 0, len(ni.children)-1)
		children = append(children, ni.children[:slot]...)
		children = append(children, ni.children[slot+1:]...)
		ni.children = children
	} else {
		ni.children[slot] = updatedChild
		if updatedChild.count < M/2 && len(ni.children) > 1 {
			start := slot - 1
			if start < 0 {
				start = slot
			}
			group := append([]*node[T]{}, ni.children[start:start+2]...)

			var rebalanced []*node[T]
			if in.height-1 == 0 {
				rebalanced = rebalanceLeaves(group, o)
			} else {
				rebalanced = rebalanceInternals(group, o)
			}

			children := make([]*node[T], 0, len(ni.children)-2+len(rebalanced))
			children = append(children, ni.children[:start]...)
			children = append(children, rebalanced...)
			children = append(children, ni.children[start+2:]...)
			ni.children = children
		}
	}

	if len(ni.children) == 0 {
		return nil, true
	}
	if len(ni.children) == 1 {
		return ni.children[0], false
	}
	ni.count = totalCount(ni.children)
	ni.sizeTable = computeSizeTable(ni.height, ni.children)
	return ni.asNode(), false
}

// RemoveAt removes the element at index i, returning the new root (which
// may be a fresh empty leaf) and whether the tree became empty.
func RemoveAt[T any](root *node[T], i int, o *owner.Owner) (newRoot *node[T], empty bool) {
	result, empty := removeRec(root, i, o)
	if empty {
		return newLeafOwned[T](nil, o), true
	}
	return result, false
}
