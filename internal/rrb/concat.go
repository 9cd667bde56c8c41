package rrb

import "github.com/arborlib/pcol/internal/owner"

// concatNodes merges left and right (spec §4.3.5), returning a node whose
// height is max(left.height(), right.height()) or one taller when no
// single node could hold the merged contents.
func concatNodes[T any](left, right *node[T], o *owner.Owner) *node[T] {
	hL, hR := left.height(), right.height()
	switch {
	case hL == hR:
		return concatSameHeight(left, right, o)
	case hL > hR:
		return climbRight(left, right, hR, o)
	default:
		return climbLeft(right, left, hL, o)
	}
}

// concatSameHeight merges two nodes of equal height, either into one node
// (if their combined contents fit) or into a new two-child parent one
// level taller.
func concatSameHeight[T any](left, right *node[T], o *owner.Owner) *node[T] {
	if left.isLeaf() {
		ll, rl := left.asLeaf(), right.asLeaf()
		if len(ll.elems)+len(rl.elems) <= M {
			elems := make([]T, 0, len(ll.elems)+len(rl.elems))
			elems = append(elems, ll.elems...)
			elems = append(elems, rl.elems...)
			return newLeafOwned(elems, o)
		}
		return newInternalOwned(1, []*node[T]{left, right}, o)
	}

	li, ri := left.asInternal(), right.asInternal()
	if len(li.children)+len(ri.children) <= M {
		children := make([]*node[T], 0, len(li.children)+len(ri.children))
		children = append(children, li.children...)
		children = append(children, ri.children...)
		children = rebalanceIfNeeded(li.height, children, o)
		return newInternalOwned(li.height, children, o)
	}
	return newInternalOwned(li.height+1, []*node[T]{left, right}, o)
}

// climbRight descends left's rightmost spine down to the node whose
// height is targetHeight+1, merges its last child with right, then
// rebuilds the path bottom-up (spec §4.3.5, hL > hR case).
func climbRight[T any](n *node[T], right *node[T], targetHeight uint8, o *owner.Owner) *node[T] {
	in := n.asInternal()
	lastIdx := len(in.children) - 1
	last := in.children[lastIdx]

	var replacement *node[T]
	if last.height() == targetHeight {
		replacement = concatSameHeight(last, right, o)
	} else {
		replacement = climbRight(last, right, targetHeight, o)
	}

	ni := ensureMutableInternal(in, o)
	if replacement.height() == last.height() {
		ni.children[lastIdx] = replacement
	} else {
		grown := replacement.asInternal().children
		children := make([]*node[T], 0, len(ni.children)-1+len(grown))
		children = append(children, ni.children[:lastIdx]...)
		children = append(children, grown...)
		ni.children = children
	}
	return rebuildAfterSplice(ni, o)
}

// climbLeft is the symmetric counterpart of climbRight for hR > hL,
// descending right's leftmost spine and merging left into its first child.
func climbLeft[T any](n *node[T], left *node[T], targetHeight uint8, o *owner.Owner) *node[T] {
	in := n.asInternal()
	first := in.children[0]

	var replacement *node[T]
	if first.height() == targetHeight {
		replacement = concatSameHeight(left, first, o)
	} else {
		replacement = climbLeft(first, left, targetHeight, o)
	}

	ni := ensureMutableInternal(in, o)
	if replacement.height() == first.height() {
		ni.children[0] = replacement
	} else {
		grown := replacement.asInternal().children
		children := make([]*node[T], 0, len(ni.children)-1+len(grown))
		children = append(children, grown...)
		children = append(children, ni.children[1:]...)
		ni.children = children
	}
	return rebuildAfterSplice(ni, o)
}

// rebalanceIfNeeded rebalances children (the would-be child list of a
// node of height nodeHeight, so each child itself has height
// nodeHeight-1) if they violate the Search-Step Invariant.
func rebalanceIfNeeded[T any](nodeHeight uint8, children []*node[T], o *owner.Owner) []*node[T] {
	sizes := make([]int, len(children))
	for i, c := range children {
		sizes[i] = c.count
	}
	if !needsRebalance(sizes) {
		return children
	}
	if nodeHeight == 1 {
		return rebalanceLeaves(children, o)
	}
	return rebalanceInternals(children, o)
}

// rebuildAfterSplice re-establishes the Search-Step Invariant (and the
// M-children cap) after a splice grew ni's child count by at most one,
// returning either ni itself (height unchanged) or a new two-child
// parent one level taller, signalling growth to the caller exactly like
// insertRec/appendRec.
func rebuildAfterSplice[T any](ni *internal[T], o *owner.Owner) *node[T] {
	children := rebalanceIfNeeded(ni.height, ni.children, o)

	if len(children) <= M {
		ni.children = children
		ni.count = totalCount(children)
		ni.sizeTable = computeSizeTable(ni.height, children)
		return ni.asNode()
	}

	first := newInternalOwned(ni.height, children[:splitCeil], o)
	second := newInternalOwned(ni.height, children[splitCeil:], o)
	return newInternalOwned(ni.height+1, []*node[T]{first, second}, o)
}

// Concat concatenates left and right (spec §4.3.5). Either may be empty.
func Concat[T any](left, right *node[T], o *owner.Owner) *node[T] {
	if left.count == 0 {
		return right
	}
	if right.count == 0 {
		return left
	}
	return concatNodes(left, right, o)
}
