package rrb

import "sort"

// locate finds, for an internal node of the given height, which child
// slot holds index i and the index to continue the search with inside
// that child (spec §4.3.1).
func (n *internal[T]) locate(height uint8, i int) (slot int, sub int) {
	if n.sizeTable == nil {
		shift := uint(height) * LogM
		slot = i >> shift
		sub = i - slot*maxSizeForHeight(height-1)
		return slot, sub
	}
	slot = sort.Search(len(n.sizeTable), func(k int) bool {
		return n.sizeTable[k] > i
	})
	prior := 0
	if slot > 0 {
		prior = n.sizeTable[slot-1]
	}
	return slot, i - prior
}

// get returns the element at index i beneath n (0 <= i < n.count).
func get[T any](n *node[T], i int) T {
	for {
		if n.isLeaf() {
			return n.asLeaf().elems[i]
		}
		in := n.asInternal()
		slot, sub := in.locate(in.height, i)
		n = in.children[slot]
		i = sub
	}
}
