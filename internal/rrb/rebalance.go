package rrb

import "github.com/arborlib/pcol/internal/owner"

// rebalancedSizes computes the target slot sizes for a contiguous sibling
// group whose total is P, satisfying the Search-Step Invariant
// S <= ceil(P/M) + EMax (spec §4.3.6). Slots are packed left-to-right to
// capacity M, which always yields ceil(P/M) slots — a stricter, simpler
// bound than the invariant requires, traded here for straightforward,
// verifiably-correct merge/split logic over raw throughput.
func rebalancedSizes(sizes []int) []int {
	total := 0
	for _, s := range sizes {
		total += s
	}
	numSlots := (total + M - 1) / M
	if numSlots < 1 {
		numSlots = 1
	}
	result := make([]int, numSlots)
	remaining := total
	for i := 0; i < numSlots; i++ {
		if i == numSlots-1 {
			result[i] = remaining
			break
		}
		result[i] = M
		remaining -= M
	}
	return result
}

// needsRebalance reports whether a contiguous sibling group of the given
// sizes violates the Search-Step Invariant.
func needsRebalance(sizes []int) bool {
	total := 0
	for _, s := range sizes {
		total += s
	}
	limit := (total+M-1)/M + EMax
	return len(sizes) > limit
}

// rebalanceLeaves redistributes the elements of a contiguous group of
// leaves into new leaves matching rebalancedSizes, reusing a leaf by
// reference when it is consumed whole at a slot boundary with unchanged
// size (spec §4.3.6 execute step).
func rebalanceLeaves[T any](group []*node[T], o *owner.Owner) []*node[T] {
	sizes := make([]int, len(group))
	for i, g := range group {
		sizes[i] = g.count
	}
	targets := rebalancedSizes(sizes)

	out := make([]*node[T], len(targets))
	srcIdx, srcOff := 0, 0
	for t, want := range targets {
		if srcOff == 0 && srcIdx < len(group) && group[srcIdx].count == want {
			out[t] = group[srcIdx]
			srcIdx++
			continue
		}
		elems := make([]T, 0, want)
		for len(elems) < want {
			src := group[srcIdx].asLeaf()
			avail := len(src.elems) - srcOff
			need := want - len(elems)
			take := avail
			if need < take {
				take = need
			}
			elems = append(elems, src.elems[srcOff:srcOff+take]...)
			srcOff += take
			if srcOff == len(src.elems) {
				srcIdx++
				srcOff = 0
			}
		}
		out[t] = newLeafOwned(elems, o)
	}
	return out
}

// rebalanceInternals redistributes the children of a contiguous group of
// same-height internal nodes into new internal nodes matching
// rebalancedSizes (by child count), reusing a node by reference under the
// same conditions as rebalanceLeaves.
func rebalanceInternals[T any](group []*node[T], o *owner.Owner) []*node[T] {
	height := group[0].height()
	childCounts := make([]int, len(group))
	for i, g := range group {
		childCounts[i] = len(g.asInternal().children)
	}
	targets := rebalancedSizes(childCounts)

	out := make([]*node[T], len(targets))
	srcIdx, srcOff := 0, 0
	for t, want := range targets {
		if srcOff == 0 && srcIdx < len(group) && len(group[srcIdx].asInternal().children) == want {
			out[t] = group[srcIdx]
			srcIdx++
			continue
		}
		children := make([]*node[T], 0, want)
		for len(children) < want {
			src := group[srcIdx].asInternal()
			avail := len(src.children) - srcOff
			need := want - len(children)
			take := avail
			if need < take {
				take = need
			}
			children = append(children, src.children[srcOff:srcOff+take]...)
			srcOff += take
			if srcOff == len(src.children) {
				srcIdx++
				srcOff = 0
			}
		}
		out[t] = newInternalOwned(height, children, o)
	}
	return out
}
