package rrb

import "github.com/arborlib/pcol/internal/owner"

// FromSlice bulk-builds a tree from elems under a single transient owner,
// then freezes it (spec C8). Building bottom-up in M-sized chunks avoids
// the O(log N)-per-element cost of repeated Append.
func FromSlice[T any](elems []T) *node[T] {
	o := owner.New()
	return freeze(buildFromSlice(elems, o), o)
}

func buildFromSlice[T any](elems []T, o *owner.Owner) *node[T] {
	if len(elems) == 0 {
		return newLeafOwned[T](nil, o)
	}

	level := make([]*node[T], 0, (len(elems)+M-1)/M)
	for i := 0; i < len(elems); i += M {
		end := i + M
		if end > len(elems) {
			end = len(elems)
		}
		chunk := make([]T, end-i)
		copy(chunk, elems[i:end])
		level = append(level, newLeafOwned(chunk, o))
	}

	for height := uint8(1); len(level) > 1; height++ {
		next := make([]*node[T], 0, (len(level)+M-1)/M)
		for i := 0; i < len(level); i += M {
			end := i + M
			if end > len(level) {
				end = len(level)
			}
			children := make([]*node[T], end-i)
			copy(children, level[i:end])
			next = append(next, newInternalOwned(height, children, o))
		}
		level = next
	}
	return level[0]
}

// AddAll appends every element of elems to the tree rooted at root,
// reusing o for every node it touches.
func AddAll[T any](root *node[T], elems []T, o *owner.Owner) *node[T] {
	return Concat(root, buildFromSlice(elems, o), o)
}

// UpdateAll replaces every element e with fn(e), mutating nodes owned by
// o in place.
func UpdateAll[T any](n *node[T], fn func(T) T, o *owner.Owner) *node[T] {
	if n.isLeaf() {
		l := ensureMutableLeaf(n.asLeaf(), o)
		for i := range l.elems {
			l.elems[i] = fn(l.elems[i])
		}
		return l.asNode()
	}
	in := ensureMutableInternal(n.asInternal(), o)
	for i, c := range in.children {
		in.children[i] = UpdateAll(c, fn, o)
	}
	return in.asNode()
}

// RemoveWhere drops every element for which pred returns true, rebuilding
// the tree from the surviving elements under o.
func RemoveWhere[T any](n *node[T], pred func(T) bool, o *owner.Owner) *node[T] {
	it := NewIterator(n)
	kept := make([]T, 0, n.count)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if !pred(v) {
			kept = append(kept, v)
		}
	}
	return buildFromSlice(kept, o)
}

// Freeze clears ownership along the subtree owned by o, making n safe to
// share across external aliases.
func Freeze[T any](n *node[T], o *owner.Owner) *node[T] {
	return freeze(n, o)
}

// NewOwner issues a fresh transient owner for a bulk-build session.
func NewOwner() *owner.Owner {
	return owner.New()
}
