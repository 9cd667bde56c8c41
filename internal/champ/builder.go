package champ

import "github.com/arborlib/pcol/internal/owner"

// FromEntries bulk-builds a trie from keys/values under a single
// transient owner, then freezes it (spec C8). Later entries for a
// duplicate key overwrite earlier ones, matching fromMap/fromEntries
// semantics.
func FromEntries[K comparable, V any](hashFn HashFunc[K], keys []K, values []V) *node[K, V] {
	o := owner.New()
	root := emptyNode[K, V]()
	for i := range keys {
		root, _ = Upsert(root, hashFn, hashFn(keys[i]), keys[i], 0, alwaysWrite(values[i]), nil, o)
	}
	return freeze(root, o)
}

func alwaysWrite[V any](v V) func(old V, found bool) (V, bool) {
	return func(V, bool) (V, bool) { return v, true }
}

// AddAll upserts every (key, value) pair of keys/values into root, reusing
// o for every node it touches.
func AddAll[K comparable, V any](root *node[K, V], hashFn HashFunc[K], keys []K, values []V, o *owner.Owner) *node[K, V] {
	for i := range keys {
		root, _ = Upsert(root, hashFn, hashFn(keys[i]), keys[i], 0, alwaysWrite(values[i]), nil, o)
	}
	return root
}

// UpdateAll replaces every value v with fn(k, v), rebuilding nodes owned
// by o in place as it walks.
func UpdateAll[K comparable, V any](root *node[K, V], hashFn HashFunc[K], fn func(K, V) V, o *owner.Owner) *node[K, V] {
	it := NewIterator(root)
	type entry struct {
		k K
		v V
	}
	var entries []entry
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		entries = append(entries, entry{k, v})
	}
	for _, e := range entries {
		newVal := fn(e.k, e.v)
		root, _ = Upsert(root, hashFn, hashFn(e.k), e.k, 0, alwaysWrite(newVal), nil, o)
	}
	return root
}

// RemoveWhere drops every entry for which pred returns true.
func RemoveWhere[K comparable, V any](root *node[K, V], hashFn HashFunc[K], pred func(K, V) bool, o *owner.Owner) *node[K, V] {
	it := NewIterator(root)
	var toRemove []K
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		if pred(k, v) {
			toRemove = append(toRemove, k)
		}
	}
	for _, k := range toRemove {
		root, _ = removeRec(root, hashFn, hashFn(k), k, 0, true, o)
	}
	return root
}

// Freeze clears ownership along the subtree owned by o.
func Freeze[K comparable, V any](n *node[K, V], o *owner.Owner) *node[K, V] {
	return freeze(n, o)
}

// NewOwner issues a fresh transient owner for a bulk-build session.
func NewOwner() *owner.Owner {
	return owner.New()
}
