// Package champ's exported surface is consumed only by the pcol façade;
// it adds the shared error taxonomy on top of the raw node operations in
// the rest of this package.
package champ

import "github.com/arborlib/pcol/internal/perrors"

// Root is an opaque handle to a frozen CHAMP trie root, shared by value
// between every Map built from it.
type Root[K comparable, V any] = *node[K, V]

// Empty returns a fresh empty root.
func Empty[K comparable, V any]() Root[K, V] {
	return emptyNode[K, V]()
}

// Len returns the number of entries in root.
func Len[K comparable, V any](root Root[K, V]) int {
	return root.count
}

// Lookup returns the value stored for key, or ok=false on a miss — a
// miss is the documented "soft" NotFound outcome (spec §7), not an error.
func Lookup[K comparable, V any](root Root[K, V], hashFn HashFunc[K], key K) (V, bool) {
	return Get(root, hashFn(key), key, 0)
}

// Add inserts or overwrites key with value, returning a fresh root.
// identical, if non-nil, short-circuits when key already maps to an
// equal value.
func Add[K comparable, V any](root Root[K, V], hashFn HashFunc[K], key K, value V, identical func(a, b V) bool) Root[K, V] {
	newRoot, _ := Upsert(root, hashFn, hashFn(key), key, 0, alwaysWrite(value), identical, nil)
	return newRoot
}

// Update applies fn to the value stored for key. If key is absent and
// ifAbsent is non-nil, the value ifAbsent() returns is inserted when its
// second result is true; otherwise (or if ifAbsent is nil) the map is
// returned unchanged (spec §4.4.2).
func Update[K comparable, V any](root Root[K, V], hashFn HashFunc[K], key K, fn func(V) V, ifAbsent func() (V, bool)) Root[K, V] {
	wrapped := func(old V, found bool) (V, bool) {
		if found {
			return fn(old), true
		}
		if ifAbsent != nil {
			return ifAbsent()
		}
		var zero V
		return zero, false
	}
	newRoot, _ := Upsert(root, hashFn, hashFn(key), key, 0, wrapped, nil, nil)
	return newRoot
}

// PutIfAbsent inserts (key, f()) only if key is not already present,
// returning the resulting root and the value now stored for key.
func PutIfAbsent[K comparable, V any](root Root[K, V], hashFn HashFunc[K], key K, f func() V) (Root[K, V], V) {
	wrapped := func(old V, found bool) (V, bool) {
		if found {
			return old, false
		}
		return f(), true
	}
	newRoot, _ := Upsert(root, hashFn, hashFn(key), key, 0, wrapped, nil, nil)
	v, _ := Lookup(newRoot, hashFn, key)
	return newRoot, v
}

// Remove deletes key, returning the resulting root (or the original root
// if the key was absent — a soft no-op, not an error).
func Remove[K comparable, V any](root Root[K, V], hashFn HashFunc[K], key K) Root[K, V] {
	newRoot, _ := removeRec(root, hashFn, hashFn(key), key, 0, true, nil)
	return newRoot
}

// First returns an arbitrary entry (trie iteration order), or
// EmptyCollection if root is empty. CHAMP has no defined "first" key by
// construction; this exists only to satisfy façade operations (reduce,
// single) that need one arbitrary starting point or error on empty.
func First[K comparable, V any](root Root[K, V]) (K, V, error) {
	var zk K
	var zv V
	if root.count == 0 {
		return zk, zv, perrors.New(perrors.EmptyCollection, "first of empty map")
	}
	k, v, _ := NewIterator(root).Next()
	return k, v, nil
}
