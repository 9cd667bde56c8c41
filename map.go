package pcol

import (
	"iter"
	"reflect"
	"sync"

	"github.com/arborlib/pcol/internal/champ"
	"github.com/arborlib/pcol/internal/perrors"
)

// Map is a persistent, hash-keyed associative collection (spec §6.2).
// Keys must be comparable (they are both hashed and compared by ==);
// values may be any type.
type Map[K comparable, V any] struct {
	root   champ.Root[K, V]
	hasher champ.Hasher[K]
}

// hashers holds one Hasher per key type, so every Map with the same key
// type hashes keys identically and tries built separately can be compared.
var hashers sync.Map // reflect.Type -> champ.Hasher[K]

func newHasher[K comparable]() champ.Hasher[K] {
	var zero K
	key := reflect.TypeOf(&zero).Elem()
	if h, ok := hashers.Load(key); ok {
		return h.(champ.Hasher[K])
	}
	h, _ := hashers.LoadOrStore(key, champ.NewHasher[K]())
	return h.(champ.Hasher[K])
}

func (m Map[K, V]) hashFn() champ.HashFunc[K] {
	h := m.hasher
	return func(k K) uint32 { return h.Hash(k) }
}

// EmptyMap returns the empty Map for K, V.
func EmptyMap[K comparable, V any]() Map[K, V] {
	return Map[K, V]{root: emptyMapRoot[K, V](), hasher: newHasher[K]()}
}

// FromEntries builds a Map from parallel keys/values slices. Later
// entries for a duplicate key overwrite earlier ones.
func FromEntries[K comparable, V any](keys []K, values []V) Map[K, V] {
	h := newHasher[K]()
	hashFn := func(k K) uint32 { return h.Hash(k) }
	return Map[K, V]{root: champ.FromEntries(hashFn, keys, values), hasher: h}
}

// FromMap builds a Map from a Go map.
func FromMap[K comparable, V any](m map[K]V) Map[K, V] {
	keys := make([]K, 0, len(m))
	values := make([]V, 0, len(m))
	for k, v := range m {
		keys = append(keys, k)
		values = append(values, v)
	}
	return FromEntries(keys, values)
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int { return champ.Len(m.root) }

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool { return m.Len() == 0 }

// IsNotEmpty reports whether the map has at least one entry.
func (m Map[K, V]) IsNotEmpty() bool { return m.Len() > 0 }

// Get returns the value for key and whether it was present — a miss is
// the documented soft NotFound outcome (spec §7), not an error.
func (m Map[K, V]) Get(key K) (V, bool) {
	return champ.Lookup(m.root, m.hashFn(), key)
}

// ContainsKey reports whether key is present.
func (m Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsValue reports whether any entry's value equals v (by eq); an
// O(N) linear scan (spec §6.2).
func (m Map[K, V]) ContainsValue(v V, eq func(a, b V) bool) bool {
	it := champ.NewIterator(m.root)
	for {
		_, val, ok := it.Next()
		if !ok {
			return false
		}
		if eq(val, v) {
			return true
		}
	}
}

// Add inserts or overwrites key with value. identical, if non-nil,
// short-circuits to the receiver when key already maps to an equal value.
func (m Map[K, V]) Add(key K, value V, identical func(a, b V) bool) Map[K, V] {
	return Map[K, V]{root: champ.Add(m.root, m.hashFn(), key, value, identical), hasher: m.hasher}
}

// AddAll inserts every entry of other, overwriting on key collision.
func (m Map[K, V]) AddAll(other Map[K, V]) Map[K, V] {
	root := m.root
	hashFn := m.hashFn()
	it := champ.NewIterator(other.root)
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		root = champ.Add(root, hashFn, k, v, nil)
	}
	return Map[K, V]{root: root, hasher: m.hasher}
}

// Remove deletes key, returning the map unchanged if key was absent (a
// soft no-op, not an error).
func (m Map[K, V]) Remove(key K) Map[K, V] {
	return Map[K, V]{root: champ.Remove(m.root, m.hashFn(), key), hasher: m.hasher}
}

// RemoveWhere deletes every entry for which pred returns true.
func (m Map[K, V]) RemoveWhere(pred func(K, V) bool) Map[K, V] {
	o := champ.NewOwner()
	root := champ.RemoveWhere(m.root, m.hashFn(), pred, o)
	return Map[K, V]{root: champ.Freeze(root, o), hasher: m.hasher}
}

// Update applies fn to the value stored for key. If key is absent and
// ifAbsent is non-nil, the map gains an entry holding ifAbsent()'s value
// when its second result is true; otherwise the map is returned unchanged
// (spec §4.4.2).
func (m Map[K, V]) Update(key K, fn func(V) V, ifAbsent func() (V, bool)) Map[K, V] {
	return Map[K, V]{root: champ.Update(m.root, m.hashFn(), key, fn, ifAbsent), hasher: m.hasher}
}

// UpdateAll replaces every value v with fn(k, v).
func (m Map[K, V]) UpdateAll(fn func(K, V) V) Map[K, V] {
	o := champ.NewOwner()
	root := champ.UpdateAll(m.root, m.hashFn(), fn, o)
	return Map[K, V]{root: champ.Freeze(root, o), hasher: m.hasher}
}

// PutIfAbsent inserts (key, f()) only if key is not already present,
// returning the resulting map and the value now stored for key.
func (m Map[K, V]) PutIfAbsent(key K, f func() V) (Map[K, V], V) {
	root, v := champ.PutIfAbsent(m.root, m.hashFn(), key, f)
	return Map[K, V]{root: root, hasher: m.hasher}, v
}

// MapEntries rebuilds the map by applying fn to every (key, value) pair,
// which may re-key entries (spec §6.2). Last write for a collided new key
// wins, matching AddAll's overwrite policy.
func (m Map[K, V]) MapEntries(fn func(K, V) (K, V)) Map[K, V] {
	hashFn := m.hashFn()
	root := emptyMapRoot[K, V]()
	o := champ.NewOwner()
	it := champ.NewIterator(m.root)
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		nk, nv := fn(k, v)
		root, _ = champ.Upsert(root, hashFn, hashFn(nk), nk, 0, func(V, bool) (V, bool) { return nv, true }, nil, o)
	}
	return Map[K, V]{root: champ.Freeze(root, o), hasher: m.hasher}
}

// Merge combines m with other using resolve to pick a value whenever
// both maps define the same key (spec supplement §6). resolve receives
// m's value first, other's second.
func (m Map[K, V]) Merge(other Map[K, V], resolve func(a, b V) V) Map[K, V] {
	root := m.root
	hashFn := m.hashFn()
	it := champ.NewIterator(other.root)
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		root = champ.Update(root, hashFn, k, func(old V) V { return resolve(old, v) }, func() (V, bool) { return v, true })
	}
	return Map[K, V]{root: root, hasher: m.hasher}
}

// Keys returns an iterator over the map's keys (trie order, not
// insertion order — spec §5).
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := champ.NewIterator(m.root)
		for {
			k, _, ok := it.Next()
			if !ok {
				return
			}
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the map's values.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := champ.NewIterator(m.root)
		for {
			_, v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the map's (key, value) pairs.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := champ.NewIterator(m.root)
		for {
			k, v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// ToMap materialises the map into a fresh Go map.
func (m Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	it := champ.NewIterator(m.root)
	for {
		k, v, ok := it.Next()
		if !ok {
			return out
		}
		out[k] = v
	}
}

// First returns an arbitrary entry, or an EmptyCollection error (spec
// §6.2/§7; CHAMP defines no "first" key by construction).
func (m Map[K, V]) First() (K, V, error) {
	k, v, err := champ.First(m.root)
	if err != nil {
		return k, v, err
	}
	return k, v, nil
}

// Reduce folds over every entry in trie order, starting from init.
func (m Map[K, V]) Reduce(init V, combine func(acc V, k K, v V) V) (V, error) {
	if m.IsEmpty() {
		var zero V
		return zero, perrors.New(perrors.EmptyCollection, "reduce of empty map")
	}
	acc := init
	it := champ.NewIterator(m.root)
	for {
		k, v, ok := it.Next()
		if !ok {
			return acc, nil
		}
		acc = combine(acc, k, v)
	}
}

// Single returns the map's sole entry, or an error if the map is empty
// (EmptyCollection) or holds more than one entry (TooManyElements).
func (m Map[K, V]) Single() (K, V, error) {
	var zk K
	var zv V
	switch m.Len() {
	case 0:
		return zk, zv, perrors.New(perrors.EmptyCollection, "single of empty map")
	case 1:
		return m.First()
	default:
		return zk, zv, perrors.New(perrors.TooManyElements, "single of map with %d entries", m.Len())
	}
}

// SingleWhere returns the sole entry satisfying pred, or an error if none
// do (EmptyCollection) or more than one does (TooManyElements).
func (m Map[K, V]) SingleWhere(pred func(K, V) bool) (K, V, error) {
	var zk K
	var zv V
	var foundK K
	var foundV V
	count := 0
	it := champ.NewIterator(m.root)
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		if pred(k, v) {
			count++
			if count > 1 {
				return zk, zv, perrors.New(perrors.TooManyElements, "singleWhere matched more than one entry")
			}
			foundK, foundV = k, v
		}
	}
	if count == 0 {
		return zk, zv, perrors.New(perrors.EmptyCollection, "singleWhere matched no entry")
	}
	return foundK, foundV, nil
}

// Equal reports whether m and other have the same size and every key in
// one maps to an eq-equal value in the other (spec §4.4.5).
func (m Map[K, V]) Equal(other Map[K, V], eq func(a, b V) bool) bool {
	return champ.Equal(m.root, other.root, m.hashFn(), eq)
}

// Hash returns an order-insensitive hash over m's entries.
func (m Map[K, V]) Hash(hashKey func(K) uint64, hashVal func(V) uint64) uint64 {
	return champ.Hash(m.root, hashKey, hashVal)
}
