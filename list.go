// Package pcol provides persistent (immutable, structurally-shared) List
// and Map collections backed by an RRB-tree and a CHAMP trie
// respectively. Every mutating operation returns a new value; the
// receiver is left observably unchanged (spec §8.1 "Immutability").
//
// Concurrency: a frozen List or Map is safe for concurrent use by
// multiple goroutines without external synchronisation — all reachable
// state is deep-immutable. No method blocks or performs I/O.
package pcol

import (
	"iter"

	set3 "github.com/TomTonic/Set3"

	"github.com/arborlib/pcol/internal/perrors"
	"github.com/arborlib/pcol/internal/rrb"
)

// List is a persistent, indexed sequence of T (spec §6.1).
type List[T any] struct {
	root rrb.Root[T]
}

// Empty returns the empty List for T.
func Empty[T any]() List[T] {
	return List[T]{root: emptyListRoot[T]()}
}

// FromSlice builds a List containing every element of elems, in order.
func FromSlice[T any](elems []T) List[T] {
	if len(elems) == 0 {
		return Empty[T]()
	}
	cp := make([]T, len(elems))
	copy(cp, elems)
	return List[T]{root: rrb.FromSlice(cp)}
}

// Of is a variadic convenience wrapper around FromSlice.
func Of[T any](elems ...T) List[T] {
	return FromSlice(elems)
}

// Len returns the number of elements.
func (l List[T]) Len() int { return rrb.Len(l.root) }

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool { return l.Len() == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l List[T]) IsNotEmpty() bool { return l.Len() > 0 }

// First returns the first element, or an EmptyCollection error.
func (l List[T]) First() (T, error) { return rrb.First(l.root) }

// Last returns the last element, or an EmptyCollection error.
func (l List[T]) Last() (T, error) { return rrb.Last(l.root) }

// At returns the element at index i, or an IndexOutOfRange error.
func (l List[T]) At(i int) (T, error) { return rrb.Get(l.root, i) }

// Add appends v, returning a new List.
func (l List[T]) Add(v T) List[T] {
	return List[T]{root: rrb.Append(l.root, v, nil)}
}

// AddAll appends every element of other, in order.
func (l List[T]) AddAll(other List[T]) List[T] {
	return List[T]{root: rrb.Concat(l.root, other.root, nil)}
}

// AddAllSlice appends every element of elems, in order.
func (l List[T]) AddAllSlice(elems []T) List[T] {
	if len(elems) == 0 {
		return l
	}
	cp := make([]T, len(elems))
	copy(cp, elems)
	return List[T]{root: rrb.Concat(l.root, rrb.FromSlice(cp), nil)}
}

// InsertAt inserts v at index i (0 <= i <= Len()).
func (l List[T]) InsertAt(i int, v T) (List[T], error) {
	newRoot, err := rrb.InsertAtChecked(l.root, i, v)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{root: newRoot}, nil
}

// InsertAllAt inserts every element of other starting at index i.
func (l List[T]) InsertAllAt(i int, other List[T]) (List[T], error) {
	if i < 0 || i > l.Len() {
		return List[T]{}, perrors.New(perrors.IndexOutOfRange, "insert index %d, length %d", i, l.Len())
	}
	left, err := rrb.SliceChecked(l.root, 0, i)
	if err != nil {
		return List[T]{}, err
	}
	right, err := rrb.SliceChecked(l.root, i, l.Len())
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{root: rrb.Concat(rrb.Concat(left, other.root, nil), right, nil)}, nil
}

// RemoveAt removes the element at index i.
func (l List[T]) RemoveAt(i int) (List[T], error) {
	newRoot, err := rrb.RemoveAtChecked(l.root, i)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{root: newRoot}, nil
}

// Remove removes the first occurrence of v (by eq), if any.
func (l List[T]) Remove(v T, eq func(a, b T) bool) List[T] {
	idx := l.IndexOf(v, 0, eq)
	if idx < 0 {
		return l
	}
	out, _ := l.RemoveAt(idx)
	return out
}

// RemoveWhere removes every element for which pred returns true.
func (l List[T]) RemoveWhere(pred func(T) bool) List[T] {
	return List[T]{root: rrb.RemoveWhere(l.root, pred, nil)}
}

// Update replaces the element at index i with v. identical, if non-nil,
// short-circuits to the receiver when v is already stored at i.
func (l List[T]) Update(i int, v T, identical func(a, b T) bool) (List[T], error) {
	newRoot, err := rrb.Update(l.root, i, v, identical)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{root: newRoot}, nil
}

// Sublist returns the half-open range [start, end).
func (l List[T]) Sublist(start, end int) (List[T], error) {
	newRoot, err := rrb.SliceChecked(l.root, start, end)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{root: newRoot}, nil
}

// Concat returns the concatenation of l and other.
func (l List[T]) Concat(other List[T]) List[T] {
	return List[T]{root: rrb.Concat(l.root, other.root, nil)}
}

// IndexOf returns the index of the first occurrence of v at or after
// start, or -1.
func (l List[T]) IndexOf(v T, start int, eq func(a, b T) bool) int {
	return l.IndexWhere(start, func(x T) bool { return eq(x, v) })
}

// LastIndexOf returns the index of the last occurrence of v before end
// (exclusive upper bound; pass Len() to search the whole list), or -1.
func (l List[T]) LastIndexOf(v T, end int, eq func(a, b T) bool) int {
	return l.LastIndexWhere(end, func(x T) bool { return eq(x, v) })
}

// IndexWhere returns the index of the first element at or after start
// satisfying pred, or -1. Supplements spec §6.1's search operations with
// the predicate form the spec's indexOf is built from.
func (l List[T]) IndexWhere(start int, pred func(T) bool) int {
	if start < 0 {
		start = 0
	}
	it := rrb.NewIterator(l.root)
	i := 0
	for {
		v, ok := it.Next()
		if !ok {
			return -1
		}
		if i >= start && pred(v) {
			return i
		}
		i++
	}
}

// LastIndexWhere returns the index of the last element before end
// satisfying pred, or -1.
func (l List[T]) LastIndexWhere(end int, pred func(T) bool) int {
	if end > l.Len() {
		end = l.Len()
	}
	found := -1
	it := rrb.NewIterator(l.root)
	for i := 0; i < end; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if pred(v) {
			found = i
		}
	}
	return found
}

// Contains reports whether v is present.
func (l List[T]) Contains(v T, eq func(a, b T) bool) bool {
	return l.IndexOf(v, 0, eq) >= 0
}

// BinarySearch returns the index of v in a list assumed sorted by less,
// or the index at which v would be inserted to keep it sorted (spec
// supplement: the façade's re-sort support makes a companion search
// operation natural). The second result reports whether v was found.
func (l List[T]) BinarySearch(v T, less func(a, b T) bool) (int, bool) {
	lo, hi := 0, l.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		midVal, _ := rrb.Get(l.root, mid)
		if less(midVal, v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < l.Len() {
		atLo, _ := rrb.Get(l.root, lo)
		if !less(v, atLo) && !less(atLo, v) {
			return lo, true
		}
	}
	return lo, false
}

// All returns an iterator over the list's elements in order.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := rrb.NewIterator(l.root)
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice materialises the list into a fresh Go slice.
func (l List[T]) ToSlice() []T {
	out := make([]T, 0, l.Len())
	it := rrb.NewIterator(l.root)
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// AsMap returns a Map from integer index to element (spec §6.1 "asMap").
func (l List[T]) AsMap() Map[int, T] {
	it := rrb.NewIterator(l.root)
	keys := make([]int, 0, l.Len())
	values := make([]T, 0, l.Len())
	i := 0
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, i)
		values = append(values, v)
		i++
	}
	return FromEntries(keys, values)
}

// Equal reports whether l and other have the same length and
// pairwise-equal elements, in order (spec §4.3.9).
func (l List[T]) Equal(other List[T], eq func(a, b T) bool) bool {
	return rrb.Equal(l.root, other.root, eq)
}

// Hash returns an order-sensitive hash over l's elements.
func (l List[T]) Hash(hashFn func(T) uint64) uint64 {
	return rrb.Hash(l.root, hashFn)
}

// ToSet collects l's elements into a Set3 (spec §6.1 "toSet"). A
// free function rather than a method: Set3 requires T comparable, a
// stricter constraint than List's own `any`, which a method cannot
// impose on top of its receiver's type parameter.
func ToSet[T comparable](l List[T]) *set3.Set3[T] {
	s := set3.EmptyWithCapacity[T](uint32(l.Len()))
	it := rrb.NewIterator(l.root)
	for {
		v, ok := it.Next()
		if !ok {
			return s
		}
		s.Add(v)
	}
}
