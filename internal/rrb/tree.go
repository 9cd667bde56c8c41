// Package rrb's exported surface is consumed only by the pcol façade; it
// adds bounds checking and the shared error taxonomy on top of the raw
// node operations in the rest of this package.
package rrb

import "github.com/arborlib/pcol/internal/perrors"

// Root is an opaque handle to a frozen RRB-tree root, shared by value
// between every List built from it.
type Root[T any] = *node[T]

// Empty returns a fresh empty root. Sharing a single canonical empty
// instance per element type is a façade-level concern (spec §9); this
// function is cheap enough that the façade may call it freely or cache
// its result.
func Empty[T any]() Root[T] {
	return newLeaf[T](nil)
}

// Len returns the number of elements in root.
func Len[T any](root Root[T]) int {
	return root.count
}

func checkIndex[T any](root Root[T], i int) error {
	if i < 0 || i >= root.count {
		return perrors.New(perrors.IndexOutOfRange, "index %d, length %d", i, root.count)
	}
	return nil
}

// Get returns the element at index i.
func Get[T any](root Root[T], i int) (T, error) {
	var zero T
	if err := checkIndex(root, i); err != nil {
		return zero, err
	}
	return get(root, i), nil
}

// First returns the first element, or EmptyCollection if root is empty.
func First[T any](root Root[T]) (T, error) {
	var zero T
	if root.count == 0 {
		return zero, perrors.New(perrors.EmptyCollection, "first of empty list")
	}
	return get(root, 0), nil
}

// Last returns the last element, or EmptyCollection if root is empty.
func Last[T any](root Root[T]) (T, error) {
	var zero T
	if root.count == 0 {
		return zero, perrors.New(perrors.EmptyCollection, "last of empty list")
	}
	return get(root, root.count-1), nil
}

// Update returns a root with index i replaced by v. identical, if
// non-nil, short-circuits to root when v is already stored at i (spec
// §4.2).
func Update[T any](root Root[T], i int, v T, identical func(a, b T) bool) (Root[T], error) {
	if err := checkIndex(root, i); err != nil {
		return nil, err
	}
	return update(root, i, v, nil, identical), nil
}

// InsertAtChecked validates bounds (0 <= i <= count) before delegating to
// InsertAt.
func InsertAtChecked[T any](root Root[T], i int, v T) (Root[T], error) {
	if i < 0 || i > root.count {
		return nil, perrors.New(perrors.IndexOutOfRange, "insert index %d, length %d", i, root.count)
	}
	return InsertAt(root, i, v, nil), nil
}

// RemoveAtChecked validates bounds before delegating to RemoveAt.
func RemoveAtChecked[T any](root Root[T], i int) (Root[T], error) {
	if err := checkIndex(root, i); err != nil {
		return nil, err
	}
	newRoot, _ := RemoveAt(root, i, nil)
	return newRoot, nil
}

// SliceChecked validates 0 <= start <= end <= count before delegating to
// Slice.
func SliceChecked[T any](root Root[T], start, end int) (Root[T], error) {
	if start < 0 || end > root.count || start > end {
		return nil, perrors.New(perrors.IndexOutOfRange, "sublist [%d,%d), length %d", start, end, root.count)
	}
	return Slice(root, start, end), nil
}
