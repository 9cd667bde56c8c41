// Package pcol's List and Map are persistent (immutable) collections.
//
// Zero value: the Go zero value of List[T] and Map[K, V] (e.g. `var l
// List[int]`) holds a nil internal root and is NOT a usable empty
// collection — calling any method on it panics. Always obtain an empty
// collection from Empty[T]() / EmptyMap[K, V](), or build one from data
// via FromSlice/Of/FromEntries/FromMap.
//
// Every mutating method returns a new value and leaves the receiver
// unchanged. A List or Map obtained from any constructor is safe for
// concurrent use by multiple goroutines without further synchronisation,
// since nothing reachable from it is ever mutated again.
package pcol
