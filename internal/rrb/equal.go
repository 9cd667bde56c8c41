package rrb

// FNV-1a offset/prime, used as the stable per-element combiner for Hash
// (spec §4.3.9: any stable combiner is acceptable so long as equal
// implies same hash).
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Equal reports whether a and b have the same length and pairwise-equal
// elements in order (spec §4.3.9).
func Equal[T any](a, b *node[T], eq func(x, y T) bool) bool {
	if a.count != b.count {
		return false
	}
	ia, ib := NewIterator(a), NewIterator(b)
	for {
		va, oka := ia.Next()
		vb, okb := ib.Next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if !eq(va, vb) {
			return false
		}
	}
}

// Hash computes an order-sensitive hash over root's elements, folding
// each element's hash (via hashFn) with FNV-1a.
func Hash[T any](root *node[T], hashFn func(T) uint64) uint64 {
	h := uint64(fnvOffset)
	it := NewIterator(root)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		h = (h ^ hashFn(v)) * fnvPrime
	}
	return h
}
