package champ

// Equal reports whether a and b hold the same size and every key in one
// maps to an equal value in the other (spec §4.4.5). Bitmap nodes
// short-circuit on an immediate bitmap mismatch before falling back to a
// per-entry walk of a against lookups into b.
func Equal[K comparable, V any](a, b *node[K, V], hashFn HashFunc[K], eq func(x, y V) bool) bool {
	if a.count != b.count {
		return false
	}
	if a.kind == kindBitmap && b.kind == kindBitmap {
		ba, bb := a.asBitmap(), b.asBitmap()
		if ba.dataMap != bb.dataMap || ba.nodeMap != bb.nodeMap {
			return false
		}
	}
	it := NewIterator(a)
	for {
		k, v, ok := it.Next()
		if !ok {
			return true
		}
		bv, found := Get(b, hashFn(k), k, 0)
		if !found || !eq(v, bv) {
			return false
		}
	}
}

// Hash computes an order-insensitive hash over root's entries:
// Σ (hash(k) ^ hash(v)), cacheable lazily by the façade (spec §4.4.5).
func Hash[K comparable, V any](root *node[K, V], hashKey func(K) uint64, hashVal func(V) uint64) uint64 {
	var sum uint64
	it := NewIterator(root)
	for {
		k, v, ok := it.Next()
		if !ok {
			return sum
		}
		sum += hashKey(k) ^ hashVal(v)
	}
}
