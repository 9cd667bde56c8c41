package champ

import "github.com/dolthub/maphash"

// Hasher folds a 64-bit general-purpose hash (github.com/dolthub/maphash,
// the same generic hashing dependency the teacher's Set3 dependency pulls
// in transitively) down to the 32-bit hash space CHAMP indexes by.
type Hasher[K comparable] struct {
	h maphash.Hasher[K]
}

// NewHasher returns a Hasher with a freshly drawn random seed. The seed is
// stable for the lifetime of the Hasher; two Hashers from separate calls
// hash the same key differently. Matches spec §9's "use the language's
// native hash for keys" (no pluggable hash functions).
func NewHasher[K comparable]() Hasher[K] {
	return Hasher[K]{h: maphash.NewHasher[K]()}
}

// Hash returns the 32-bit hash fragment-source for key.
func (h Hasher[K]) Hash(key K) uint32 {
	full := h.h.Hash(key)
	return uint32(full) ^ uint32(full>>32)
}
