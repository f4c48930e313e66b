package chainmap

import "hash/maphash"

// HashFunc produces a 64-bit hash of a key. Equal keys must produce equal
// hashes, and a key's hash must not change for the lifetime of the table.
type HashFunc[K comparable] func(K) uint64

// Makes the default hash function for any comparable key type,
// bound to the given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
