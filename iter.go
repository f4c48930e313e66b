package chainmap

import "iter"

// Iter is a forward-only traversal handle over a map's entries. It walks
// bucket 0 first, then bucket 1 and so on, in current storage order
// within each bucket (an earlier Delete may have disturbed insertion
// order there). Each entry comes out exactly once; after the last one,
// Next keeps returning false. A handle cannot be restarted - take a
// fresh one from Iter for another pass.
//
// The handle borrows the map read-only. Mutating the map while a
// traversal is open is unspecified; single-threaded, non-reentrant use
// is assumed throughout.
type Iter[K comparable, V any] struct {
	t      *table[K, V]
	bucket int
	at     int
}

// Returns a fresh traversal handle bound to the map.
func (m *Map[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{t: &m.table}
}

// Next returns the next entry, or the zero pair and false once the
// traversal is exhausted.
func (it *Iter[K, V]) Next() (K, V, bool) {
	for it.bucket < len(it.t.buckets) {
		b := it.t.buckets[it.bucket]
		if it.at < len(b) {
			e := b[it.at]
			it.at++

			return e.key, e.value, true
		}

		it.bucket++
		it.at = 0
	}

	var key K

	return key, it.t.emptyV, false
}

// All returns an iterator over every (key, value) entry, bucket-major.
// Beyond "each entry exactly once" the order carries no guarantees.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range m.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the keys, in the same walk order as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, b := range m.buckets {
			for _, e := range b {
				if !yield(e.key) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over the values, in the same walk order as
// All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, b := range m.buckets {
			for _, e := range b {
				if !yield(e.value) {
					return
				}
			}
		}
	}
}
