// Package chainmap implements a hash table with separate chaining: a
// bucket array in which each bucket holds the entries whose hashes land
// on its slot. The array starts empty, allocates on first insert and
// doubles whenever the entry count passes 3/4 of the bucket count,
// rehashing every entry against the new length.
package chainmap

// Map is a hash table mapping unique keys to values. A new map owns no
// bucket storage at all; the first Set allocates it. Buckets only ever
// grow - deleting entries never shrinks the array back.
//
// A Map must be created with New. It is not safe for concurrent use:
// a single goroutine at a time is assumed to own the map, and there is
// no internal locking.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new instance of the map.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// Returns the number of stored entries. O(1), the count is cached.
func (m *Map[K, V]) Len() int {
	return m.items
}

// Reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.items == 0
}

// Looks a key up and returns its value.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Checks whether a key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.get(key)

	return ok
}

// Stores a value under a key. Returns the previous value and true when
// the key was already present and its value got replaced in place, the
// zero value and false when the key is new. Never fails: the table grows
// as needed.
func (m *Map[K, V]) Set(key K, value V) (V, bool) {
	return m.set(key, value)
}

// Deletes a key from the map. Returns the removed value and true, or the
// zero value and false when the key was absent.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	return m.delete(key)
}

// Drops every entry while keeping the bucket array at its current length.
func (m *Map[K, V]) Reset() {
	m.reset()
}

// Returns a point-in-time snapshot of the table's shape.
func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}
