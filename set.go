package chainmap

import "iter"

// HashSet is a keys-only container on top of Map: it stores each key at
// most once and nothing else. It shares the map's lifecycle - no storage
// until the first Add, growth only - and its single-threaded ownership
// model.
type HashSet[K comparable] struct {
	m Map[K, struct{}]
}

// Returns a new instance of the set.
func NewSet[K comparable](opts ...Option[K, struct{}]) *HashSet[K] {
	var s HashSet[K]
	s.m.init(opts...)

	return &s
}

// Puts a key in the set. Returns whether the key is new.
func (s *HashSet[K]) Add(key K) bool {
	_, existed := s.m.set(key, struct{}{})

	return !existed
}

// Checks whether a key is in the set.
func (s *HashSet[K]) Has(key K) bool {
	return s.m.Has(key)
}

// Deletes a key from the set. Returns whether it was present.
func (s *HashSet[K]) Delete(key K) bool {
	_, ok := s.m.delete(key)

	return ok
}

// Returns the number of stored keys.
func (s *HashSet[K]) Len() int {
	return s.m.Len()
}

// Reports whether the set holds no keys.
func (s *HashSet[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Drops every key while keeping the bucket array at its current length.
func (s *HashSet[K]) Reset() {
	s.m.reset()
}

// All returns an iterator over the keys, bucket-major.
func (s *HashSet[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Returns a point-in-time snapshot of the set's shape.
func (s *HashSet[K]) Stats() Stats {
	return s.m.stats()
}
