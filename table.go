package chainmap

import "hash/maphash"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket is one slot of the bucket array: the sequence of entries whose
// hashes collide on that slot (separate chaining). Entries keep insertion
// order until a removal disturbs it.
type bucket[K comparable, V any] []entry[K, V]

// find returns the position of key within the bucket, or -1.
func (b bucket[K, V]) find(key K) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}

	return -1
}

type table[K comparable, V any] struct {
	buckets []bucket[K, V]
	items   int

	// Size of the first allocation, in buckets. Set by WithCapacity and
	// consumed by the first grow. Zero means start from a single bucket.
	minBuckets int

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Sizes the table's first allocation so that `capacity` entries fit under
// the growth threshold, so filling the table up to that point triggers no
// rehash. Non-positive capacities are ignored.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		if capacity <= 0 {
			return
		}

		// Entries stay at or under 3/4 of the bucket count, so holding
		// `capacity` of them needs at least ceil(4c/3) buckets.
		t.minBuckets = int(NextPowerOf2(uint32((4*capacity + 2) / 3)))
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

// bucketIndex resolves the bucket slot of a key against the current bucket
// array length. Callers must ensure the array is non-empty: set grows
// first, get and delete return early on an empty table.
func (t *table[K, V]) bucketIndex(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.buckets)))
}

func (t *table[K, V]) get(key K) (V, bool) {
	if len(t.buckets) == 0 {
		return t.emptyV, false
	}

	b := t.buckets[t.bucketIndex(key)]
	if i := b.find(key); i >= 0 {
		return b[i].value, true
	}

	return t.emptyV, false
}

func (t *table[K, V]) set(key K, value V) (V, bool) {
	// Nothing allocated yet, or past 3/4 load: grow before addressing.
	if len(t.buckets) == 0 || t.items > 3*len(t.buckets)/4 {
		t.grow()
	}

	idx := t.bucketIndex(key)
	b := t.buckets[idx]

	if i := b.find(key); i >= 0 {
		prev := b[i].value
		b[i].value = value

		return prev, true
	}

	t.buckets[idx] = append(b, entry[K, V]{key: key, value: value})
	t.items++

	return t.emptyV, false
}

func (t *table[K, V]) delete(key K) (V, bool) {
	if len(t.buckets) == 0 {
		return t.emptyV, false
	}

	idx := t.bucketIndex(key)
	b := t.buckets[idx]

	i := b.find(key)
	if i < 0 {
		return t.emptyV, false
	}

	// Unordered removal: the bucket's last entry fills the hole, making a
	// delete O(1) at the cost of bucket-internal order. The vacated tail
	// slot is zeroed so it holds no stale key or value.
	removed := b[i].value
	last := len(b) - 1
	b[i] = b[last]
	b[last] = entry[K, V]{}
	t.buckets[idx] = b[:last]
	t.items--

	return removed, true
}

// grow doubles the bucket array, or makes the first allocation, and
// rehashes every entry against the new length. The table switches to the
// new array only after every entry has moved, so callers never observe a
// partial state. Growth is the only capacity change: the array never
// shrinks, no matter how many entries are deleted.
func (t *table[K, V]) grow() {
	target := 1
	switch {
	case len(t.buckets) > 0:
		target = 2 * len(t.buckets)
	case t.minBuckets > 0:
		target = t.minBuckets
	}

	next := make([]bucket[K, V], target)
	for _, b := range t.buckets {
		for _, e := range b {
			idx := int(t.hashFunc(e.key) % uint64(target))
			next[idx] = append(next[idx], e)
		}
	}

	t.buckets = next
}

func (t *table[K, V]) reset() {
	for i, b := range t.buckets {
		clear(b)
		t.buckets[i] = b[:0]
	}

	t.items = 0
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:    t.items,
		Buckets: len(t.buckets),
	}

	for _, b := range t.buckets {
		if len(b) == 0 {
			s.EmptyBuckets++
			continue
		}

		if len(b) > s.MaxBucketLen {
			s.MaxBucketLen = len(b)
		}
	}

	if s.Buckets > 0 {
		s.LoadFactor = float32(s.Size) / float32(s.Buckets)
	}

	return s
}
