package totalmap

import (
	"iter"
	"maps"

	"github.com/amp-labs/amp-env/compare"
	"github.com/amp-labs/amp-env/hashing"
)

// NewHashed creates an empty total map backed by a hash index, for key
// domains where a hasher is available. Query is O(1) expected; Update copies
// the index, so it is linear in the number of overridden keys.
//
// Keys equal under eq must hash equal under hash. Distinct keys may share a
// hash: collisions land in the same bucket and are resolved with eq, so they
// cost performance, never correctness.
//
//nolint:ireturn
func NewHashed[K any, V any](defaultValue V, eq compare.Func[K], hash hashing.Hasher[K]) Map[K, V] {
	return hashedMap[K, V]{
		eq:   eq,
		hash: hash,
		def:  defaultValue,
	}
}

type hashedEntry[K any, V any] struct {
	key   K
	value V
}

type hashedMap[K any, V any] struct {
	eq      compare.Func[K]
	hash    hashing.Hasher[K]
	def     V
	buckets map[uint64][]hashedEntry[K, V]
}

var _ Map[string, int] = hashedMap[string, int]{}

func (m hashedMap[K, V]) Query(key K) V {
	for _, entry := range m.buckets[m.hash(key)] {
		if m.eq(entry.key, key) {
			return entry.value
		}
	}

	return m.def
}

// Update copies the bucket index and rewrites the one affected bucket.
// Buckets are never modified in place, so prior map versions keep reading
// their own snapshots.
//
//nolint:ireturn
func (m hashedMap[K, V]) Update(key K, value V) Map[K, V] {
	h := m.hash(key)
	old := m.buckets[h]

	bucket := make([]hashedEntry[K, V], 0, len(old)+1)
	replaced := false

	for _, entry := range old {
		if m.eq(entry.key, key) {
			bucket = append(bucket, hashedEntry[K, V]{key: key, value: value})
			replaced = true
		} else {
			bucket = append(bucket, entry)
		}
	}

	if !replaced {
		bucket = append(bucket, hashedEntry[K, V]{key: key, value: value})
	}

	buckets := maps.Clone(m.buckets)
	if buckets == nil {
		buckets = make(map[uint64][]hashedEntry[K, V], 1)
	}

	buckets[h] = bucket

	return hashedMap[K, V]{
		eq:      m.eq,
		hash:    m.hash,
		def:     m.def,
		buckets: buckets,
	}
}

func (m hashedMap[K, V]) Default() V {
	return m.def
}

func (m hashedMap[K, V]) Equality() compare.Func[K] {
	return m.eq
}

func (m hashedMap[K, V]) Overrides() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, entry := range bucket {
				if !yield(entry.key, entry.value) {
					return
				}
			}
		}
	}
}

func (m hashedMap[K, V]) Size() int {
	count := 0

	for _, bucket := range m.buckets {
		count += len(bucket)
	}

	return count
}
