package totalmap

import (
	"iter"

	"github.com/amp-labs/amp-env/compare"
)

// New creates an empty total map with the given default value and key
// equality. Every query on the returned map answers defaultValue.
//
// The returned map uses the overlay representation: each Update prepends an
// immutable node to a shared chain, so Update is O(1) and Query is linear in
// the number of updates. This is the right trade-off for the short-lived,
// small environments this package is built for; use NewHashed or NewOrdered
// when maps grow large or long-lived.
//
//nolint:ireturn
func New[K any, V any](defaultValue V, eq compare.Func[K]) Map[K, V] {
	return overlayMap[K, V]{eq: eq, def: defaultValue}
}

// NewNatural creates an empty overlay map keyed by Go's == operator.
//
//nolint:ireturn
func NewNatural[K comparable, V any](defaultValue V) Map[K, V] {
	return New[K, V](defaultValue, compare.Natural[K]())
}

// overlayNode is a single override in the chain. Nodes are never modified
// after creation; any number of map versions may share a tail.
type overlayNode[K any, V any] struct {
	key   K
	value V
	next  *overlayNode[K, V]
}

type overlayMap[K any, V any] struct {
	eq   compare.Func[K]
	def  V
	head *overlayNode[K, V]
}

var _ Map[string, int] = overlayMap[string, int]{}

// Query walks the chain newest-first, so the most recent override for a key
// always wins.
func (m overlayMap[K, V]) Query(key K) V {
	for n := m.head; n != nil; n = n.next {
		if m.eq(n.key, key) {
			return n.value
		}
	}

	return m.def
}

//nolint:ireturn
func (m overlayMap[K, V]) Update(key K, value V) Map[K, V] {
	return overlayMap[K, V]{
		eq:  m.eq,
		def: m.def,
		head: &overlayNode[K, V]{
			key:   key,
			value: value,
			next:  m.head,
		},
	}
}

func (m overlayMap[K, V]) Default() V {
	return m.def
}

func (m overlayMap[K, V]) Equality() compare.Func[K] {
	return m.eq
}

// Overrides yields each overridden key once, newest binding first, skipping
// nodes shadowed by a more recent override of the same key.
func (m overlayMap[K, V]) Overrides() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.head; n != nil; n = n.next {
			if m.shadowed(n) {
				continue
			}

			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// shadowed reports whether a newer node in the chain overrides the same key
// as target.
func (m overlayMap[K, V]) shadowed(target *overlayNode[K, V]) bool {
	for n := m.head; n != target; n = n.next {
		if m.eq(n.key, target.key) {
			return true
		}
	}

	return false
}

func (m overlayMap[K, V]) Size() int {
	count := 0

	for range m.Overrides() {
		count++
	}

	return count
}
