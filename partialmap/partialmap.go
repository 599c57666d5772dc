// Package partialmap provides an immutable partial map: a key/value map in
// which absence is explicit. It is a thin specialization of totalmap with
// optional values and a default of None, so a lookup that finds nothing
// returns None rather than failing.
//
// Maps are values. Bind and Unbind never mutate; each returns a new map and
// leaves the receiver valid and queryable. All of totalmap's laws carry over
// restated in terms of Lookup and Bind: binding on one key never affects
// another, a later Bind at the same key fully shadows an earlier one, binds
// at distinct keys commute, and rebinding a key to the value it already
// holds changes nothing observable.
package partialmap

import (
	"iter"

	"github.com/amp-labs/amp-env/compare"
	"github.com/amp-labs/amp-env/hashing"
	"github.com/amp-labs/amp-env/optional"
	"github.com/amp-labs/amp-env/totalmap"
)

// Map is an immutable partial map from K to V.
// The zero Map is not ready to use; build one with New, NewNatural,
// NewHashed or NewOrdered.
type Map[K any, V any] struct {
	total totalmap.Map[K, optional.Value[V]]
}

// New creates an empty partial map over the overlay representation.
// Lookup answers None for every key.
func New[K any, V any](eq compare.Func[K]) Map[K, V] {
	return Map[K, V]{total: totalmap.New(optional.None[V](), eq)}
}

// NewNatural creates an empty partial map keyed by Go's == operator.
func NewNatural[K comparable, V any]() Map[K, V] {
	return New[K, V](compare.Natural[K]())
}

// NewHashed creates an empty partial map over the hash-indexed
// representation. See totalmap.NewHashed for the hasher contract.
func NewHashed[K any, V any](eq compare.Func[K], hash hashing.Hasher[K]) Map[K, V] {
	return Map[K, V]{total: totalmap.NewHashed(optional.None[V](), eq, hash)}
}

// NewOrdered creates an empty partial map over the tree-backed
// representation. See totalmap.NewOrdered for the comparator contract.
func NewOrdered[K any, V any](cmp func(a, b K) int) Map[K, V] {
	return Map[K, V]{total: totalmap.NewOrdered(optional.None[V](), cmp)}
}

// Lookup returns Some of the value most recently bound to key, or None if
// the key is unbound. It never fails.
func (m Map[K, V]) Lookup(key K) optional.Value[V] {
	return m.total.Query(key)
}

// Bind returns a new map in which key is bound to value. The receiver is
// unchanged and remains independently queryable.
func (m Map[K, V]) Bind(key K, value V) Map[K, V] {
	return Map[K, V]{total: m.total.Update(key, optional.Some(value))}
}

// Unbind returns a new map in which key is unbound: a subsequent Lookup
// answers None. Unbinding a key that was never bound is a no-op in the
// extensional sense. The receiver is unchanged.
func (m Map[K, V]) Unbind(key K) Map[K, V] {
	return Map[K, V]{total: m.total.Update(key, optional.None[V]())}
}

// Contains reports whether key is currently bound.
func (m Map[K, V]) Contains(key K) bool {
	return m.total.Query(key).NonEmpty()
}

// Bindings returns an iterator over the map's current bindings. Keys
// rebound to absence by Unbind are not yielded. Each key appears at most
// once; order is unspecified.
func (m Map[K, V]) Bindings() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, value := range m.total.Overrides() {
			bound, ok := value.Get()
			if !ok {
				continue
			}

			if !yield(key, bound) {
				return
			}
		}
	}
}

// Size returns the number of currently bound keys.
func (m Map[K, V]) Size() int {
	count := 0

	for range m.Bindings() {
		count++
	}

	return count
}

// Equal reports whether a and b are extensionally equal: every key is
// either unbound in both or bound in both to values equal under valueEq.
// Both maps must have been built with equivalent key-equality predicates.
func Equal[K any, V any](a, b Map[K, V], valueEq compare.Func[V]) bool {
	return totalmap.Equal(a.total, b.total, func(x, y optional.Value[V]) bool {
		return x.Equals(y, valueEq)
	})
}
