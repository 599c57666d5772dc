// Package totalmap provides an immutable total map: a function-like structure
// from keys to values that answers every query, falling back to a default
// value for keys that were never overridden.
//
// Maps are values. Update never mutates; it returns a new map that shares
// structure with its parent, and the parent stays valid and queryable. Shared
// internal nodes are immutable after creation, so concurrent reads of any
// number of map versions need no synchronization.
//
// Every representation in this package satisfies the same algebra, observable
// through Query:
//
//   - Query(New(d, eq), k) == d for every k.
//   - Query(m.Update(k, v), k) == v.
//   - Query(m.Update(k, v), k2) == Query(m, k2) whenever !eq(k2, k).
//   - m.Update(k, v1).Update(k, v2) is extensionally equal to m.Update(k, v2).
//   - m.Update(k1, v1).Update(k2, v2) is extensionally equal to
//     m.Update(k2, v2).Update(k1, v1) whenever !eq(k1, k2).
//   - m.Update(k, m.Query(k)) is extensionally equal to m.
//
// Two maps are extensionally equal when they answer every query identically;
// their internal override structure may differ. Use Equal to decide it.
//
// The equality predicate handed to a constructor must be an equivalence
// relation. A predicate that is not (for example, one that is not reflexive)
// silently breaks the shadowing and locality laws; this is a caller
// precondition, not a checked error.
package totalmap

import (
	"iter"

	"github.com/amp-labs/amp-env/compare"
)

// Map is an immutable total map from K to V.
//
// Thread-safety: a Map value is safe for concurrent readers. Update returns
// a new Map and never modifies the receiver.
type Map[K any, V any] interface {
	// Query returns the value bound to key by the most recent Update that
	// targeted it, or the map's default if none did. It is total and
	// never fails.
	Query(key K) V

	// Update returns a new map in which key is bound to value. The
	// receiver is unchanged and remains independently queryable. Binding
	// a key to a value it already holds is allowed and produces a map
	// extensionally equal to the receiver.
	Update(key K, value V) Map[K, V]

	// Default returns the value Query falls back to for keys that were
	// never overridden.
	Default() V

	// Equality returns the key-equality predicate the map was built with.
	Equality() compare.Func[K]

	// Overrides returns an iterator over the map's effective overrides:
	// each overridden key paired with the value Query would return for
	// it. Shadowed overrides are not yielded, and each key appears at
	// most once. Iteration order is unspecified.
	Overrides() iter.Seq2[K, V]

	// Size returns the number of distinct overridden keys.
	Size() int
}

// Equal reports whether a and b are extensionally equal: they return values
// equal under valueEq for every possible key. This is decidable because any
// key overridden in neither map queries to the respective defaults, so it
// suffices to compare the defaults and the queries at every key overridden
// in either map.
//
// Both maps must have been built with equivalent key-equality predicates;
// comparing maps that disagree on key identity is meaningless.
func Equal[K any, V any](a, b Map[K, V], valueEq compare.Func[V]) bool {
	if !valueEq(a.Default(), b.Default()) {
		return false
	}

	for key, value := range a.Overrides() {
		if !valueEq(value, b.Query(key)) {
			return false
		}
	}

	for key, value := range b.Overrides() {
		if !valueEq(a.Query(key), value) {
			return false
		}
	}

	return true
}

// Compact returns a map extensionally equal to m containing only m's
// effective overrides. It discards any shadowed history the representation
// may carry. The result uses the overlay representation.
func Compact[K any, V any](m Map[K, V]) Map[K, V] {
	out := New(m.Default(), m.Equality())

	for key, value := range m.Overrides() {
		out = out.Update(key, value)
	}

	return out
}
