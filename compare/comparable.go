// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is an equality predicate over T. It is the pluggable key-equality
// hook used by the binding-map packages: callers supply one predicate per
// map, and every lookup and override decision goes through it.
//
// A Func must be an equivalence relation (reflexive, symmetric, transitive).
// The map packages do not check this; a predicate that violates it silently
// breaks their shadowing and locality guarantees.
type Func[T any] func(a, b T) bool

// Natural returns an equality Func backed by Go's == operator.
// This is the right choice for any comparable key type whose natural
// equality is the intended one (ints, strings, UUIDs, small structs).
func Natural[T comparable]() Func[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// ByEquals returns an equality Func that delegates to the type's own
// Equals method. Use this to plug a Comparable type into an API that
// expects a Func.
func ByEquals[T Comparable[T]]() Func[T] {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}
