// Package hashing provides key hashers for the hash-indexed map representations.
package hashing

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Hasher maps a key to a 64-bit hash. It is infallible so that map
// lookups built on top of it stay total.
//
// Keys that are equal under the map's equality predicate must produce
// the same hash. Distinct keys may collide; the maps resolve collisions
// with the equality predicate, so a colliding hasher costs performance
// but never correctness.
type Hasher[K any] func(key K) uint64

// String hashes a string key with xxh3.
func String(key string) uint64 {
	return xxh3.HashString(key)
}

// Bytes hashes a byte-slice key with xxh3.
func Bytes(key []byte) uint64 {
	return xxh3.Hash(key)
}

// Int hashes an integer key with xxh3 over its little-endian encoding.
func Int(key int) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(key))

	return xxh3.Hash(buf[:])
}

// ByString adapts any key type to a Hasher via a string encoding.
// The encoding must be injective up to the map's key equality: keys
// that are equal must encode identically.
func ByString[K any](encode func(K) string) Hasher[K] {
	return func(key K) uint64 {
		return xxh3.HashString(encode(key))
	}
}
