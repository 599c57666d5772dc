package partialmap_test

import (
	"cmp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-env/compare"
	"github.com/amp-labs/amp-env/hashing"
	"github.com/amp-labs/amp-env/partialmap"
)

type constructor func() partialmap.Map[int, string]

func representations() map[string]constructor {
	return map[string]constructor{
		"overlay": func() partialmap.Map[int, string] {
			return partialmap.New[int, string](compare.Natural[int]())
		},
		"natural": partialmap.NewNatural[int, string],
		"hashed": func() partialmap.Map[int, string] {
			return partialmap.NewHashed[int, string](compare.Natural[int](), hashing.Int)
		},
		"ordered": func() partialmap.Map[int, string] {
			return partialmap.NewOrdered[int, string](cmp.Compare[int])
		},
	}
}

func stringEq(a, b string) bool { return a == b }

func TestLookupOnEmptyIsNone(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := build()

			for _, key := range []int{-1, 0, 7, 1 << 20} {
				assert.True(t, m.Lookup(key).Empty())
				assert.False(t, m.Contains(key))
			}

			assert.Equal(t, 0, m.Size())
		})
	}
}

func TestBindThenLookup(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := build().Bind(1, "one")

			value, ok := m.Lookup(1).Get()
			require.True(t, ok)
			assert.Equal(t, "one", value)
			assert.True(t, m.Contains(1))
		})
	}
}

func TestBindLocality(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := build().Bind(1, "one")
			updated := m.Bind(2, "two")

			value, ok := updated.Lookup(1).Get()
			require.True(t, ok)
			assert.Equal(t, "one", value)
			assert.True(t, updated.Lookup(3).Empty())
		})
	}
}

func TestBindDoesNotMutateParent(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			parent := build().Bind(1, "one")
			child := parent.Bind(1, "uno").Bind(2, "two")

			assert.Equal(t, "uno", child.Lookup(1).GetOrPanic())
			assert.Equal(t, "one", parent.Lookup(1).GetOrPanic())
			assert.False(t, parent.Contains(2))
		})
	}
}

func TestBindShadowing(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			twice := build().Bind(1, "first").Bind(1, "second")
			once := build().Bind(1, "second")

			assert.Equal(t, "second", twice.Lookup(1).GetOrPanic())
			assert.True(t, partialmap.Equal(twice, once, stringEq))
		})
	}
}

func TestBindPermutation(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ab := build().Bind(1, "one").Bind(2, "two")
			ba := build().Bind(2, "two").Bind(1, "one")

			assert.True(t, partialmap.Equal(ab, ba, stringEq))
		})
	}
}

// Rebinding a key to the value it already holds changes nothing observable.
func TestBindSameValueIsNoOp(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := build().Bind(1, "one")

			value, ok := m.Lookup(1).Get()
			require.True(t, ok)

			assert.True(t, partialmap.Equal(m.Bind(1, value), m, stringEq))
		})
	}
}

func TestUnbind(t *testing.T) {
	t.Parallel()

	for name, build := range representations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := build().Bind(1, "one").Bind(2, "two")
			unbound := m.Unbind(1)

			assert.True(t, unbound.Lookup(1).Empty())
			assert.Equal(t, "two", unbound.Lookup(2).GetOrPanic())

			// The parent keeps its binding.
			assert.True(t, m.Contains(1))

			// Extensionally, unbinding the only difference restores equality.
			assert.True(t, partialmap.Equal(unbound, build().Bind(2, "two"), stringEq))
		})
	}
}

func TestUnbindNeverBoundKey(t *testing.T) {
	t.Parallel()

	empty := partialmap.NewNatural[int, string]()

	assert.True(t, partialmap.Equal(empty.Unbind(9), empty, stringEq))
}

func TestBindings(t *testing.T) {
	t.Parallel()

	m := partialmap.NewNatural[int, string]().
		Bind(1, "first").
		Bind(2, "two").
		Bind(1, "one").
		Bind(3, "three").
		Unbind(3)

	seen := map[int]string{}
	for key, value := range m.Bindings() {
		_, dup := seen[key]
		require.False(t, dup, "key %d yielded twice", key)
		seen[key] = value
	}

	assert.Equal(t, map[int]string{1: "one", 2: "two"}, seen)
	assert.Equal(t, 2, m.Size())
}

// UUIDs as an opaque key domain with natural equality.
func TestUUIDKeys(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	bob := uuid.New()

	env := partialmap.NewNatural[uuid.UUID, int]().
		Bind(alice, 1).
		Bind(bob, 2)

	assert.Equal(t, 1, env.Lookup(alice).GetOrPanic())
	assert.Equal(t, 2, env.Lookup(bob).GetOrPanic())
	assert.True(t, env.Lookup(uuid.New()).Empty())
}

// Variable environments with case-insensitive names, over the hashed
// representation: the hasher must agree with the equality predicate, so
// both fold case.
func TestCaseInsensitiveNames(t *testing.T) {
	t.Parallel()

	foldEq := func(a, b string) bool { return strings.EqualFold(a, b) }
	foldHash := hashing.ByString(strings.ToLower)

	env := partialmap.NewHashed[string, int](foldEq, foldHash).
		Bind("Count", 1).
		Bind("COUNT", 2)

	assert.Equal(t, 2, env.Lookup("count").GetOrPanic())
	assert.Equal(t, 1, env.Size())
}
