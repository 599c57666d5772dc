package totalmap

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/amp-labs/amp-env/compare"
)

// NewOrdered creates an empty total map backed by a red-black tree, for key
// domains with a total order. cmp must return a negative number, zero, or a
// positive number when a is less than, equal to, or greater than b; keys are
// considered equal exactly when cmp returns zero.
//
// Query is O(log n). Update copies the tree, so it is linear in the number
// of overridden keys; prior versions keep their own trees.
//
//nolint:ireturn
func NewOrdered[K any, V any](defaultValue V, cmp func(a, b K) int) Map[K, V] {
	comparator := func(a, b interface{}) int {
		return cmp(a.(K), b.(K)) //nolint:forcetypeassert // tree only ever holds K
	}

	return orderedMap[K, V]{
		cmp:        cmp,
		comparator: comparator,
		def:        defaultValue,
		tree:       treemap.NewWith(comparator),
	}
}

type orderedMap[K any, V any] struct {
	cmp        func(a, b K) int
	comparator func(a, b interface{}) int
	def        V
	tree       *treemap.Map
}

var _ Map[string, int] = orderedMap[string, int]{}

func (m orderedMap[K, V]) Query(key K) V {
	if value, found := m.tree.Get(key); found {
		return value.(V) //nolint:forcetypeassert // tree only ever holds V
	}

	return m.def
}

//nolint:ireturn
func (m orderedMap[K, V]) Update(key K, value V) Map[K, V] {
	tree := treemap.NewWith(m.comparator)

	m.tree.Each(func(k, v interface{}) {
		tree.Put(k, v)
	})

	tree.Put(key, value)

	return orderedMap[K, V]{
		cmp:        m.cmp,
		comparator: m.comparator,
		def:        m.def,
		tree:       tree,
	}
}

func (m orderedMap[K, V]) Default() V {
	return m.def
}

func (m orderedMap[K, V]) Equality() compare.Func[K] {
	return func(a, b K) bool {
		return m.cmp(a, b) == 0
	}
}

// Overrides yields overridden keys in ascending key order.
func (m orderedMap[K, V]) Overrides() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.tree.Iterator()

		for it.Next() {
			//nolint:forcetypeassert // tree only ever holds K and V
			if !yield(it.Key().(K), it.Value().(V)) {
				return
			}
		}
	}
}

func (m orderedMap[K, V]) Size() int {
	return m.tree.Size()
}
