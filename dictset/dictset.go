// Package dictset provides DictSet, a persistent set of values that are
// stored under a key computed from the value itself.
//
// The key (ordinal) function is fixed when the set is created and travels
// with every set derived from it. It must be deterministic: calling it
// twice with the same value has to produce the same key. Two values with
// the same key cannot coexist, the most recently stored one wins.
package dictset

import (
	"golang.org/x/exp/constraints"

	"github.com/besuikerd/dictset/orderedmap"
	"github.com/besuikerd/dictset/utils"
)

type (
	// OrdFn derives the key of a value
	OrdFn[K constraints.Ordered, V any] func(v V) K

	// UpdateFn receives the stored value, if any, and returns the value
	// to store or false to remove the entry.
	UpdateFn[V any] func(current V, found bool) (V, bool)

	// Predicate allows to filter values
	Predicate[V any] func(v V) bool

	// Reducer takes a carry from previous iteration and a value
	// and returns a new version of carry
	Reducer[V, R any] func(v V, carry R) R

	DictSet[K constraints.Ordered, V any] struct {
		ord     OrdFn[K, V]
		entries *orderedmap.OrderedMap[K, V]
	}
)

func Empty[K constraints.Ordered, V any](ord OrdFn[K, V]) *DictSet[K, V] {
	return &DictSet[K, V]{
		ord:     ord,
		entries: orderedmap.NewOrderedMap[K, V](),
	}
}

func Singleton[K constraints.Ordered, V any](ord OrdFn[K, V], v V) *DictSet[K, V] {
	return Empty(ord).Insert(v)
}

// FromList inserts values in order, so a later value replaces an earlier
// one with the same key.
func FromList[K constraints.Ordered, V any](ord OrdFn[K, V], values []V) *DictSet[K, V] {
	s := Empty(ord)
	for _, v := range values {
		s = s.Insert(v)
	}
	return s
}

func (s *DictSet[K, V]) with(entries *orderedmap.OrderedMap[K, V]) *DictSet[K, V] {
	return &DictSet[K, V]{ord: s.ord, entries: entries}
}

// Insert stores v under its ordinal, replacing any value already there
func (s *DictSet[K, V]) Insert(v V) *DictSet[K, V] {
	return s.with(s.entries.Set(s.ord(v), v))
}

// Update looks up the entry with the ordinal of v and replaces it with the
// result of fn. The result is stored under the ordinal of v even if its own
// ordinal differs.
func (s *DictSet[K, V]) Update(v V, fn UpdateFn[V]) *DictSet[K, V] {
	return s.with(s.entries.Update(s.ord(v), orderedmap.UpdateFn[V](fn)))
}

func (s *DictSet[K, V]) Remove(v V) *DictSet[K, V] {
	return s.with(s.entries.Remove(s.ord(v)))
}

func (s *DictSet[K, V]) Get(k K) (V, bool) {
	return s.entries.HasGet(k)
}

func (s *DictSet[K, V]) Member(k K) bool {
	return s.entries.Has(k)
}

func (s *DictSet[K, V]) Size() int {
	return s.entries.Len()
}

func (s *DictSet[K, V]) IsEmpty() bool {
	return s.entries.IsEmpty()
}

// Ord returns the key the set would store v under
func (s *DictSet[K, V]) Ord(v V) K {
	return s.ord(v)
}

func (s *DictSet[K, V]) Keys() []K {
	return s.entries.Keys()
}

func (s *DictSet[K, V]) Values() []V {
	return s.entries.Values()
}

// ToList returns the entries in ascending key order
func (s *DictSet[K, V]) ToList() []utils.Pair[K, V] {
	return s.entries.Pairs()
}

// Map reinserts every transformed value, so a value whose ordinal changes
// moves to its new key. Entries are visited in ascending key order, a later
// entry overwrites an earlier one when their results collide.
func (s *DictSet[K, V]) Map(fn func(v V) V) *DictSet[K, V] {
	return orderedmap.Fold(s.entries, utils.AscOrder,
		func(_ K, v V, acc *DictSet[K, V]) *DictSet[K, V] {
			return acc.Insert(fn(v))
		},
		Empty(s.ord),
	)
}

// Foldl folds values from the lowest key to the highest
func Foldl[K constraints.Ordered, V, R any](s *DictSet[K, V], fn Reducer[V, R], init R) R {
	return fold(s, utils.AscOrder, fn, init)
}

// Foldr folds values from the highest key to the lowest
func Foldr[K constraints.Ordered, V, R any](s *DictSet[K, V], fn Reducer[V, R], init R) R {
	return fold(s, utils.DescOrder, fn, init)
}

func fold[K constraints.Ordered, V, R any](s *DictSet[K, V], order utils.Order, fn Reducer[V, R], init R) R {
	return orderedmap.Fold(s.entries, order, func(_ K, v V, acc R) R {
		return fn(v, acc)
	}, init)
}

func (s *DictSet[K, V]) Filter(pred Predicate[V]) *DictSet[K, V] {
	return s.with(s.entries.Filter(func(_ K, v V, _ int) bool {
		return pred(v)
	}))
}

// Partition returns the values satisfying pred and the rest
func (s *DictSet[K, V]) Partition(pred Predicate[V]) (*DictSet[K, V], *DictSet[K, V]) {
	in, out := s.entries.Partition(func(_ K, v V, _ int) bool {
		return pred(v)
	})
	return s.with(in), s.with(out)
}
