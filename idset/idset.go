// Package idset provides IdSet, a persistent set that assigns a fresh id to
// every inserted item.
//
// Ids come from a generator, a pure function that turns the current seed
// into an id and the next seed. The set owns the seed and advances it only
// when an item is inserted. The generator must never hand out the same id
// twice along the chain of seeds it produces; the set does not check this
// and an id handed out twice simply overwrites the earlier item.
package idset

import (
	"golang.org/x/exp/constraints"

	"github.com/besuikerd/dictset/orderedmap"
	"github.com/besuikerd/dictset/utils"
)

type (
	// Generator produces an id and the seed to use for the next one
	Generator[S any, I constraints.Ordered] func(seed S) (I, S)

	// UpdateFn receives the stored item, if any, and returns the item
	// to store or false to remove the entry.
	UpdateFn[V any] func(current V, found bool) (V, bool)

	Predicate[I constraints.Ordered, V any] func(id I, item V) bool
	Reducer[I constraints.Ordered, V, R any] func(id I, item V, carry R) R

	IdSet[S any, I constraints.Ordered, V any] struct {
		gen     Generator[S, I]
		seed    S
		entries *orderedmap.OrderedMap[I, V]
	}
)

func Empty[S any, I constraints.Ordered, V any](gen Generator[S, I], seed S) *IdSet[S, I, V] {
	return &IdSet[S, I, V]{
		gen:     gen,
		seed:    seed,
		entries: orderedmap.NewOrderedMap[I, V](),
	}
}

// FromList inserts items one by one, ids are handed out in slice order
func FromList[S any, I constraints.Ordered, V any](gen Generator[S, I], seed S, items []V) *IdSet[S, I, V] {
	s := Empty[S, I, V](gen, seed)
	for _, item := range items {
		s = s.Insert(item)
	}
	return s
}

// with keeps the generator and seed, only the entries change
func (s *IdSet[S, I, V]) with(entries *orderedmap.OrderedMap[I, V]) *IdSet[S, I, V] {
	return &IdSet[S, I, V]{gen: s.gen, seed: s.seed, entries: entries}
}

// InsertWithID draws the next id and stores the item built from it.
// This is the only operation that advances the seed.
func (s *IdSet[S, I, V]) InsertWithID(makeItem func(id I) V) *IdSet[S, I, V] {
	id, next := s.gen(s.seed)
	return &IdSet[S, I, V]{
		gen:     s.gen,
		seed:    next,
		entries: s.entries.Set(id, makeItem(id)),
	}
}

func (s *IdSet[S, I, V]) Insert(item V) *IdSet[S, I, V] {
	return s.InsertWithID(func(I) V { return item })
}

// Update replaces the item at id with the result of fn, or removes it
// when fn returns false.
func (s *IdSet[S, I, V]) Update(id I, fn UpdateFn[V]) *IdSet[S, I, V] {
	return s.with(s.entries.Update(id, orderedmap.UpdateFn[V](fn)))
}

func (s *IdSet[S, I, V]) Remove(id I) *IdSet[S, I, V] {
	return s.with(s.entries.Remove(id))
}

func (s *IdSet[S, I, V]) Get(id I) (V, bool) {
	return s.entries.HasGet(id)
}

func (s *IdSet[S, I, V]) Member(id I) bool {
	return s.entries.Has(id)
}

func (s *IdSet[S, I, V]) Size() int {
	return s.entries.Len()
}

func (s *IdSet[S, I, V]) IsEmpty() bool {
	return s.entries.IsEmpty()
}

// Seed is the state the next insert will hand to the generator
func (s *IdSet[S, I, V]) Seed() S {
	return s.seed
}

// Entries exposes the backing map, it cannot be used to change the set
func (s *IdSet[S, I, V]) Entries() *orderedmap.OrderedMap[I, V] {
	return s.entries
}

func (s *IdSet[S, I, V]) Keys() []I {
	return s.entries.Keys()
}

func (s *IdSet[S, I, V]) Values() []V {
	return s.entries.Values()
}

func (s *IdSet[S, I, V]) ToList() []utils.Pair[I, V] {
	return s.entries.Pairs()
}

func (s *IdSet[S, I, V]) Map(fn func(item V) V) *IdSet[S, I, V] {
	return s.MapWithID(func(_ I, item V) V { return fn(item) })
}

// MapWithID transforms every item in place, ids do not change
func (s *IdSet[S, I, V]) MapWithID(fn func(id I, item V) V) *IdSet[S, I, V] {
	return s.with(s.entries.Transform(func(id I, item V, _ int) V {
		return fn(id, item)
	}))
}

func (s *IdSet[S, I, V]) Filter(pred func(item V) bool) *IdSet[S, I, V] {
	return s.FilterWithID(func(_ I, item V) bool { return pred(item) })
}

func (s *IdSet[S, I, V]) FilterWithID(pred Predicate[I, V]) *IdSet[S, I, V] {
	return s.with(s.entries.Filter(func(id I, item V, _ int) bool {
		return pred(id, item)
	}))
}

func (s *IdSet[S, I, V]) Partition(pred func(item V) bool) (*IdSet[S, I, V], *IdSet[S, I, V]) {
	return s.PartitionWithID(func(_ I, item V) bool { return pred(item) })
}

// PartitionWithID returns the items satisfying pred and the rest. Both
// halves carry the current seed.
func (s *IdSet[S, I, V]) PartitionWithID(pred Predicate[I, V]) (*IdSet[S, I, V], *IdSet[S, I, V]) {
	in, out := s.entries.Partition(func(id I, item V, _ int) bool {
		return pred(id, item)
	})
	return s.with(in), s.with(out)
}
