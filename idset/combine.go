package idset

import (
	"golang.org/x/exp/constraints"

	"github.com/besuikerd/dictset/orderedmap"
)

// Two sets cannot share one generator state, so combining them yields a
// plain ordered map rather than an IdSet.

// Union keeps every id of a and b, the item of a wins on collision
func Union[S any, I constraints.Ordered, V any](a, b *IdSet[S, I, V]) *orderedmap.OrderedMap[I, V] {
	return orderedmap.Union(a.entries, b.entries)
}

func Intersect[S any, I constraints.Ordered, V any](a, b *IdSet[S, I, V]) *orderedmap.OrderedMap[I, V] {
	return orderedmap.Intersect(a.entries, b.entries)
}

func Diff[S any, I constraints.Ordered, V any](a, b *IdSet[S, I, V]) *orderedmap.OrderedMap[I, V] {
	return orderedmap.Diff(a.entries, b.entries)
}

// Merge visits every id of a and b once, in ascending order, and hands
// the items to the callback matching where the id was found.
func Merge[S any, I constraints.Ordered, V, R any](
	onlyLeft orderedmap.OnlyLeftFn[I, V, R],
	both orderedmap.BothFn[I, V, V, R],
	onlyRight orderedmap.OnlyRightFn[I, V, R],
	a, b *IdSet[S, I, V],
	init R,
) R {
	return orderedmap.Merge(a.entries, b.entries, onlyLeft, both, onlyRight, init)
}
