package dictset

import (
	"golang.org/x/exp/constraints"

	"github.com/besuikerd/dictset/orderedmap"
)

// Union combines both sets. When a key is present in both, the value of a
// is kept. The result uses the ordinal function of a.
func Union[K constraints.Ordered, V any](a, b *DictSet[K, V]) *DictSet[K, V] {
	return a.with(orderedmap.Union(a.entries, b.entries))
}

// Intersect keeps the values of a whose key is also present in b
func Intersect[K constraints.Ordered, V any](a, b *DictSet[K, V]) *DictSet[K, V] {
	return a.with(orderedmap.Intersect(a.entries, b.entries))
}

// Diff keeps the values of a whose key is absent from b
func Diff[K constraints.Ordered, V any](a, b *DictSet[K, V]) *DictSet[K, V] {
	return a.with(orderedmap.Diff(a.entries, b.entries))
}

// Merge visits every key of a and b once, in ascending order. Values whose
// key is only in a go to onlyLeft, only in b to onlyRight, and in both to
// both. Keys come from the stored entries, neither ordinal function is called.
func Merge[K constraints.Ordered, V, R any](
	onlyLeft func(left V, acc R) R,
	both func(left, right V, acc R) R,
	onlyRight func(right V, acc R) R,
	a, b *DictSet[K, V],
	init R,
) R {
	return orderedmap.Merge(
		a.entries, b.entries,
		func(_ K, left V, acc R) R { return onlyLeft(left, acc) },
		func(_ K, left, right V, acc R) R { return both(left, right, acc) },
		func(_ K, right V, acc R) R { return onlyRight(right, acc) },
		init,
	)
}
