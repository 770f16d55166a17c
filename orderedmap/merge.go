package orderedmap

import (
	"golang.org/x/exp/constraints"
)

type (
	// OnlyLeftFn is called for a key found only in the left map
	OnlyLeftFn[K constraints.Ordered, A, R any] func(key K, left A, acc R) R
	// BothFn is called for a key found in both maps
	BothFn[K constraints.Ordered, A, B, R any] func(key K, left A, right B, acc R) R
	// OnlyRightFn is called for a key found only in the right map
	OnlyRightFn[K constraints.Ordered, B, R any] func(key K, right B, acc R) R
)

// Merge walks the union of the keys of left and right once, in ascending
// order, and classifies each key as left only, right only or present in both.
// The accumulator is threaded through the callbacks from the lowest key to
// the highest. Every key costs at most one comparison.
func Merge[K constraints.Ordered, A, B, R any](
	left *OrderedMap[K, A],
	right *OrderedMap[K, B],
	onlyLeft OnlyLeftFn[K, A, R],
	both BothFn[K, A, B, R],
	onlyRight OnlyRightFn[K, B, R],
	init R,
) R {
	var cmp comparer[K]
	acc := init

	li, ri := left.m.Iterator(), right.m.Iterator()
	lk, lv, lok := li.Next()
	rk, rv, rok := ri.Next()

	for lok && rok {
		switch cmp.Compare(lk, rk) {
		case -1:
			acc = onlyLeft(lk, lv, acc)
			lk, lv, lok = li.Next()
		case 1:
			acc = onlyRight(rk, rv, acc)
			rk, rv, rok = ri.Next()
		default:
			acc = both(lk, lv, rv, acc)
			lk, lv, lok = li.Next()
			rk, rv, rok = ri.Next()
		}
	}

	for ; lok; lk, lv, lok = li.Next() {
		acc = onlyLeft(lk, lv, acc)
	}

	for ; rok; rk, rv, rok = ri.Next() {
		acc = onlyRight(rk, rv, acc)
	}

	return acc
}

// Union holds every key of a and b. On collision the value of a wins.
func Union[K constraints.Ordered, V any](a, b *OrderedMap[K, V]) *OrderedMap[K, V] {
	return Merge(
		a, b,
		func(key K, left V, acc *builder[K, V]) *builder[K, V] {
			return acc.set(key, left)
		},
		func(key K, left, _ V, acc *builder[K, V]) *builder[K, V] {
			return acc.set(key, left)
		},
		func(key K, right V, acc *builder[K, V]) *builder[K, V] {
			return acc.set(key, right)
		},
		newBuilder[K, V](),
	).done()
}

// Intersect keeps the keys present in both maps with the values of a
func Intersect[K constraints.Ordered, V, W any](a *OrderedMap[K, V], b *OrderedMap[K, W]) *OrderedMap[K, V] {
	return Merge(
		a, b,
		skipOne[K, V, *builder[K, V]],
		func(key K, left V, _ W, acc *builder[K, V]) *builder[K, V] {
			return acc.set(key, left)
		},
		skipOne[K, W, *builder[K, V]],
		newBuilder[K, V](),
	).done()
}

// Diff keeps the keys of a that are absent from b
func Diff[K constraints.Ordered, V, W any](a *OrderedMap[K, V], b *OrderedMap[K, W]) *OrderedMap[K, V] {
	return Merge(
		a, b,
		func(key K, left V, acc *builder[K, V]) *builder[K, V] {
			return acc.set(key, left)
		},
		func(_ K, _ V, _ W, acc *builder[K, V]) *builder[K, V] {
			return acc
		},
		skipOne[K, W, *builder[K, V]],
		newBuilder[K, V](),
	).done()
}

func skipOne[K constraints.Ordered, V, R any](_ K, _ V, acc R) R {
	return acc
}
