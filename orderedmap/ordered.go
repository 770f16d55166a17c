package orderedmap

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"

	"github.com/besuikerd/dictset/utils"
)

type (
	// OrderedMap is a persistent map sorted by key. Every modifying
	// method returns a new map and leaves the receiver untouched,
	// so a value can be shared freely.
	OrderedMap[K constraints.Ordered, V any] struct {
		m *immutable.SortedMap[K, V]
	}

	FilterFn[K constraints.Ordered, V any]       func(key K, value V, order int) bool
	ForEachFn[K constraints.Ordered, V any]      func(key K, value V, order int)
	ForEachUntilFn[K constraints.Ordered, V any] func(key K, value V, order int) bool
	TransformerFn[K constraints.Ordered, V any]  func(key K, value V, order int) V
	UpdateFn[V any]                              func(current V, found bool) (V, bool)
	FoldFn[K constraints.Ordered, V, R any]      func(key K, value V, acc R) R
)

type comparer[K constraints.Ordered] struct{}

func (comparer[K]) Compare(a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func NewOrderedMap[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m: immutable.NewSortedMap[K, V](comparer[K]{}),
	}
}

// FromPairs builds a map from pairs, later pairs overwrite earlier ones
func FromPairs[K constraints.Ordered, V any](pairs []utils.Pair[K, V]) *OrderedMap[K, V] {
	b := newBuilder[K, V]()
	for i := range pairs {
		b.set(pairs[i].Key, pairs[i].Value)
	}
	return b.done()
}

// Set is idempotent
func (om *OrderedMap[K, V]) Set(key K, value V) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: om.m.Set(key, value)}
}

// Remove returns the receiver itself when the key is absent
func (om *OrderedMap[K, V]) Remove(key K) *OrderedMap[K, V] {
	if !om.Has(key) {
		return om
	}

	return &OrderedMap[K, V]{m: om.m.Delete(key)}
}

// Update feeds the current value at key (if any) to fn. When fn reports
// a value it is stored at key, otherwise key is removed.
func (om *OrderedMap[K, V]) Update(key K, fn UpdateFn[V]) *OrderedMap[K, V] {
	current, found := om.m.Get(key)
	next, keep := fn(current, found)
	if !keep {
		return om.Remove(key)
	}

	return om.Set(key, next)
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	return om.m.Get(key)
}

func (om *OrderedMap[K, V]) Get(key K) V {
	v, found := om.m.Get(key)
	if !found {
		return utils.GetZero[V]()
	}

	return v
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m.Get(key)
	return found
}

func (om *OrderedMap[K, V]) Len() int {
	return om.m.Len()
}

func (om *OrderedMap[K, V]) IsEmpty() bool {
	return om.m.Len() == 0
}

// Min returns the entry with the lowest key
func (om *OrderedMap[K, V]) Min() (K, V, bool) {
	itr := om.m.Iterator()
	return itr.Next()
}

// Max returns the entry with the highest key
func (om *OrderedMap[K, V]) Max() (K, V, bool) {
	itr := om.m.Iterator()
	itr.Last()
	return itr.Prev()
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	itr := om.m.Iterator()
	order := 0
	for !itr.Done() {
		k, v, _ := itr.Next()
		f(k, v, order)
		order++
	}
}

// ForEachReverse visits entries from the highest key down,
// order still counts from zero.
func (om *OrderedMap[K, V]) ForEachReverse(f ForEachFn[K, V]) {
	itr := om.m.Iterator()
	itr.Last()
	order := 0
	for !itr.Done() {
		k, v, _ := itr.Prev()
		f(k, v, order)
		order++
	}
}

func (om *OrderedMap[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) *OrderedMap[K, V] {
	itr := om.m.Iterator()
	order := 0
	for !itr.Done() {
		k, v, _ := itr.Next()
		if canGoOn := ff(k, v, order); !canGoOn {
			break
		}
		order++
	}

	return om
}

func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, om.Len())
	om.ForEach(func(key K, _ V, _ int) {
		keys = append(keys, key)
	})
	return keys
}

func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, om.Len())
	om.ForEach(func(_ K, value V, _ int) {
		values = append(values, value)
	})
	return values
}

func (om *OrderedMap[K, V]) Pairs() []utils.Pair[K, V] {
	pairs := make([]utils.Pair[K, V], 0, om.Len())
	om.ForEach(func(key K, value V, _ int) {
		pairs = append(pairs, utils.Pair[K, V]{Key: key, Value: value})
	})
	return pairs
}

// Transform keeps every key and replaces its value
func (om *OrderedMap[K, V]) Transform(f TransformerFn[K, V]) *OrderedMap[K, V] {
	b := newBuilder[K, V]()
	om.ForEach(func(key K, value V, order int) {
		b.set(key, f(key, value, order))
	})
	return b.done()
}

func (om *OrderedMap[K, V]) Filter(f FilterFn[K, V]) *OrderedMap[K, V] {
	b := newBuilder[K, V]()
	om.ForEach(func(key K, value V, order int) {
		if preserve := f(key, value, order); preserve {
			b.set(key, value)
		}
	})
	return b.done()
}

// Partition splits the map into entries satisfying f and the rest
func (om *OrderedMap[K, V]) Partition(f FilterFn[K, V]) (*OrderedMap[K, V], *OrderedMap[K, V]) {
	in, out := newBuilder[K, V](), newBuilder[K, V]()
	om.ForEach(func(key K, value V, order int) {
		if f(key, value, order) {
			in.set(key, value)
		} else {
			out.set(key, value)
		}
	})
	return in.done(), out.done()
}

// Fold threads acc through every entry, ascending for utils.AscOrder
// and descending for utils.DescOrder.
func Fold[K constraints.Ordered, V, R any](
	om *OrderedMap[K, V],
	order utils.Order,
	f FoldFn[K, V, R],
	init R,
) R {
	acc := init
	visit := func(key K, value V, _ int) {
		acc = f(key, value, acc)
	}

	if order == utils.DescOrder {
		om.ForEachReverse(visit)
	} else {
		om.ForEach(visit)
	}

	return acc
}

// MapValues converts every value, keys are preserved
func MapValues[K constraints.Ordered, V, W any](
	om *OrderedMap[K, V],
	f func(key K, value V) W,
) *OrderedMap[K, W] {
	b := newBuilder[K, W]()
	om.ForEach(func(key K, value V, _ int) {
		b.set(key, f(key, value))
	})
	return b.done()
}

// builder accumulates entries in place before freezing them into a map
type builder[K constraints.Ordered, V any] struct {
	b *immutable.SortedMapBuilder[K, V]
}

func newBuilder[K constraints.Ordered, V any]() *builder[K, V] {
	return &builder[K, V]{b: immutable.NewSortedMapBuilder[K, V](comparer[K]{})}
}

func (b *builder[K, V]) set(key K, value V) *builder[K, V] {
	b.b.Set(key, value)
	return b
}

func (b *builder[K, V]) done() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: b.b.Map()}
}
