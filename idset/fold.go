package idset

import (
	"golang.org/x/exp/constraints"

	"github.com/besuikerd/dictset/orderedmap"
	"github.com/besuikerd/dictset/utils"
)

// Foldl folds items from the lowest id to the highest
func Foldl[S any, I constraints.Ordered, V, R any](s *IdSet[S, I, V], fn func(item V, carry R) R, init R) R {
	return FoldlWithID(s, dropID[I, V, R](fn), init)
}

func FoldlWithID[S any, I constraints.Ordered, V, R any](s *IdSet[S, I, V], fn Reducer[I, V, R], init R) R {
	return orderedmap.Fold(s.entries, utils.AscOrder, orderedmap.FoldFn[I, V, R](fn), init)
}

// Foldr folds items from the highest id to the lowest
func Foldr[S any, I constraints.Ordered, V, R any](s *IdSet[S, I, V], fn func(item V, carry R) R, init R) R {
	return FoldrWithID(s, dropID[I, V, R](fn), init)
}

func FoldrWithID[S any, I constraints.Ordered, V, R any](s *IdSet[S, I, V], fn Reducer[I, V, R], init R) R {
	return orderedmap.Fold(s.entries, utils.DescOrder, orderedmap.FoldFn[I, V, R](fn), init)
}

func dropID[I constraints.Ordered, V, R any](fn func(item V, carry R) R) Reducer[I, V, R] {
	return func(_ I, item V, carry R) R {
		return fn(item, carry)
	}
}
