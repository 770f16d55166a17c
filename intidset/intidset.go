// Package intidset is an idset.IdSet whose ids count up from zero.
package intidset

import "github.com/besuikerd/dictset/idset"

// Generate hands out the seed as the id and moves on to the next integer
func Generate(seed int) (int, int) {
	return seed, seed + 1
}

func Empty[V any]() *idset.IdSet[int, int, V] {
	return idset.Empty[int, int, V](Generate, 0)
}

func FromList[V any](items []V) *idset.IdSet[int, int, V] {
	return idset.FromList[int, int, V](Generate, 0, items)
}
