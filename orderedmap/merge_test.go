package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/besuikerd/dictset/orderedmap"
)

func fromMap(m map[int]string) *orderedmap.OrderedMap[int, string] {
	om := orderedmap.NewOrderedMap[int, string]()
	for k, v := range m {
		om = om.Set(k, v)
	}
	return om
}

func TestMerge(t *testing.T) {
	a := fromMap(map[int]string{1: "a1", 3: "a3", 5: "a5", 7: "a7"})
	b := fromMap(map[int]string{2: "b2", 3: "b3", 7: "b7", 9: "b9"})

	t.Run("visits every key once in ascending order", func(t *testing.T) {
		type visit struct {
			kind string
			key  int
		}

		visits := orderedmap.Merge(
			a, b,
			func(k int, _ string, acc []visit) []visit { return append(acc, visit{"left", k}) },
			func(k int, _, _ string, acc []visit) []visit { return append(acc, visit{"both", k}) },
			func(k int, _ string, acc []visit) []visit { return append(acc, visit{"right", k}) },
			[]visit(nil),
		)

		assert.Equal(t, []visit{
			{"left", 1},
			{"right", 2},
			{"both", 3},
			{"left", 5},
			{"both", 7},
			{"right", 9},
		}, visits)
	})

	t.Run("counting visits equals size of the key union", func(t *testing.T) {
		count := orderedmap.Merge(
			a, b,
			func(_ int, _ string, acc int) int { return acc + 1 },
			func(_ int, _, _ string, acc int) int { return acc + 1 },
			func(_ int, _ string, acc int) int { return acc + 1 },
			0,
		)

		both := orderedmap.Intersect(a, b)
		assert.Equal(t, a.Len()+b.Len()-both.Len(), count)
	})

	t.Run("empty sides", func(t *testing.T) {
		empty := orderedmap.NewOrderedMap[int, string]()

		keys := func(k int, _ string, acc []int) []int { return append(acc, k) }
		never := func(_ int, _, _ string, acc []int) []int {
			t.Fatal("no key can be in both")
			return acc
		}

		assert.Equal(t, []int{1, 3, 5, 7}, orderedmap.Merge(a, empty, keys, never, keys, []int(nil)))
		assert.Equal(t, []int{2, 3, 7, 9}, orderedmap.Merge(empty, b, keys, never, keys, []int(nil)))
		assert.Nil(t, orderedmap.Merge(empty, empty, keys, never, keys, []int(nil)))
	})
}

func TestUnion(t *testing.T) {
	a := fromMap(map[int]string{1: "a1", 3: "a3"})
	b := fromMap(map[int]string{2: "b2", 3: "b3"})

	u := orderedmap.Union(a, b)

	assert.Equal(t, []int{1, 2, 3}, u.Keys())
	assert.Equal(t, "a3", u.Get(3), "left value wins on collision")
	assert.Equal(t, "b2", u.Get(2))
	assert.Equal(t, 2, a.Len())
}

func TestIntersect(t *testing.T) {
	a := fromMap(map[int]string{1: "a1", 3: "a3", 4: "a4"})
	b := orderedmap.NewOrderedMap[int, bool]().Set(3, true).Set(4, false).Set(5, true)

	i := orderedmap.Intersect(a, b)

	assert.Equal(t, []int{3, 4}, i.Keys())
	assert.Equal(t, []string{"a3", "a4"}, i.Values())
}

func TestDiff(t *testing.T) {
	a := fromMap(map[int]string{1: "a1", 3: "a3", 4: "a4"})
	b := fromMap(map[int]string{3: "b3", 8: "b8"})

	d := orderedmap.Diff(a, b)

	assert.Equal(t, []int{1, 4}, d.Keys())
	assert.Equal(t, []string{"a1", "a4"}, d.Values())
}
