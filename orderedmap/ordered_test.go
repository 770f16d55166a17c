package orderedmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/besuikerd/dictset/orderedmap"
	"github.com/besuikerd/dictset/utils"
)

func TestOrderedMap_Len(t *testing.T) {
	t.Run("after set", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[string, int]().
			Set("foo", 1).
			Set("bar", 2)

		assert.Equal(t, 2, om.Len())

		om = om.Set("foo", 3).Set("baz", 123)

		assert.Equal(t, 3, om.Len())
	})

	t.Run("previous versions are untouched", func(t *testing.T) {
		empty := orderedmap.NewOrderedMap[string, int]()
		one := empty.Set("foo", 1)
		two := one.Set("bar", 2)

		assert.True(t, empty.IsEmpty())
		assert.Equal(t, 1, one.Len())
		assert.Equal(t, 2, two.Len())
		assert.False(t, one.Has("bar"))
	})
}

func TestOrderedMap_Get(t *testing.T) {
	t.Run("get existing and non existing value", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[string, int]().
			Set("foo", 1).
			Set("bar", 2)

		fooV, ok := om.HasGet("foo")
		assert.True(t, ok)
		assert.Equal(t, 1, fooV)

		assert.Equal(t, 2, om.Get("bar"))

		nilV, ok := om.HasGet("non-existent")
		assert.False(t, ok)
		assert.Equal(t, 0, nilV)
		assert.Equal(t, 0, om.Get("non-existent"))
	})
}

func TestOrderedMap_Set(t *testing.T) {
	t.Run("it will override a value and keep keys sorted", func(t *testing.T) {
		const N = 1_000

		om := orderedmap.NewOrderedMap[int, int]()
		for i := N - 1; i >= 0; i-- {
			om = om.Set(i, i)
		}

		for i := 0; i < N; i++ {
			om = om.Set(i, i+N)
		}

		require.Equal(t, N, om.Len())
		om.ForEach(func(key int, value int, order int) {
			assert.Equal(t, order, key, "keys should come out in ascending order")
			assert.Equal(t, key+N, value, "value should equal to key + N")
		})
	})
}

func TestOrderedMap_Remove(t *testing.T) {
	t.Run("remove all existing keys starting from the middle", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[string, string]().
			Set("foo", "1").
			Set("bar", "2").
			Set("baz", "5").
			Set("123abc", "444").
			Set("abc", "123").
			Set("abc123", "321").
			Set("abc-000", "000abc")

		assert.Equal(t, 7, om.Len())

		om = om.Remove("baz").Remove("123abc").Remove("abc")

		assert.Equal(t, 4, om.Len())
		assert.Equal(t, []string{"abc-000", "abc123", "bar", "foo"}, om.Keys())

		om = om.Remove("abc123").Remove("bar").Remove("foo").Remove("abc-000")

		assert.Equal(t, 0, om.Len())
	})

	t.Run("removing a missing key returns the same map", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[string, string]().Set("foo", "1")

		assert.Same(t, om, om.Remove("bar"))
	})
}

func TestOrderedMap_Update(t *testing.T) {
	om := orderedmap.NewOrderedMap[string, int]().Set("foo", 1)

	t.Run("existing value", func(t *testing.T) {
		updated := om.Update("foo", func(v int, found bool) (int, bool) {
			assert.True(t, found)
			return v + 10, true
		})

		assert.Equal(t, 11, updated.Get("foo"))
		assert.Equal(t, 1, om.Get("foo"))
	})

	t.Run("missing value is inserted", func(t *testing.T) {
		updated := om.Update("bar", func(v int, found bool) (int, bool) {
			assert.False(t, found)
			return 5, true
		})

		assert.Equal(t, []string{"bar", "foo"}, updated.Keys())
	})

	t.Run("returning false removes", func(t *testing.T) {
		updated := om.Update("foo", func(int, bool) (int, bool) {
			return 0, false
		})

		assert.True(t, updated.IsEmpty())
	})
}

func TestOrderedMap_ForEach(t *testing.T) {
	t.Run("iterate over an empty map", func(t *testing.T) {
		iterations := 0
		om := orderedmap.NewOrderedMap[string, string]()
		om.ForEach(func(k string, v string, order int) {
			iterations++
		})
		om.ForEachReverse(func(k string, v string, order int) {
			iterations++
		})
		assert.Equal(t, 0, iterations)
	})

	t.Run("reverse visits keys from the highest", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[int, string]()
		for i := 0; i < 100; i++ {
			om = om.Set(i, fmt.Sprintf("v%d", i))
		}

		var keys []int
		om.ForEachReverse(func(k int, v string, order int) {
			assert.Equal(t, 99-order, k)
			keys = append(keys, k)
		})
		assert.Len(t, keys, 100)
	})

	t.Run("until stops early", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[int, int]().Set(1, 1).Set(2, 2).Set(3, 3)

		var seen []int
		om.ForEachUntil(func(k int, v int, order int) bool {
			seen = append(seen, k)
			return k < 2
		})
		assert.Equal(t, []int{1, 2}, seen)
	})
}

func TestOrderedMap_MinMax(t *testing.T) {
	om := orderedmap.NewOrderedMap[string, int]()

	_, _, ok := om.Min()
	assert.False(t, ok)
	_, _, ok = om.Max()
	assert.False(t, ok)

	om = om.Set("m", 1).Set("a", 2).Set("z", 3)

	k, v, ok := om.Min()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 2, v)

	k, v, ok = om.Max()
	require.True(t, ok)
	assert.Equal(t, "z", k)
	assert.Equal(t, 3, v)
}

func TestOrderedMap_Transform(t *testing.T) {
	om := orderedmap.NewOrderedMap[int, string]().Set(2, "b").Set(1, "a")

	transformed := om.Transform(func(k int, v string, order int) string {
		return fmt.Sprintf("%d:%s:%d", k, v, order)
	})

	assert.Equal(t, []string{"1:a:0", "2:b:1"}, transformed.Values())
	assert.Equal(t, []string{"a", "b"}, om.Values())
}

func TestOrderedMap_FilterAndPartition(t *testing.T) {
	om := orderedmap.NewOrderedMap[int, int]()
	for i := 0; i < 10; i++ {
		om = om.Set(i, i*i)
	}

	even := om.Filter(func(k int, v int, order int) bool {
		return k%2 == 0
	})
	assert.Equal(t, []int{0, 2, 4, 6, 8}, even.Keys())

	in, out := om.Partition(func(k int, v int, order int) bool {
		return v > 10
	})
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, in.Keys())
	assert.Equal(t, []int{0, 1, 2, 3}, out.Keys())
	assert.Equal(t, 10, om.Len())
}

func TestFold(t *testing.T) {
	om := orderedmap.FromPairs([]utils.Pair[int, string]{
		{Key: 3, Value: "c"},
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
	})

	concat := func(k int, v string, acc string) string {
		return acc + v
	}

	assert.Equal(t, "abc", orderedmap.Fold(om, utils.AscOrder, concat, ""))
	assert.Equal(t, "cba", orderedmap.Fold(om, utils.DescOrder, concat, ""))
}

func TestMapValues(t *testing.T) {
	om := orderedmap.NewOrderedMap[string, int]().Set("a", 1).Set("b", 2)

	lengths := orderedmap.MapValues(om, func(k string, v int) string {
		return fmt.Sprintf("%s=%d", k, v)
	})

	assert.Equal(t, []utils.Pair[string, string]{
		{Key: "a", Value: "a=1"},
		{Key: "b", Value: "b=2"},
	}, lengths.Pairs())
}
