package compactmap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndGet(t *testing.T) {
	cm := NewCompactMap[int, int]()
	cm.AddOrSet(1, 100)
	cm.AddOrSet(2, 200)
	cm.AddOrSet(3, 300)

	value, exists := cm.Get(1)
	assert.True(t, exists, "Value for key 1 should exist")
	assert.Equal(t, 100, value, "Value for key 1 should be 100")

	value, exists = cm.Get(2)
	assert.True(t, exists, "Value for key 2 should exist")
	assert.Equal(t, 200, value, "Value for key 2 should be 200")

	value, exists = cm.Load(3)
	assert.True(t, exists, "Value for key 3 should exist")
	assert.Equal(t, 300, value, "Value for key 3 should be 300")

	_, exists = cm.Get(4)
	assert.False(t, exists, "Key 4 was never stored")
}

func TestOverwrite(t *testing.T) {
	cm := NewCompactMap[string, int]()
	assert.False(t, cm.AddOrSet("a", 1))
	assert.True(t, cm.AddOrSet("a", 2))

	value, _ := cm.Get("a")
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, cm.Count())
}

func TestDelete(t *testing.T) {
	cm := NewCompactMap[int, int]()
	cm.AddOrSet(1, 100)
	cm.AddOrSet(2, 200)
	cm.Delete(1)
	cm.Delete(42)

	_, exists := cm.Get(1)
	assert.False(t, exists, "Value for key 1 should not exist after deletion")

	value, exists := cm.Get(2)
	assert.True(t, exists, "Value for key 2 should exist")
	assert.Equal(t, 200, value, "Value for key 2 should be 200")

	cm.Delete(2)
	assert.Equal(t, 0, cm.Count())
	assert.Equal(t, "0 buffers, total len: 0", cm.Stats())
}

func TestIterate(t *testing.T) {
	cm := NewCompactMap[int, int]()
	cm.AddOrSet(1, 100)
	cm.AddOrSet(2, 200)
	cm.AddOrSet(3, 300)

	var result []int
	cm.Iterate(func(key, value int) bool {
		result = append(result, key)
		return true
	})

	assert.ElementsMatch(t, []int{1, 2, 3}, result, "Iterate should visit all keys")
}

func TestIterateStops(t *testing.T) {
	cm := NewCompactMap[int, int]()
	for i := 0; i < 10; i++ {
		cm.Store(i, i)
	}

	visited := 0
	cm.Range(func(key, value int) bool {
		visited++
		return key < 4
	})
	assert.Equal(t, 5, visited)
}

func TestExist(t *testing.T) {
	cm := NewCompactMap[int, int]()
	cm.AddOrSet(1, 100)
	cm.AddOrSet(2, 200)

	exists := cm.Exist(1)
	assert.True(t, exists, "Key 1 should exist")

	exists = cm.Exist(3)
	assert.False(t, exists, "Key 3 should not exist")
}

func TestSortOrder(t *testing.T) {
	cm := NewCompactMap[int, int]()
	cm.AddOrSet(3, 300)
	cm.AddOrSet(1, 100)
	cm.AddOrSet(2, 200)

	var result []int
	cm.Iterate(func(key, value int) bool {
		result = append(result, key)
		return true
	})

	assert.Equal(t, []int{1, 2, 3}, result, "Keys should be iterated in sorted order")
}

func TestSortOrderAcrossBuffers(t *testing.T) {
	const n = maxSliceSize * 7
	cm := NewCompactMap[int, int]()
	keys := rand.Perm(n)
	for _, k := range keys {
		cm.AddOrSet(k, k*10)
	}

	require.Equal(t, n, cm.Count())
	got := cm.Keys()
	assert.True(t, sort.IntsAreSorted(got), "keys must be globally ordered")
	assert.Len(t, got, n)

	for _, k := range keys {
		v, ok := cm.Get(k)
		require.True(t, ok, "key %d", k)
		require.Equal(t, k*10, v)
	}
	assert.Greater(t, len(cm.buffers), 1, "large maps should be split")
	for _, b := range cm.buffers {
		assert.LessOrEqual(t, len(*b), maxSliceSize)
	}
}

func TestAppendAscending(t *testing.T) {
	cm := NewCompactMap[int, int]()
	for i := 0; i < 3*maxSliceSize; i++ {
		cm.AddOrSet(i, i)
	}
	v, ok := cm.Get(2*maxSliceSize + 7)
	assert.True(t, ok)
	assert.Equal(t, 2*maxSliceSize+7, v)
	assert.Equal(t, 3*maxSliceSize, cm.Count())
}

func TestDeleteDrainsBuffer(t *testing.T) {
	cm := NewCompactMap[int, int]()
	for i := 0; i < 2*maxSliceSize; i++ {
		cm.AddOrSet(i, i)
	}
	for i := 0; i < 2*maxSliceSize; i += 2 {
		cm.Delete(i)
	}
	assert.Equal(t, maxSliceSize, cm.Count())
	for i := 0; i < 2*maxSliceSize; i++ {
		assert.Equal(t, i%2 == 1, cm.Exist(i), "key %d", i)
	}
}

func TestLoadOrStore(t *testing.T) {
	cm := NewCompactMap[int, string]()

	actual, loaded := cm.LoadOrStore(1, "one")
	assert.False(t, loaded)
	assert.Equal(t, "one", actual)

	actual, loaded = cm.LoadOrStore(1, "uno")
	assert.True(t, loaded)
	assert.Equal(t, "one", actual)
}

func TestLoadAndDelete(t *testing.T) {
	cm := NewCompactMap[int, string]()
	cm.Store(1, "one")

	old, loaded := cm.LoadAndDelete(1)
	assert.True(t, loaded)
	assert.Equal(t, "one", old)

	old, loaded = cm.LoadAndDelete(1)
	assert.False(t, loaded)
	assert.Equal(t, "", old)
}

func TestClear(t *testing.T) {
	cm := NewCompactMap[int, int]()
	for i := 0; i < 10; i++ {
		cm.AddOrSet(i, 100+i)
	}
	cm.Clear()
	assert.Equal(t, 0, cm.Count())
	assert.False(t, cm.Exist(5))

	cm.AddOrSet(5, 105)
	assert.True(t, cm.Exist(5))
}
