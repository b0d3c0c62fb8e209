package bench

import (
	"github.com/google/btree"
)

const (
	HashMapName = "map[int]int"
	BTreeName   = "btree.BTreeG"

	btreeDegree = 32
)

type kv struct {
	key, value int
}

func kvLess(a, b kv) bool {
	return a.key < b.key
}

func fillMaps(n int) (map[int]int, *btree.BTreeG[kv]) {
	m := make(map[int]int)
	t := btree.NewG[kv](btreeDegree, kvLess)
	for i := 0; i < n; i++ {
		m[i] = i
		t.ReplaceOrInsert(kv{key: i, value: i})
	}
	return m, t
}

// Maps fills a hash map and an ordered b-tree with keys 0..n-1 and reads every
// key once in ascending order from each.
func Maps(n int) ([]Result, error) {
	m, t := fillMaps(n)

	hashRes, err := measure(HashMapName, n, func(i int) (int, bool) {
		v, ok := m[i]
		return v, ok
	})
	if err != nil {
		return nil, err
	}

	treeRes, err := measure(BTreeName, n, func(i int) (int, bool) {
		item, ok := t.Get(kv{key: i})
		return item.value, ok
	})
	if err != nil {
		return nil, err
	}

	return []Result{hashRes, treeRes}, nil
}
