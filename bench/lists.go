package bench

import (
	"container/list"
)

const (
	SliceName      = "slice []int"
	LinkedListName = "container/list"
)

// linkedAt returns the i-th element, walking from whichever end is nearer.
func linkedAt(l *list.List, i int) *list.Element {
	if i < 0 || i >= l.Len() {
		return nil
	}
	if i < l.Len()/2 {
		e := l.Front()
		for ; i > 0; i-- {
			e = e.Next()
		}
		return e
	}
	e := l.Back()
	for j := l.Len() - 1; j > i; j-- {
		e = e.Prev()
	}
	return e
}

func fillSequences(n int) ([]int, *list.List) {
	s := make([]int, 0)
	l := list.New()
	for i := 0; i < n; i++ {
		s = append(s, i)
		l.PushBack(i)
	}
	return s, l
}

// Lists fills a slice and a linked list with 0..n-1 and reads every position
// once by ascending index from each.
func Lists(n int) ([]Result, error) {
	s, l := fillSequences(n)

	sliceRes, err := measure(SliceName, n, func(i int) (int, bool) {
		if i >= len(s) {
			return 0, false
		}
		return s[i], true
	})
	if err != nil {
		return nil, err
	}

	linkedRes, err := measure(LinkedListName, n, func(i int) (int, bool) {
		e := linkedAt(l, i)
		if e == nil {
			return 0, false
		}
		return e.Value.(int), true
	})
	if err != nil {
		return nil, err
	}

	return []Result{sliceRes, linkedRes}, nil
}
