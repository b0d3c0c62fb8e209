// Package stream provides lazy pipeline stages over iter.Seq. Intermediate
// stages pull from their source only as far as the consumer asks, so
// Limit after Filter stops scanning once enough items matched.
package stream

import (
	"iter"
)

func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Limit yields at most n items. n <= 0 yields nothing and never touches seq.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Collect always returns a non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	ret := []T{}
	for v := range seq {
		ret = append(ret, v)
	}
	return ret
}

func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// GroupBy partitions seq by key. Members keep their order of arrival.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for v := range seq {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

func CountBy[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K]int {
	counts := make(map[K]int)
	for v := range seq {
		counts[key(v)]++
	}
	return counts
}

// AverageBy is the arithmetic mean of fn over seq, 0 when seq is empty.
func AverageBy[T any](seq iter.Seq[T], fn func(T) int) float64 {
	var sum int64
	n := 0
	for v := range seq {
		sum += int64(fn(v))
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
