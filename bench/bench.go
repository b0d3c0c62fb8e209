// Package bench times a single ascending pass of point reads over pairs of
// containers filled with the same values. There is no warm-up and no
// repetition, so the numbers are only good for comparing orders of magnitude.
package bench

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Result is one timed pass over a container.
type Result struct {
	Name    string
	Elapsed time.Duration
	Ops     int
}

func (r Result) Nanos() int64 {
	return r.Elapsed.Nanoseconds()
}

// getter reads position or key i.
type getter func(i int) (int, bool)

// measure reads 0..n-1 through get and checks that i yields i. The check runs
// inside the timed loop; the error is built after the clock stops.
func measure(name string, n int, get getter) (Result, error) {
	bad, badVal, missing := -1, 0, false

	start := time.Now()
	for i := 0; i < n; i++ {
		v, ok := get(i)
		if (!ok || v != i) && bad < 0 {
			bad, badVal, missing = i, v, !ok
		}
	}
	elapsed := time.Since(start)
	if elapsed < 0 {
		elapsed = 0
	}

	res := Result{Name: name, Elapsed: elapsed, Ops: n}
	if bad >= 0 {
		if missing {
			return res, errors.AssertionFailedf("%s: no value at %d", name, bad)
		}
		return res, errors.AssertionFailedf("%s: read %d at %d", name, badVal, bad)
	}
	return res, nil
}
