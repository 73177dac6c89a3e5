// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/pwbench/container"

// run is the state of one in-place sort: the sequence being sorted, the
// comparison, and the first error seen. Once err is set every accessor turns
// into a no-op, so algorithms can be written without per-step error checks
// and the caller inspects err once at the end.
type run[R Record[R]] struct {
	seq *container.Sequence[R]
	cmp func(a, b R) (int, error)
	err error
}

// sub returns a run over another sequence sharing the comparison.
func (r *run[R]) sub(seq *container.Sequence[R]) *run[R] {
	return &run[R]{seq: seq, cmp: r.cmp}
}

func (r *run[R]) at(i int) R {
	if r.err != nil {
		var zero R

		return zero
	}
	v, err := r.seq.Get(i)
	if err != nil {
		r.err = err
	}

	return v
}

func (r *run[R]) put(i int, v R) {
	if r.err != nil {
		return
	}
	if err := r.seq.Set(i, v); err != nil {
		r.err = err
	}
}

func (r *run[R]) swap(i, j int) {
	if r.err != nil {
		return
	}
	if err := r.seq.Swap(i, j); err != nil {
		r.err = err
	}
}

// compare returns 0 once an error has been recorded; the surrounding loops
// then run to completion without moving anything that matters.
func (r *run[R]) compare(a, b R) int {
	if r.err != nil {
		return 0
	}
	c, err := r.cmp(a, b)
	if err != nil {
		r.err = err

		return 0
	}

	return c
}

func (r *run[R]) len() int { return r.seq.Len() }
