// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/pwbench/container"
)

// MaxCountingSpan bounds max-min+1 for counting sort, i.e. the number of
// buckets it allocates.
const MaxCountingSpan = 1 << 20

// countingRange returns the smallest and largest length in seq. It rejects
// negative lengths and ranges wider than MaxCountingSpan.
func countingRange[R Record[R]](seq *container.Sequence[R]) (lo, hi int, err error) {
	for i, rec := range seq.All() {
		l, err := lengthOf(rec)
		if err != nil {
			return 0, 0, fmt.Errorf("sorting: record %d: %w", i, err)
		}
		if l < 0 {
			return 0, 0, fmt.Errorf("sorting: record %d: %w: negative length %d", i, ErrMalformedField, l)
		}
		if i == 0 {
			lo, hi = l, l

			continue
		}
		lo = min(lo, l)
		hi = max(hi, l)
	}
	// both ends are non-negative, so hi-lo cannot overflow
	if hi-lo >= MaxCountingSpan {
		return 0, 0, fmt.Errorf("%w: counting sort over lengths %d..%d exceeds %d buckets",
			ErrInvalidArgument, lo, hi, MaxCountingSpan)
	}

	return lo, hi, nil
}

// countingSort distributes records into one Chain per length in [min, max]
// and writes the chains back in ascending order. Chains are FIFO, so records
// of equal length keep their input order.
func countingSort[R Record[R]](r *run[R]) {
	n := r.len()
	if n == 0 {
		return
	}
	lo, hi, err := countingRange(r.seq)
	if err != nil {
		r.err = err

		return
	}

	buckets := make([]*container.Chain[R], hi-lo+1)
	for i := range buckets {
		buckets[i] = container.NewChain[R]()
	}
	for i := 0; i < n; i++ {
		rec := r.at(i)
		l, err := lengthOf(rec)
		if err != nil {
			r.err = err

			return
		}
		buckets[l-lo].Append(rec)
	}

	k := 0
	for _, b := range buckets {
		for v := range b.All() {
			r.put(k, v)
			k++
		}
	}
}
