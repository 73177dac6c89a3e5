// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/pwbench/container"
)

// Sort orders seq in place with alg under crit.
//
// Errors (nothing is mutated when any of these is returned):
//   - ErrInvalidArgument: unknown alg/crit or an incompatible pair.
//   - ErrMalformedField: some record's length/date does not parse under crit,
//     or a length is negative for counting sort.
//   - ErrInvalidArgument is also returned when the lengths span more than
//     MaxCountingSpan values for counting sort.
func Sort[R Record[R]](seq *container.Sequence[R], alg Algorithm, crit Criterion) error {
	if err := check(alg, crit); err != nil {
		return err
	}
	if err := Validate(seq, crit); err != nil {
		return err
	}
	if alg == Counting {
		if _, _, err := countingRange(seq); err != nil {
			return err
		}
	}

	r := &run[R]{seq: seq, cmp: comparator[R](crit)}
	switch alg {
	case Insertion:
		insertionSort(r)
	case Selection:
		selectionSort(r)
	case Merge:
		mergeSort(r)
	case Quick:
		quickSort(r, 0, r.len()-1)
	case QuickMedian:
		quickSortMedian(r, 0, r.len()-1)
	case Counting:
		countingSort(r)
	case Heap:
		heapSort(r)
	}
	if r.err != nil {
		return fmt.Errorf("sorting: %s by %s: %w", alg, crit, r.err)
	}

	return nil
}

// SortByName resolves algName and critName (canonical names or aliases) and
// calls Sort.
func SortByName[R Record[R]](seq *container.Sequence[R], algName, critName string) error {
	alg, err := ParseAlgorithm(algName)
	if err != nil {
		return err
	}
	crit, err := ParseCriterion(critName)
	if err != nil {
		return err
	}

	return Sort(seq, alg, crit)
}

// Validate checks that every record of seq yields a key under crit.
func Validate[R Record[R]](seq *container.Sequence[R], crit Criterion) error {
	if !crit.valid() {
		return fmt.Errorf("%w: unknown criterion %q", ErrInvalidArgument, crit)
	}
	for i, rec := range seq.All() {
		var err error
		switch crit {
		case ByLength:
			_, err = lengthOf(rec)
		case ByMonth:
			_, err = monthOf(rec)
		case ByFullDate:
			_, err = fullDateOf(rec)
		}
		if err != nil {
			return fmt.Errorf("sorting: record %d: %w", i, err)
		}
	}

	return nil
}

// DeepCopy returns a new sequence holding a Clone of every element of seq.
func DeepCopy[R Record[R]](seq *container.Sequence[R]) *container.Sequence[R] {
	out := container.NewSequence[R](container.WithCapacity(max(seq.Len(), container.DefaultCapacity)))
	for _, rec := range seq.All() {
		out.Append(rec.Clone())
	}

	return out
}

// IsSorted reports whether seq is non-decreasing under crit.
func IsSorted[R Record[R]](seq *container.Sequence[R], crit Criterion) (bool, error) {
	if err := Validate(seq, crit); err != nil {
		return false, err
	}
	cmpFn := comparator[R](crit)
	var prev R
	for i, rec := range seq.All() {
		if i > 0 {
			if c, _ := cmpFn(prev, rec); c > 0 {
				return false, nil
			}
		}
		prev = rec
	}

	return true, nil
}
