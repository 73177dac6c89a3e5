// SPDX-License-Identifier: MIT

package sorting

// quickSort sorts [low, high] with the last element as pivot.
// Already ordered or reverse ordered input degrades to O(n²) time and
// O(n) recursion depth.
func quickSort[R Record[R]](r *run[R], low, high int) {
	if low < high && r.err == nil {
		p := partition(r, low, high)
		quickSort(r, low, p-1)
		quickSort(r, p+1, high)
	}
}

// quickSortMedian sorts [low, high] choosing the median of the first, middle
// and last elements as pivot.
func quickSortMedian[R Record[R]](r *run[R], low, high int) {
	if low < high && r.err == nil {
		p := partitionMedian(r, low, high)
		quickSortMedian(r, low, p-1)
		quickSortMedian(r, p+1, high)
	}
}

// partition is the Lomuto scheme over [low, high] with pivot at high.
// It returns the pivot's final index.
func partition[R Record[R]](r *run[R], low, high int) int {
	pivot := r.at(high)
	i := low - 1
	for j := low; j < high; j++ {
		if r.compare(r.at(j), pivot) <= 0 {
			i++
			r.swap(i, j)
		}
	}
	r.swap(i+1, high)

	return i + 1
}

// partitionMedian moves the median of three to high and delegates to
// partition. The median is tracked by index, so duplicate-valued records
// cannot be mistaken for the chosen pivot.
func partitionMedian[R Record[R]](r *run[R], low, high int) int {
	mid := low + (high-low)/2
	a, b, c := r.at(low), r.at(mid), r.at(high)

	var pivot int
	if r.compare(a, b) < 0 {
		switch {
		case r.compare(b, c) < 0:
			pivot = mid
		case r.compare(a, c) < 0:
			pivot = high
		default:
			pivot = low
		}
	} else {
		switch {
		case r.compare(a, c) < 0:
			pivot = low
		case r.compare(b, c) < 0:
			pivot = high
		default:
			pivot = mid
		}
	}
	if pivot != high {
		r.swap(pivot, high)
	}

	return partition(r, low, high)
}
