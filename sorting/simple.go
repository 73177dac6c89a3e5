// SPDX-License-Identifier: MIT

package sorting

// insertionSort shifts each element left past every strictly greater
// predecessor. Equal elements never cross, so the sort is stable.
func insertionSort[R Record[R]](r *run[R]) {
	for i := 1; i < r.len(); i++ {
		key := r.at(i)
		j := i - 1
		for j >= 0 && r.compare(r.at(j), key) > 0 {
			r.put(j+1, r.at(j))
			j--
		}
		r.put(j+1, key)
	}
}

// selectionSort swaps the minimum of the unsorted suffix into place.
// The long-distance swap makes it unstable.
func selectionSort[R Record[R]](r *run[R]) {
	n := r.len()
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if r.compare(r.at(j), r.at(minIdx)) < 0 {
				minIdx = j
			}
		}
		if minIdx != i {
			r.swap(i, minIdx)
		}
	}
}
