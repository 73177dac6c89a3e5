// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/pwbench/container"

// mergeSort splits the sequence into two freshly allocated halves, sorts each
// recursively and merges them back. Ties take the left element first, which
// keeps the sort stable.
func mergeSort[R Record[R]](r *run[R]) {
	n := r.len()
	if n <= 1 {
		return
	}
	mid := n / 2
	left := container.NewSequence[R]()
	for i := 0; i < mid; i++ {
		left.Append(r.at(i))
	}
	right := container.NewSequence[R]()
	for i := mid; i < n; i++ {
		right.Append(r.at(i))
	}

	for _, half := range []*container.Sequence[R]{left, right} {
		child := r.sub(half)
		mergeSort(child)
		if child.err != nil {
			r.err = child.err

			return
		}
	}
	merge(r, r.sub(left), r.sub(right))
}

// merge writes the ordered union of left and right into r from index 0.
func merge[R Record[R]](r, left, right *run[R]) {
	i, j, k := 0, 0, 0
	for i < left.len() && j < right.len() {
		if r.compare(left.at(i), right.at(j)) <= 0 {
			r.put(k, left.at(i))
			i++
		} else {
			r.put(k, right.at(j))
			j++
		}
		k++
	}
	for ; i < left.len(); i, k = i+1, k+1 {
		r.put(k, left.at(i))
	}
	for ; j < right.len(); j, k = j+1, k+1 {
		r.put(k, right.at(j))
	}
}
