// SPDX-License-Identifier: MIT

package sorting

// heapSort builds a max-heap in place and repeatedly moves the root behind
// the shrinking heap.
func heapSort[R Record[R]](r *run[R]) {
	n := r.len()
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(r, n, i)
	}
	for end := n - 1; end > 0 && r.err == nil; end-- {
		r.swap(0, end)
		siftDown(r, end, 0)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i
// within the first n elements.
func siftDown[R Record[R]](r *run[R], n, i int) {
	for r.err == nil {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && r.compare(r.at(left), r.at(largest)) > 0 {
			largest = left
		}
		if right < n && r.compare(r.at(right), r.at(largest)) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		r.swap(i, largest)
		i = largest
	}
}
