// SPDX-License-Identifier: MIT

package container

import "iter"

// Sequence is a growable array. The backing store always has len == capacity;
// only the first size slots hold live elements.
//
// Invariant: 0 <= size <= len(data).
type Sequence[T any] struct {
	data []T
	size int
}

// NewSequence returns an empty Sequence with DefaultCapacity slots
// (or the capacity given via WithCapacity).
// Complexity: O(capacity).
func NewSequence[T any](opts ...SequenceOption) *Sequence[T] {
	cfg := sequenceConfig{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sequence[T]{data: make([]T, cfg.capacity)}
}

// Append adds v at the end. When the backing store is full it is reallocated
// at twice its size and the live elements are copied over in order.
// Complexity: amortized O(1).
func (s *Sequence[T]) Append(v T) {
	if s.size == len(s.data) {
		s.grow()
	}
	s.data[s.size] = v
	s.size++
}

// Get returns the element at index i.
func (s *Sequence[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.size {
		var zero T

		return zero, rangeErrorf("Get", i, s.size)
	}

	return s.data[i], nil
}

// Set replaces the element at index i.
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.size {
		return rangeErrorf("Set", i, s.size)
	}
	s.data[i] = v

	return nil
}

// Swap exchanges the elements at indices i and j.
func (s *Sequence[T]) Swap(i, j int) error {
	if i < 0 || i >= s.size {
		return rangeErrorf("Swap", i, s.size)
	}
	if j < 0 || j >= s.size {
		return rangeErrorf("Swap", j, s.size)
	}
	s.data[i], s.data[j] = s.data[j], s.data[i]

	return nil
}

// RemoveAt deletes the element at index i, shifting every later element one
// slot to the left. Capacity is unchanged.
// Complexity: O(size - i).
func (s *Sequence[T]) RemoveAt(i int) error {
	if i < 0 || i >= s.size {
		return rangeErrorf("RemoveAt", i, s.size)
	}
	copy(s.data[i:s.size-1], s.data[i+1:s.size])
	s.size--
	// drop the stale reference held in the vacated slot
	var zero T
	s.data[s.size] = zero

	return nil
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int { return s.size }

// Cap returns the size of the backing store.
func (s *Sequence[T]) Cap() int { return len(s.data) }

// IsEmpty reports whether the sequence holds no elements.
func (s *Sequence[T]) IsEmpty() bool { return s.size == 0 }

// ToSlice returns a freshly allocated slice with the live elements in order.
// Mutating the result never affects the Sequence. Elements themselves are
// copied by value; pointer elements still share their targets.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, s.size)
	copy(out, s.data[:s.size])

	return out
}

// All yields (index, value) pairs from the front. Mutating the sequence while
// ranging over it is not supported.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// grow doubles the backing store.
func (s *Sequence[T]) grow() {
	next := make([]T, 2*len(s.data))
	copy(next, s.data[:s.size])
	s.data = next
}
