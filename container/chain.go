// SPDX-License-Identifier: MIT

package container

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// Chain is a singly linked list that only grows at the tail.
// It serves as the collision bucket of HashMap and as the bucket type of
// counting sort, both of which depend on FIFO order within a bucket.
type Chain[T any] struct {
	head *node[T]
	size int
}

// NewChain returns an empty Chain.
func NewChain[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Append links v after the current tail.
// There is no tail pointer: the walk from head to tail makes this O(n).
func (c *Chain[T]) Append(v T) {
	n := &node[T]{value: v}
	if c.head == nil {
		c.head = n
	} else {
		cur := c.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	c.size++
}

// Get returns the value at position i. Complexity: O(i).
func (c *Chain[T]) Get(i int) (T, error) {
	if i < 0 || i >= c.size {
		var zero T

		return zero, rangeErrorf("Get", i, c.size)
	}
	cur := c.head
	for k := 0; k < i; k++ {
		cur = cur.next
	}

	return cur.value, nil
}

// RemoveAt unlinks the node at position i.
// Complexity: O(1) for the head, O(i) otherwise.
func (c *Chain[T]) RemoveAt(i int) error {
	if i < 0 || i >= c.size {
		return rangeErrorf("RemoveAt", i, c.size)
	}
	if i == 0 {
		c.head = c.head.next
	} else {
		prev := c.head
		for k := 0; k < i-1; k++ {
			prev = prev.next
		}
		prev.next = prev.next.next
	}
	c.size--

	return nil
}

// Len returns the number of nodes.
func (c *Chain[T]) Len() int { return c.size }

// IsEmpty reports whether the chain has no nodes.
func (c *Chain[T]) IsEmpty() bool { return c.size == 0 }

// All yields the values from head to tail. The walk starts from the head
// current at the moment iteration begins; each call to All is a fresh pass.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := c.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}
