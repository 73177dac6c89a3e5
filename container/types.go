// SPDX-License-Identifier: MIT

package container

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the initial backing-store size of a new Sequence.
const DefaultCapacity = 10

// DefaultBuckets is the fixed bucket count of a new HashMap.
const DefaultBuckets = 16

// ErrOutOfRange indicates an index outside [0, Len()) on any container accessor.
var ErrOutOfRange = errors.New("container: index out of range")

// rangeErrorf attaches the offending index and current size to ErrOutOfRange.
func rangeErrorf(method string, index, size int) error {
	return fmt.Errorf("%s(%d) with size %d: %w", method, index, size, ErrOutOfRange)
}

// SequenceOption configures a Sequence at construction time.
type SequenceOption func(*sequenceConfig)

type sequenceConfig struct {
	capacity int
}

// WithCapacity sets the initial backing-store size. It panics if n <= 0.
func WithCapacity(n int) SequenceOption {
	if n <= 0 {
		panic(fmt.Sprintf("container: WithCapacity(%d): capacity must be positive", n))
	}

	return func(c *sequenceConfig) { c.capacity = n }
}

// MapOption configures a HashMap at construction time.
type MapOption func(*mapConfig)

type mapConfig struct {
	buckets int
}

// WithBuckets sets the fixed bucket count. It panics if n <= 0.
func WithBuckets(n int) MapOption {
	if n <= 0 {
		panic(fmt.Sprintf("container: WithBuckets(%d): bucket count must be positive", n))
	}

	return func(c *mapConfig) { c.buckets = n }
}

// Hasher maps a key to its 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64
