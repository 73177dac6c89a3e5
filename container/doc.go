// SPDX-License-Identifier: MIT

// Package container provides the three generic collections the rest of pwbench
// is built on:
//
//	Sequence[T]   growable array with random access (amortized O(1) Append)
//	Chain[T]      append-only singly linked list, forward iteration only
//	HashMap[K,V]  separate-chaining map: a Sequence of Chain buckets
//
// The containers are deliberately plain. They are not safe for concurrent use,
// and they keep the textbook costs that callers and tests rely on:
//
//   - Sequence doubles its backing store when full and never shrinks it.
//   - Chain.Append walks from the head to the tail, O(n) per call.
//   - HashMap has a fixed bucket count (16 by default) and never rehashes.
//
// Index-based accessors never panic and never clamp: an index outside
// [0, Len()) yields ErrOutOfRange.
//
// Quick example:
//
//	s := container.NewSequence[string]()
//	s.Append("a")
//	v, err := s.Get(0) // "a", nil
//
//	counts := container.NewStringMap[int]()
//	n, _ := counts.Get("weak")
//	counts.Put("weak", n+1)
package container
