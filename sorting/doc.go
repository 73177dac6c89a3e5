// SPDX-License-Identifier: MIT

// Package sorting runs seven classic comparison and distribution sorts over a
// container.Sequence of records, under one of three criteria.
//
// Criteria (total orders over records):
//
//	length  numeric order of the length field
//	month   numeric order of the month in a dd/mm/yyyy date
//	date    lexicographic order of yyyy+mm+dd rebuilt from the same date
//
// Algorithms:
//
//	insertion     stable    O(n²), O(n) on nearly sorted input
//	selection     unstable  O(n²)
//	merge         stable    O(n log n), two temporary sequences per level
//	quick         unstable  Lomuto partition, last element as pivot, O(n²) worst
//	quick-median  unstable  median of first/middle/last moved to the end, then Lomuto
//	counting      stable    length criterion only, one Chain bucket per length
//	heap          unstable  O(n log n)
//
// Compatibility: counting accepts only the length criterion; quick-median
// accepts every criterion except date. Any other pairing, or an unknown name,
// yields ErrInvalidArgument before the sequence is touched. Every record is
// also checked against the criterion up front, so a malformed length or date
// (ErrMalformedField) is reported without partial mutation.
//
// Sort works in place. Benchmarks that run several algorithms over the same
// input must hand each run its own DeepCopy.
//
// Usage:
//
//	cp := sorting.DeepCopy(rows)
//	if err := sorting.SortByName(cp, "heap", "month"); err != nil {
//		// errors.Is(err, sorting.ErrInvalidArgument) / ErrMalformedField
//	}
package sorting
