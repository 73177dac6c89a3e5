// SPDX-License-Identifier: MIT

// Package pwbench classifies password lists by strength and benchmarks
// classic sorting algorithms over the result.
//
// The module is organised in layers, each usable on its own:
//
//	container/  Sequence (growable array), Chain (singly linked list) and
//	            HashMap (separate chaining over a Sequence of Chains)
//	classify/   rule-table strength labels plus a zxcvbn estimate
//	record/     the row type of each pipeline stage
//	sorting/    seven algorithms × three criteria over container.Sequence
//	pipeline/   classify → format → sort stages over CSV, with metrics
//	report/     console tables for the label tally and the timing matrix
//	config/     YAML + PWBENCH_* environment configuration
//	logging/    zap logger construction
//	cmd/pwbench the cobra CLI
//
// Everything runs on one goroutine. Sorting works in place through the
// containers' bounds-checked Get and Set, and every benchmark run sorts its
// own deep copy of the input.
//
// Quick start:
//
//	seq := container.NewSequence[record.Formatted]()
//	seq.Append(record.FormattedFromFields([]string{"1", "pw", "8", "05/04/2023", "fair"}))
//	if err := sorting.Sort(seq, sorting.Heap, sorting.ByMonth); err != nil {
//		// errors.Is(err, sorting.ErrMalformedField) for bad rows
//	}
package pwbench
