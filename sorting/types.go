// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an unknown algorithm or criterion name, or a
	// pairing outside the compatibility table.
	ErrInvalidArgument = errors.New("sorting: invalid argument")

	// ErrMalformedField indicates a length or date field the criterion cannot parse.
	ErrMalformedField = errors.New("sorting: malformed field")
)

// Record is what the engine needs from a row. R is the concrete row type, so
// Clone returns the same type it is called on.
type Record[R any] interface {
	// LengthField is the password length as a decimal string.
	LengthField() string
	// DateField is a dd/mm/yyyy date.
	DateField() string
	// Clone returns a copy sharing no mutable state with the receiver.
	Clone() R
}

// Algorithm names a sorting algorithm.
type Algorithm string

// Supported algorithms, in benchmark order.
const (
	Insertion   Algorithm = "insertion"
	Selection   Algorithm = "selection"
	Merge       Algorithm = "merge"
	Quick       Algorithm = "quick"
	QuickMedian Algorithm = "quick-median"
	Counting    Algorithm = "counting"
	Heap        Algorithm = "heap"
)

// Criterion names a record ordering.
type Criterion string

// Supported criteria, in benchmark order.
const (
	ByLength   Criterion = "length"
	ByMonth    Criterion = "month"
	ByFullDate Criterion = "date"
)

// Algorithms returns every algorithm in benchmark order.
func Algorithms() []Algorithm {
	return []Algorithm{Insertion, Selection, Merge, Quick, QuickMedian, Counting, Heap}
}

// Criteria returns every criterion in benchmark order.
func Criteria() []Criterion {
	return []Criterion{ByLength, ByMonth, ByFullDate}
}

var algorithmAliases = map[string]Algorithm{
	"insertion":                 Insertion,
	"insertion-sort":            Insertion,
	"selection":                 Selection,
	"selection-sort":            Selection,
	"merge":                     Merge,
	"merge-sort":                Merge,
	"quick":                     Quick,
	"quicksort":                 Quick,
	"quick-median":              QuickMedian,
	"quickMedian":               QuickMedian,
	"quicksort-median-of-three": QuickMedian,
	"counting":                  Counting,
	"counting-sort":             Counting,
	"heap":                      Heap,
	"heap-sort":                 Heap,
}

var criterionAliases = map[string]Criterion{
	"length":       ByLength,
	"by-length":    ByLength,
	"month":        ByMonth,
	"by-month":     ByMonth,
	"date":         ByFullDate,
	"full-date":    ByFullDate,
	"by-full-date": ByFullDate,
}

// ParseAlgorithm resolves a canonical name or alias.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[name]; ok {
		return a, nil
	}

	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, name)
}

// ParseCriterion resolves a canonical name or alias.
func ParseCriterion(name string) (Criterion, error) {
	if c, ok := criterionAliases[name]; ok {
		return c, nil
	}

	return "", fmt.Errorf("%w: unknown criterion %q", ErrInvalidArgument, name)
}

// Compatible reports whether alg may run under crit.
func Compatible(alg Algorithm, crit Criterion) bool {
	if !crit.valid() {
		return false
	}
	switch alg {
	case Insertion, Selection, Merge, Quick, Heap:
		return true
	case QuickMedian:
		return crit != ByFullDate
	case Counting:
		return crit == ByLength
	default:
		return false
	}
}

// Stable reports whether alg preserves the input order of equal records.
func Stable(alg Algorithm) bool {
	switch alg {
	case Insertion, Merge, Counting:
		return true
	default:
		return false
	}
}

func (a Algorithm) valid() bool {
	switch a {
	case Insertion, Selection, Merge, Quick, QuickMedian, Counting, Heap:
		return true
	default:
		return false
	}
}

func (c Criterion) valid() bool {
	switch c {
	case ByLength, ByMonth, ByFullDate:
		return true
	default:
		return false
	}
}

// check applies the compatibility table.
func check(alg Algorithm, crit Criterion) error {
	if !crit.valid() {
		return fmt.Errorf("%w: unknown criterion %q", ErrInvalidArgument, crit)
	}
	if !alg.valid() {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, alg)
	}
	if !Compatible(alg, crit) {
		return fmt.Errorf("%w: %s sort does not support the %s criterion", ErrInvalidArgument, alg, crit)
	}

	return nil
}
