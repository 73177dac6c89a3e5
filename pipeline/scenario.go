// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/sorting"
)

// Prepare returns a deep copy of rows arranged for scenario sc under crit.
// rows itself is never modified.
func Prepare[R sorting.Record[R]](rows *container.Sequence[R], crit sorting.Criterion, sc Scenario) (*container.Sequence[R], error) {
	cp := sorting.DeepCopy(rows)
	switch sc {
	case Average:
		return cp, nil
	case Best, Worst:
		if err := sorting.Sort(cp, sorting.Merge, crit); err != nil {
			return nil, fmt.Errorf("pipeline: prepare %s scenario: %w", sc, err)
		}
		if sc == Worst {
			if err := reverse(cp); err != nil {
				return nil, fmt.Errorf("pipeline: prepare %s scenario: %w", sc, err)
			}
		}

		return cp, nil
	default:
		return nil, fmt.Errorf("%w: unknown scenario %q", ErrOptionViolation, sc)
	}
}

// reverse flips seq in place.
func reverse[T any](seq *container.Sequence[T]) error {
	for i, j := 0, seq.Len()-1; i < j; i, j = i+1, j-1 {
		if err := seq.Swap(i, j); err != nil {
			return err
		}
	}

	return nil
}
