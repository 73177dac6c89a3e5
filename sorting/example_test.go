// SPDX-License-Identifier: MIT

package sorting_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/record"
	"github.com/katalvlaran/pwbench/sorting"
)

func ExampleSortByName() {
	rows := container.NewSequence[record.Formatted]()
	rows.Append(record.FormattedFromFields([]string{"1", "Ab1!Ab1!x", "9", "05/04/2023", "very good"}))
	rows.Append(record.FormattedFromFields([]string{"2", "ab", "2", "17/11/2022", "very weak"}))
	rows.Append(record.FormattedFromFields([]string{"3", "ab12", "4", "01/01/2024", "fair"}))

	byLength := sorting.DeepCopy(rows)
	_ = sorting.SortByName(byLength, "counting", "length")
	for _, r := range byLength.All() {
		fmt.Println(r.ID, r.Length)
	}

	err := sorting.SortByName(rows, "counting", "month")
	fmt.Println(errors.Is(err, sorting.ErrInvalidArgument))
	// Output:
	// 2 2
	// 3 4
	// 1 9
	// true
}
