// SPDX-License-Identifier: MIT

package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/katalvlaran/pwbench/container"
)

// readTable reads a header row followed by data rows. Rows may have any
// number of fields; callers decide what to do with short ones.
func readTable(r io.Reader) ([]string, *container.Sequence[[]string], error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyInput
	}
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: read header: %w", err)
	}

	rows := container.NewSequence[[]string]()
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("pipeline: read row %d: %w", rows.Len()+1, err)
		}
		rows.Append(fields)
	}

	return header, rows, nil
}

// writeTable writes header then every row and flushes.
func writeTable(w io.Writer, header []string, rows iter.Seq[[]string]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("pipeline: write header: %w", err)
	}
	for fields := range rows {
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("pipeline: write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// fieldsOf adapts a sequence of records to the row iterator writeTable takes.
func fieldsOf[T interface{ Fields() []string }](seq *container.Sequence[T]) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, v := range seq.All() {
			if !yield(v.Fields()) {
				return
			}
		}
	}
}

// values yields every element of seq in order.
func values[T any](seq *container.Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range seq.All() {
			if !yield(v) {
				return
			}
		}
	}
}
