// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pwbench/pipeline"
)

const rawCSV = `id,password,length,date
1,ab,2,2023-04-05 10:11:12
2,Ab1!Ab1!x,9,2021-12-31 23:59:59
3,ab12,4,2020-01-15 08:00:00
4,Ab1!,4,not a date
5,xy
6,Ab1!Ab1,7,2019-07-04 12:00:00
`

const formattedCSV = `id,password,length,date,class
1,a,12,15/07/2021,fair
2,b,4,02/01/2023,good
3,c,9,30/12/2019,weak
4,d,10,01/03/2021,very good
`

// memSink collects sort run output in memory.
type memSink map[string]*bytes.Buffer

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func (m memSink) sink() pipeline.Sink {
	return func(name string) (io.WriteCloser, error) {
		b := &bytes.Buffer{}
		m[name] = b

		return nopCloser{b}, nil
	}
}

// dataRows parses a CSV document and returns every row after the header.
// Rows may differ in width.
func dataRows(t *testing.T, doc string) [][]string {
	t.Helper()
	cr := csv.NewReader(strings.NewReader(doc))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	return rows[1:]
}

// column returns column col of every data row of a CSV document.
func column(t *testing.T, doc string, col int) []string {
	t.Helper()
	rows := dataRows(t, doc)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		require.Greater(t, len(r), col)
		out = append(out, r[col])
	}

	return out
}

// lastColumn returns the final field of every data row of a CSV document.
func lastColumn(t *testing.T, doc string) []string {
	t.Helper()
	rows := dataRows(t, doc)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r[len(r)-1])
	}

	return out
}

func mustNew(t *testing.T, opts ...pipeline.Option) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New(opts...)
	require.NoError(t, err)

	return p
}
