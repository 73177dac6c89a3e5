// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/pipeline"
	"github.com/katalvlaran/pwbench/record"
	"github.com/katalvlaran/pwbench/sorting"
)

func formattedRows(t *testing.T) *container.Sequence[record.Formatted] {
	t.Helper()
	seq := container.NewSequence[record.Formatted]()
	for _, f := range [][]string{
		{"1", "a", "12", "15/07/2021", "fair"},
		{"2", "b", "4", "02/01/2023", "good"},
		{"3", "c", "9", "30/12/2019", "weak"},
		{"4", "d", "10", "01/03/2021", "very good"},
	} {
		seq.Append(record.FormattedFromFields(f))
	}

	return seq
}

func idsOf(seq *container.Sequence[record.Formatted]) []string {
	out := make([]string, 0, seq.Len())
	for _, r := range seq.All() {
		out = append(out, r.ID)
	}

	return out
}

// TestPrepare checks each scenario's arrangement and that the input is untouched.
func TestPrepare(t *testing.T) {
	rows := formattedRows(t)

	best, err := pipeline.Prepare(rows, sorting.ByLength, pipeline.Best)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4", "1"}, idsOf(best))

	avg, err := pipeline.Prepare(rows, sorting.ByLength, pipeline.Average)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(avg))

	worst, err := pipeline.Prepare(rows, sorting.ByLength, pipeline.Worst)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "3", "2"}, idsOf(worst))

	byDate, err := pipeline.Prepare(rows, sorting.ByFullDate, pipeline.Best)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "1", "2"}, idsOf(byDate))

	assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(rows))

	for n := 0; n <= 1; n++ {
		small := container.NewSequence[record.Formatted]()
		for i := 0; i < n; i++ {
			small.Append(record.FormattedFromFields([]string{"9", "z", "1", "01/01/2020", "fair"}))
		}
		w, err := pipeline.Prepare(small, sorting.ByLength, pipeline.Worst)
		require.NoError(t, err)
		assert.Equal(t, n, w.Len())
	}

	_, err = pipeline.Prepare(rows, sorting.ByLength, pipeline.Scenario("typical"))
	assert.ErrorIs(t, err, pipeline.ErrOptionViolation)
}

// TestOutputName pins the run file naming.
func TestOutputName(t *testing.T) {
	assert.Equal(t, "passwords_month_quick-median_worst.csv",
		pipeline.OutputName(sorting.ByMonth, sorting.QuickMedian, pipeline.Worst))
	assert.Equal(t, "passwords_length_counting_best.csv",
		pipeline.OutputName(sorting.ByLength, sorting.Counting, pipeline.Best))
}

// TestSort_AllRuns checks every compatible pair runs once per scenario and
// every output is sorted.
func TestSort_AllRuns(t *testing.T) {
	out := memSink{}
	results, err := mustNew(t).Sort(strings.NewReader(formattedCSV), out.sink())
	require.NoError(t, err)

	assert.Len(t, results, 18*3)
	assert.Len(t, out, 18*3)

	want := map[sorting.Criterion][]string{
		sorting.ByLength:   {"2", "3", "4", "1"},
		sorting.ByMonth:    {"2", "4", "1", "3"},
		sorting.ByFullDate: {"3", "4", "1", "2"},
	}
	for _, r := range results {
		assert.True(t, sorting.Compatible(r.Algorithm, r.Criterion))
		assert.Equal(t, 4, r.Records)
		buf, ok := out[r.File]
		require.True(t, ok, r.File)
		assert.Equal(t, want[r.Criterion], column(t, buf.String(), 0), r.File)
	}
}

// TestSort_Selection checks option filtering and metric recording.
func TestSort_Selection(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := pipeline.NewMetrics(reg)
	p := mustNew(t,
		pipeline.WithMetrics(m),
		pipeline.WithCriteria("length"),
		pipeline.WithAlgorithms("heap", "counting"))
	out := memSink{}

	results, err := p.Sort(strings.NewReader(formattedCSV), out.sink())
	require.NoError(t, err)
	require.Len(t, results, 6)
	for _, name := range []string{
		"passwords_length_heap_best.csv",
		"passwords_length_heap_average.csv",
		"passwords_length_heap_worst.csv",
		"passwords_length_counting_best.csv",
		"passwords_length_counting_average.csv",
		"passwords_length_counting_worst.csv",
	} {
		assert.Contains(t, out, name)
	}

	assert.Equal(t, 6, testutil.CollectAndCount(m.SortDuration))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Records.WithLabelValues(pipeline.StageSort)))
}

// TestSort_IncompatibleOnly checks an all-incompatible selection runs nothing.
func TestSort_IncompatibleOnly(t *testing.T) {
	p := mustNew(t, pipeline.WithCriteria("month", "date"), pipeline.WithAlgorithms("counting"))
	out := memSink{}

	results, err := p.Sort(strings.NewReader(formattedCSV), out.sink())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, out)
}

// TestSort_MalformedField checks a bad length aborts the stage.
func TestSort_MalformedField(t *testing.T) {
	in := formattedCSV + "5,e,many,01/01/2020,fair\n"
	p := mustNew(t, pipeline.WithCriteria("length"), pipeline.WithScenarios("average"))

	_, err := p.Sort(strings.NewReader(in), memSink{}.sink())
	assert.ErrorIs(t, err, sorting.ErrMalformedField)
}

// TestNew_InvalidOptions checks unknown names are reported by New.
func TestNew_InvalidOptions(t *testing.T) {
	for _, opt := range []pipeline.Option{
		pipeline.WithAlgorithms("bogo"),
		pipeline.WithCriteria("weekday"),
		pipeline.WithScenarios("typical"),
	} {
		_, err := pipeline.New(opt)
		assert.ErrorIs(t, err, pipeline.ErrOptionViolation)
	}
}
