// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/record"
	"github.com/katalvlaran/pwbench/sorting"
)

// Sink opens the destination of one sort run's output.
type Sink func(name string) (io.WriteCloser, error)

// DirSink creates (or truncates) files under dir.
func DirSink(dir string) Sink {
	return func(name string) (io.WriteCloser, error) {
		return os.Create(filepath.Join(dir, name))
	}
}

// OutputName is the file name of a sort run.
func OutputName(crit sorting.Criterion, alg sorting.Algorithm, sc Scenario) string {
	return fmt.Sprintf("passwords_%s_%s_%s.csv", crit, alg, sc)
}

// Sort reads the format stage output from r and performs every configured
// run whose algorithm supports the criterion. Each run sorts a fresh copy
// prepared for its scenario, and only the sort call is timed. Results are
// returned in run order; on error the runs completed so far are returned
// with it.
func (p *Pipeline) Sort(r io.Reader, sink Sink) ([]Result, error) {
	header, raw, err := readTable(r)
	if err != nil {
		return nil, err
	}

	rows := container.NewSequence[record.Formatted]()
	for i, fields := range raw.All() {
		if len(fields) < minFormatColumns {
			p.log.Warn("skipping short row", zap.Int("row", i+1), zap.Int("fields", len(fields)))

			continue
		}
		rows.Append(record.FormattedFromFields(fields))
	}
	p.opts.Metrics.addRecords(StageSort, rows.Len())

	var results []Result
	for _, crit := range p.opts.Criteria {
		for _, alg := range p.opts.Algorithms {
			if !sorting.Compatible(alg, crit) {
				p.log.Debug("skipping incompatible pair",
					zap.String("algorithm", string(alg)), zap.String("criterion", string(crit)))

				continue
			}
			for _, sc := range p.opts.Scenarios {
				res, err := p.sortRun(rows, header, alg, crit, sc, sink)
				if err != nil {
					return results, err
				}
				results = append(results, res)
			}
		}
	}

	p.log.Info("sort stage done", zap.Int("records", rows.Len()), zap.Int("runs", len(results)))

	return results, nil
}

func (p *Pipeline) sortRun(
	rows *container.Sequence[record.Formatted],
	header []string,
	alg sorting.Algorithm,
	crit sorting.Criterion,
	sc Scenario,
	sink Sink,
) (Result, error) {
	res := Result{Criterion: crit, Algorithm: alg, Scenario: sc, Records: rows.Len(), File: OutputName(crit, alg, sc)}

	input, err := Prepare(rows, crit, sc)
	if err != nil {
		return res, err
	}

	start := time.Now()
	err = sorting.Sort(input, alg, crit)
	res.Duration = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("pipeline: %s by %s (%s): %w", alg, crit, sc, err)
	}

	w, err := sink(res.File)
	if err != nil {
		return res, fmt.Errorf("pipeline: open %s: %w", res.File, err)
	}
	if err := writeTable(w, header, fieldsOf(input)); err != nil {
		_ = w.Close()

		return res, err
	}
	if err := w.Close(); err != nil {
		return res, fmt.Errorf("pipeline: close %s: %w", res.File, err)
	}

	p.opts.Metrics.observeSort(res)
	p.log.Info("sort run",
		zap.String("criterion", string(crit)),
		zap.String("algorithm", string(alg)),
		zap.String("scenario", string(sc)),
		zap.Int("records", res.Records),
		zap.Duration("elapsed", res.Duration),
		zap.String("file", res.File))

	return res, nil
}
