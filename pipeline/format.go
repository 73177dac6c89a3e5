// SPDX-License-Identifier: MIT

package pipeline

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pwbench/classify"
	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/record"
)

// Date layouts of the raw list and of every formatted file.
const (
	InputDateLayout  = "2006-01-02 15:04:05"
	OutputDateLayout = "02/01/2006"
)

// minFormatColumns is the row width the format stage requires.
const minFormatColumns = record.ColClass + 1

// FormatDate rewrites a yyyy-mm-dd HH:MM:SS timestamp as dd/mm/yyyy.
// It returns the input unchanged and false if the timestamp does not parse.
func FormatDate(s string) (string, bool) {
	t, err := time.Parse(InputDateLayout, s)
	if err != nil {
		return s, false
	}

	return t.Format(OutputDateLayout), true
}

// Format reads the classify stage output from r, rewrites every date and
// writes the full table to formatted and the good / very good rows to strong.
// Rows with fewer than five fields or labelled classify.ProcessingError are
// skipped.
func (p *Pipeline) Format(r io.Reader, formatted, strong io.Writer) (*FormatResult, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	res := &FormatResult{
		Header:    header,
		Formatted: container.NewSequence[record.Formatted](),
		Strong:    container.NewSequence[record.Formatted](),
	}

	for i, fields := range rows.All() {
		if len(fields) < minFormatColumns {
			res.Skipped++
			p.log.Warn("skipping short row", zap.Int("row", i+1), zap.Int("fields", len(fields)))

			continue
		}

		row := record.FormattedFromFields(fields)
		if row.Class == classify.ProcessingError {
			res.Skipped++
			p.log.Warn("skipping unclassified row", zap.Int("row", i+1), zap.String("id", row.ID))

			continue
		}
		date, ok := FormatDate(row.Date)
		if !ok {
			res.BadDates++
			p.log.Warn("date kept verbatim", zap.Int("row", i+1), zap.String("date", row.Date))
		}
		row.Date = date

		res.Formatted.Append(row)
		if classify.Strong(row.Class) {
			res.Strong.Append(row)
		}
	}

	if err := writeTable(formatted, header, fieldsOf(res.Formatted)); err != nil {
		return nil, err
	}
	if err := writeTable(strong, header, fieldsOf(res.Strong)); err != nil {
		return nil, err
	}

	p.opts.Metrics.addRecords(StageFormat, res.Formatted.Len())
	p.log.Info("format stage done",
		zap.Int("formatted", res.Formatted.Len()),
		zap.Int("strong", res.Strong.Len()),
		zap.Int("skipped", res.Skipped),
		zap.Int("bad_dates", res.BadDates))

	return res, nil
}
