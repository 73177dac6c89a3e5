// SPDX-License-Identifier: MIT

package pipeline

import (
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/pwbench/classify"
	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/record"
)

// ClassifyColumn is the header appended by the classify stage.
const ClassifyColumn = "class"

// Classify reads the raw password list from r, labels every row and writes the
// labelled table to w. Every row is written at its input width plus the label,
// so rows without a date stay too short for the format stage. Rows with fewer
// than record.MinRawColumns fields are labelled classify.ProcessingError.
func (p *Pipeline) Classify(r io.Reader, w io.Writer) (*ClassifyResult, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	res := &ClassifyResult{
		Header: append(append([]string(nil), header...), ClassifyColumn),
		Rows:   container.NewSequence[record.Classified](container.WithCapacity(max(rows.Len(), 1))),
		Tally:  container.NewStringMap[Tally](),
	}
	out := container.NewSequence[[]string](container.WithCapacity(max(rows.Len(), 1)))

	for i, fields := range rows.All() {
		row := record.Classified{Raw: record.RawFromFields(fields)}
		if len(fields) < record.MinRawColumns {
			row.Class = classify.ProcessingError
			res.Failed++
			p.log.Warn("row too short to classify",
				zap.Int("row", i+1), zap.Int("fields", len(fields)))
		} else {
			pw := strings.TrimSpace(row.Password)
			f := classify.Analyze(pw)
			row.Class = classify.ClassifyFeatures(f)
			res.Processed++
			p.log.Debug("classified",
				zap.String("id", row.ID),
				zap.Int("length", f.Length),
				zap.Int("types", f.Types()),
				zap.String("class", string(row.Class)))
		}
		p.tally(res.Tally, row)
		res.Rows.Append(row)
		out.Append(append(slices.Clip(fields), string(row.Class)))
	}

	if err := writeTable(w, res.Header, values(out)); err != nil {
		return nil, err
	}

	p.opts.Metrics.addRecords(StageClassify, res.Rows.Len())
	p.log.Info("classify stage done",
		zap.Int("processed", res.Processed),
		zap.Int("failed", res.Failed),
		zap.Int("labels", res.Tally.Len()))

	return res, nil
}

func (p *Pipeline) tally(m *container.HashMap[string, Tally], row record.Classified) {
	t, _ := m.Get(string(row.Class))
	t.Count++
	if p.opts.Estimates && row.Class != classify.ProcessingError {
		t.ScoreSum += classify.EstimateStrength(strings.TrimSpace(row.Password)).Score
		t.Scored++
	}
	m.Put(string(row.Class), t)
}
