// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/record"
	"github.com/katalvlaran/pwbench/sorting"
)

var (
	// ErrEmptyInput is returned when an input CSV has no header row.
	ErrEmptyInput = errors.New("pipeline: input has no header row")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")
)

// Scenario is the arrangement of the input handed to a sort run.
type Scenario string

const (
	// Best hands the algorithm input already ordered by the criterion.
	Best Scenario = "best"
	// Average hands the algorithm the input in file order.
	Average Scenario = "average"
	// Worst hands the algorithm input in reverse criterion order.
	Worst Scenario = "worst"
)

// Scenarios returns every scenario in run order.
func Scenarios() []Scenario { return []Scenario{Best, Average, Worst} }

// ParseScenario validates a scenario name.
func ParseScenario(name string) (Scenario, error) {
	for _, s := range Scenarios() {
		if string(s) == name {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: unknown scenario %q", ErrOptionViolation, name)
}

// Option configures a Pipeline via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the pipeline configuration.
type Options struct {
	// Logger receives stage and run events. Defaults to a no-op logger.
	Logger *zap.Logger

	// Metrics, if non-nil, records durations and record counts.
	Metrics *Metrics

	// Algorithms, Criteria and Scenarios select the sort runs. Incompatible
	// (algorithm, criterion) pairs are skipped, not rejected.
	Algorithms []sorting.Algorithm
	Criteria   []sorting.Criterion
	Scenarios  []Scenario

	// Estimates enables the zxcvbn score in the label tally.
	Estimates bool

	err error
}

// DefaultOptions returns every algorithm, criterion and scenario, no metrics,
// no estimates and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Algorithms: sorting.Algorithms(),
		Criteria:   sorting.Criteria(),
		Scenarios:  Scenarios(),
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithEstimates toggles the zxcvbn score in the tally.
func WithEstimates(on bool) Option {
	return func(o *Options) { o.Estimates = on }
}

// WithAlgorithms restricts the sort stage to the named algorithms
// (canonical names or aliases).
func WithAlgorithms(names ...string) Option {
	return func(o *Options) {
		algs := make([]sorting.Algorithm, 0, len(names))
		for _, n := range names {
			a, err := sorting.ParseAlgorithm(n)
			if err != nil {
				o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)

				return
			}
			algs = append(algs, a)
		}
		if len(algs) > 0 {
			o.Algorithms = algs
		}
	}
}

// WithCriteria restricts the sort stage to the named criteria.
func WithCriteria(names ...string) Option {
	return func(o *Options) {
		crits := make([]sorting.Criterion, 0, len(names))
		for _, n := range names {
			c, err := sorting.ParseCriterion(n)
			if err != nil {
				o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)

				return
			}
			crits = append(crits, c)
		}
		if len(crits) > 0 {
			o.Criteria = crits
		}
	}
}

// WithScenarios restricts the sort stage to the named scenarios.
func WithScenarios(names ...string) Option {
	return func(o *Options) {
		scs := make([]Scenario, 0, len(names))
		for _, n := range names {
			s, err := ParseScenario(n)
			if err != nil {
				o.err = err

				return
			}
			scs = append(scs, s)
		}
		if len(scs) > 0 {
			o.Scenarios = scs
		}
	}
}

// Pipeline runs the stages with a fixed configuration.
type Pipeline struct {
	opts Options
	log  *zap.Logger
}

// New builds a Pipeline. It returns ErrOptionViolation for invalid options.
func New(opts ...Option) (*Pipeline, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Pipeline{opts: o, log: o.Logger}, nil
}

// Tally aggregates one label of the classify stage.
type Tally struct {
	Count    int
	ScoreSum int // sum of zxcvbn scores, when estimates are enabled
	Scored   int // number of passwords contributing to ScoreSum
}

// AverageScore returns the mean zxcvbn score, or false when nothing was scored.
func (t Tally) AverageScore() (float64, bool) {
	if t.Scored == 0 {
		return 0, false
	}

	return float64(t.ScoreSum) / float64(t.Scored), true
}

// ClassifyResult is the outcome of the classify stage.
type ClassifyResult struct {
	Header    []string
	Rows      *container.Sequence[record.Classified]
	Tally     *container.HashMap[string, Tally]
	Processed int // rows classified
	Failed    int // rows labelled processing error
}

// FormatResult is the outcome of the format stage.
type FormatResult struct {
	Header    []string
	Formatted *container.Sequence[record.Formatted]
	Strong    *container.Sequence[record.Formatted]
	Skipped   int // rows too short or labelled processing error
	BadDates  int // dates kept verbatim because they did not parse
}

// Result describes one timed sort run.
type Result struct {
	Criterion sorting.Criterion
	Algorithm sorting.Algorithm
	Scenario  Scenario
	Records   int
	Duration  time.Duration
	File      string
}
