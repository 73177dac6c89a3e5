// SPDX-License-Identifier: MIT

package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Stage names used as the "stage" label of the records counter.
const (
	StageClassify = "classify"
	StageFormat   = "format"
	StageSort     = "sort"
)

// Metrics holds the pipeline's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	SortDuration *prometheus.HistogramVec
	Records      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SortDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pwbench",
			Name:      "sort_duration_seconds",
			Help:      "Wall time of a single sort run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm", "criterion", "scenario"}),
		Records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pwbench",
			Name:      "records_total",
			Help:      "Records processed per pipeline stage.",
		}, []string{"stage"}),
	}
	reg.MustRegister(m.SortDuration, m.Records)

	return m
}

func (m *Metrics) observeSort(r Result) {
	if m == nil {
		return
	}
	m.SortDuration.
		WithLabelValues(string(r.Algorithm), string(r.Criterion), string(r.Scenario)).
		Observe(r.Duration.Seconds())
}

func (m *Metrics) addRecords(stage string, n int) {
	if m == nil {
		return
	}
	m.Records.WithLabelValues(stage).Add(float64(n))
}
