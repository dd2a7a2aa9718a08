package service

import (
	"time"

	"postguard/internal/core/risk"
	"postguard/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the assessment series; a nil *Metrics records nothing
type Metrics struct {
	Assessments *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Flagged     prometheus.Counter
}

// NewMetrics registers the assessment series on reg; a nil reg skips registration
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "assessments_total",
			Help:      "Completed assessments by modality and final risk level.",
		}, []string{"modality", "risk_level"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "assessment_duration_seconds",
			Help:      "Assessment latency by modality, including simulated latency.",
			Buckets:   []float64{.001, .005, .025, .1, .25, .5, 1, 2, 5},
		}, []string{"modality"}),
		Flagged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "flagged_segments_total",
			Help:      "Video segments reported in timeRanges.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Assessments, m.Duration, m.Flagged)
	}
	return m
}

func (m *Metrics) observe(mod risk.Modality, level risk.Level, started time.Time) {
	if m == nil {
		return
	}
	m.Assessments.WithLabelValues(string(mod), level.String()).Inc()
	m.Duration.WithLabelValues(string(mod)).Observe(time.Since(started).Seconds())
}

func (m *Metrics) flagged(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Flagged.Add(float64(n))
}
