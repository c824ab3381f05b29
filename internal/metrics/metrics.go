// Package metrics exposes the Prometheus collectors for audit runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RunsTotal.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
)

var (
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "block_audit",
		Name:      "runs_total",
		Help:      "Audit submissions by outcome.",
	}, []string{"outcome"})

	PipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "block_audit",
		Name:      "pipeline_duration_seconds",
		Help:      "Time spent waiting for the analysis pipeline.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 900},
	}, []string{"outcome"})

	RetentionDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "block_audit",
		Name:      "run_history_deleted_total",
		Help:      "Run history rows removed by the retention job.",
	})
)

func ObserveRejected() {
	RunsTotal.WithLabelValues(OutcomeInvalid).Inc()
}

func ObservePipeline(outcome string, elapsed time.Duration) {
	RunsTotal.WithLabelValues(outcome).Inc()
	PipelineDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
