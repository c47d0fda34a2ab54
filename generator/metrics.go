package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resultsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptpilot_results_generated_total",
			Help: "Total number of results generated, partitioned by task type.",
		},
		[]string{"type"},
	)
	submissionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptpilot_submissions_rejected_total",
			Help: "Total number of submissions that did not produce a result, partitioned by reason.",
		},
		[]string{"reason"},
	)
	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptpilot_generation_duration_seconds",
			Help:    "Histogram of completer call durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"type"},
	)
)
