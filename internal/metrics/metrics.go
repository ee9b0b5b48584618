// Package metrics registers the service's Prometheus collectors on the
// default registry, exposed by the server at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuizzesFormatted counts formatting attempts by outcome ("ok"/"invalid").
	QuizzesFormatted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizforge_quizzes_formatted_total",
		Help: "Quiz formatting attempts by outcome.",
	}, []string{"status"})

	// Exports counts export renders by format and outcome.
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizforge_exports_total",
		Help: "Quiz export renders by format and outcome.",
	}, []string{"format", "status"})

	// Generations counts generated quizzes by source ("cache"/"generator").
	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizforge_generations_total",
		Help: "Quiz generations served, by source.",
	}, []string{"source"})

	// GenerationDuration tracks end-to-end generator latency in seconds.
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quizforge_generation_duration_seconds",
		Help:    "Latency of AI quiz generation requests.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	})
)
