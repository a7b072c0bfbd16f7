// Package metrics declares the Prometheus collectors of the site generator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sitegen"

// Status label values
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// GenerationRuns counts finished generation runs by outcome
	GenerationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of site generation runs",
		},
		[]string{"status"},
	)

	// StageDuration observes the wall time of every pipeline stage
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30},
		},
		[]string{"stage", "status"},
	)

	// ValidationScore observes the score of every validated site
	ValidationScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "score",
			Help:      "Validation score of generated sites",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		},
	)

	// HTTPRequests counts API requests by route and status code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// StoreOperations counts persistence calls by driver, operation and outcome
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total number of site store operations",
		},
		[]string{"driver", "operation", "status"},
	)
)

// Status returns the status label for err
func Status(err error) string {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}
