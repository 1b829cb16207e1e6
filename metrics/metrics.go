// Package metrics exposes Prometheus metrics for URL parsing and batch
// validation. Recording is off by default; callers that want metrics (for
// example the CLI in batch mode, or a service embedding the toolkit) call
// Enable and serve Handler somewhere.
package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// enabled gates all recording so library users who never opt in pay only an
// atomic load.
var enabled atomic.Bool

var (
	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlkit_parse_total",
			Help: "Total number of URL parse attempts by outcome",
		},
		[]string{"outcome"},
	)

	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "urlkit_parse_duration_seconds",
			Help:    "Duration of URL parse attempts in seconds",
			Buckets: []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005},
		},
	)

	batchRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlkit_batch_runs_total",
			Help: "Total number of batch validation runs",
		},
	)

	batchURLs = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "urlkit_batch_urls",
			Help:    "Number of URLs per batch validation run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// Enable turns on metric recording.
func Enable() {
	enabled.Store(true)
}

// Disable turns off metric recording.
func Disable() {
	enabled.Store(false)
}

// Enabled reports whether metric recording is on.
func Enabled() bool {
	return enabled.Load()
}

// RecordParse records the outcome and duration of a single parse attempt.
func RecordParse(valid bool, duration time.Duration) {
	if !enabled.Load() {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	parseTotal.WithLabelValues(outcome).Inc()
	parseDuration.Observe(duration.Seconds())
}

// RecordBatch records a completed batch validation run over total URLs.
func RecordBatch(total int) {
	if !enabled.Load() {
		return
	}
	batchRuns.Inc()
	batchURLs.Observe(float64(total))
}

// Handler returns an HTTP handler exposing the registered metrics in
// Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
