package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sidkik/leetsync/pkg/errors"
)

// Registry holds only leetsync's own metrics, so that the exported textfile
// doesn't collide with the Go runtime metrics of the exporter reading it.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// RemoteRequests counts requests to LeetCode by operation and outcome.
	RemoteRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetsync_remote_requests_total",
			Help: "Total number of requests sent to LeetCode",
		},
		[]string{"operation", "outcome"},
	)

	// Submissions counts the submissions handled during a run by result:
	// written, skipped or failed.
	Submissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetsync_submissions_total",
			Help: "Total number of submissions handled",
		},
		[]string{"result"},
	)

	// ProblemFetches counts problem metadata fetches by outcome.
	ProblemFetches = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetsync_problem_fetches_total",
			Help: "Total number of problem metadata fetches",
		},
		[]string{"outcome"},
	)

	// PageRetries counts listing pages that were retried after a transient failure.
	PageRetries = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "leetsync_page_retries_total",
			Help: "Total number of listing pages retried after a transient failure",
		},
	)

	// Watermark is the watermark committed by the last completed run.
	Watermark = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "leetsync_watermark_timestamp_seconds",
			Help: "Timestamp of the newest synced submission",
		},
	)

	// LastSuccess is the time the last run completed successfully.
	LastSuccess = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "leetsync_last_success_timestamp_seconds",
			Help: "Time the last run completed successfully",
		},
	)
)

// WriteTextfile writes the current values in the Prometheus text format,
// for consumption by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return errors.WithContext(err, "write metrics")
	}
	return nil
}
