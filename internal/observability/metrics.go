package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostOperations counts post store mutations by operation and outcome.
	PostOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_post_operations_total",
		Help: "Total number of post store operations by operation and outcome",
	}, []string{"operation", "outcome"})

	// AuthAttempts counts login and register attempts by outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_auth_attempts_total",
		Help: "Total number of authentication attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// PersistenceFailures counts storage read/write failures by key.
	PersistenceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_persistence_failures_total",
		Help: "Total number of storage failures absorbed as warnings",
	}, []string{"key"})

	// StorageOpLatency records storage operation latency by backend op.
	StorageOpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkwell_storage_op_latency_seconds",
		Help:    "Storage operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "key"})
)

// TrackStorageOp returns a function that records operation latency when
// called (e.g. defer).
func TrackStorageOp(operation, key string) func() {
	start := time.Now()
	return func() {
		StorageOpLatency.WithLabelValues(operation, key).Observe(time.Since(start).Seconds())
	}
}
