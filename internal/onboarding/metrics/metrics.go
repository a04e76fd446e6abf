package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the onboarding workflow engine.
type Metrics struct {
	// Workflow outcomes by operation and outcome ("ok", "rejected", "error")
	OperationOutcome *prometheus.CounterVec

	// Operation latency by workflow operation
	OperationLatency *prometheus.HistogramVec

	// Registry lookup latency
	RegistryLatency prometheus.Histogram
}

// New creates a Metrics instance with all workflow metrics registered.
func New() *Metrics {
	return &Metrics{
		OperationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alta_onboarding_operations_total",
			Help: "Total workflow operation outcomes by operation and result",
		}, []string{"operation", "outcome"}),

		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alta_onboarding_operation_duration_seconds",
			Help:    "Duration of workflow operations",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),

		RegistryLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "alta_onboarding_registry_duration_seconds",
			Help:    "Duration of DGI registry lookups",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementOutcome records a workflow operation outcome.
func (m *Metrics) IncrementOutcome(operation, outcome string) {
	if m != nil {
		m.OperationOutcome.WithLabelValues(operation, outcome).Inc()
	}
}

// ObserveOperation records the duration of a workflow operation.
func (m *Metrics) ObserveOperation(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveRegistry records the duration of a registry lookup.
func (m *Metrics) ObserveRegistry(d time.Duration) {
	if m != nil {
		m.RegistryLatency.Observe(d.Seconds())
	}
}
