package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the sigma module.
type Metrics struct {
	// Computation outcomes by aii type and result
	ComputationOutcome *prometheus.CounterVec

	// Upstream fetch latencies by source ("regional_value", "threshold")
	FetchLatency *prometheus.HistogramVec

	// Overall computation latency including fetches and persistence
	ComputeLatency prometheus.Histogram
}

// New creates a new Metrics instance with all sigma module metrics registered.
func New() *Metrics {
	return &Metrics{
		ComputationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sigmahub_sigma_computations_total",
			Help: "Total sigma computations by aii type and outcome",
		}, []string{"aii_type", "outcome"}), // outcome: "success", "fetch_error", "arithmetic_error", "store_error", "invalid"

		FetchLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sigmahub_sigma_fetch_duration_seconds",
			Help:    "Duration of upstream indicator fetches by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}),

		ComputeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sigmahub_sigma_compute_duration_seconds",
			Help:    "Duration of full sigma computation including fetches and persistence",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementOutcome records a computation outcome.
func (m *Metrics) IncrementOutcome(aiiType, outcome string) {
	if m != nil {
		m.ComputationOutcome.WithLabelValues(aiiType, outcome).Inc()
	}
}

// ObserveFetchLatency records the duration of an upstream fetch.
func (m *Metrics) ObserveFetchLatency(source string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// ObserveComputeLatency records the total computation duration.
func (m *Metrics) ObserveComputeLatency(d time.Duration) {
	if m != nil {
		m.ComputeLatency.Observe(d.Seconds())
	}
}
