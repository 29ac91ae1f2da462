package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the screening module.
type Metrics struct {
	// Provider check latencies by source and status
	ProviderLatency *prometheus.HistogramVec

	// Verification outcomes by overall status
	VerificationOutcome *prometheus.CounterVec

	// Cache decorator hit/miss/bypass counts
	CacheResult *prometheus.CounterVec
}

// New creates a new Metrics instance with all screening module metrics registered.
func New() *Metrics {
	return &Metrics{
		ProviderLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vigia_screening_provider_duration_seconds",
			Help:    "Duration of watchlist provider checks by source and status",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
		}, []string{"source", "status"}),

		VerificationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_screening_verifications_total",
			Help: "Total verifications by overall status",
		}, []string{"status"}),

		CacheResult: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_screening_cache_results_total",
			Help: "Report cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "bypass"
	}
}

// ObserveProviderLatency records the duration of one provider check.
func (m *Metrics) ObserveProviderLatency(source, status string, d time.Duration) {
	if m != nil {
		m.ProviderLatency.WithLabelValues(source, status).Observe(d.Seconds())
	}
}

// IncrementVerification records a completed verification.
func (m *Metrics) IncrementVerification(status string) {
	if m != nil {
		m.VerificationOutcome.WithLabelValues(status).Inc()
	}
}

// IncrementCache records a cache lookup result.
func (m *Metrics) IncrementCache(result string) {
	if m != nil {
		m.CacheResult.WithLabelValues(result).Inc()
	}
}
