package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the operation module.
type Metrics struct {
	// Risk evaluations by level and tier
	Evaluations *prometheus.CounterVec

	// Full evaluation latency including screening and rule execution
	EvaluateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all operation module metrics registered.
func New() *Metrics {
	return &Metrics{
		Evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_operation_evaluations_total",
			Help: "Total risk evaluations by level and due-diligence tier",
		}, []string{"level", "tier"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigia_operation_evaluate_duration_seconds",
			Help:    "Duration of full operation evaluation including screening and alert rules",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementEvaluation records one completed risk evaluation.
func (m *Metrics) IncrementEvaluation(level, tier string) {
	if m != nil {
		m.Evaluations.WithLabelValues(level, tier).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
