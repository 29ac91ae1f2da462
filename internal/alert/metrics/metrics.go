package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the alert module.
type Metrics struct {
	// Alerts created by kind and severity
	AlertsCreated *prometheus.CounterVec

	// Review transitions by target state
	ReviewTransitions *prometheus.CounterVec

	// Rule persistence failures by kind
	PersistFailures *prometheus.CounterVec
}

// New creates a new Metrics instance with all alert module metrics registered.
func New() *Metrics {
	return &Metrics{
		AlertsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_alerts_created_total",
			Help: "Total alerts created by kind and severity",
		}, []string{"kind", "severity"}),

		ReviewTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_alert_review_transitions_total",
			Help: "Total review transitions by target state",
		}, []string{"state"}),

		PersistFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_alert_persist_failures_total",
			Help: "Alert persistence failures by kind",
		}, []string{"kind"}),
	}
}

// IncrementCreated records one created alert.
func (m *Metrics) IncrementCreated(kind, severity string) {
	if m != nil {
		m.AlertsCreated.WithLabelValues(kind, severity).Inc()
	}
}

// IncrementTransition records one review transition.
func (m *Metrics) IncrementTransition(state string) {
	if m != nil {
		m.ReviewTransitions.WithLabelValues(state).Inc()
	}
}

// IncrementPersistFailure records one failed alert write.
func (m *Metrics) IncrementPersistFailure(kind string) {
	if m != nil {
		m.PersistFailures.WithLabelValues(kind).Inc()
	}
}
