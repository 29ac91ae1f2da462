package alert

import (
	"context"
	"log/slog"

	"vigia/internal/alert/metrics"
	"vigia/internal/audit"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/requestcontext"
)

// Service is the review surface over stored alerts.
type Service struct {
	store   Store
	audit   audit.Publisher
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the alert review service.
func NewService(store Store, publisher audit.Publisher, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		audit:   publisher,
		logger:  logger,
		metrics: m,
	}
}

// ReviewInput is one reviewer decision on one alert.
type ReviewInput struct {
	AlertID    id.AlertID
	ReviewerID id.UserID
	Target     State
	Comment    string
}

// Review applies a reviewer's state transition. Invalid transitions are
// rejected against the lifecycle; terminal alerts cannot move again.
func (s *Service) Review(ctx context.Context, input ReviewInput) (Alert, error) {
	alert, err := s.store.Get(ctx, input.AlertID.String())
	if err != nil {
		return Alert{}, err
	}

	if !alert.State.CanTransitionTo(input.Target) {
		return Alert{}, dErrors.New(dErrors.CodeConflict,
			"cannot transition alert from "+string(alert.State)+" to "+string(input.Target))
	}

	now := requestcontext.Now(ctx)
	alert.State = input.Target
	alert.ReviewedBy = &input.ReviewerID
	alert.ReviewedAt = &now
	alert.ReviewComment = input.Comment

	if err := s.store.Update(ctx, alert); err != nil {
		return Alert{}, err
	}

	s.metrics.IncrementTransition(string(input.Target))
	s.audit.Publish(ctx, audit.NewEvent(audit.EventAlertReviewed, alert.ID.String(), map[string]any{
		"operation_id": alert.OperationID.String(),
		"reviewer_id":  input.ReviewerID.String(),
		"state":        alert.State,
		"comment":      input.Comment,
	}))

	s.logger.InfoContext(ctx, "alert reviewed",
		"alert_id", alert.ID,
		"reviewer_id", input.ReviewerID,
		"state", alert.State,
	)
	return alert, nil
}

// ListPending returns the alerts still awaiting a first review decision for
// one notary office, ordered by severity then recency, both descending.
func (s *Service) ListPending(ctx context.Context, notaryID id.NotaryID) ([]Alert, error) {
	return s.store.ListPending(ctx, notaryID.String())
}
