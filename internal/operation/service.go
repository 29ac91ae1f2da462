package operation

import (
	"context"
	"log/slog"
	"time"

	"vigia/internal/operation/metrics"
	"vigia/internal/risk"
	id "vigia/pkg/domain"
	"vigia/pkg/requestcontext"
)

// AlertSummary is the engine's view of one created alert, kept minimal so
// this package stays decoupled from the alert module.
type AlertSummary struct {
	ID       id.AlertID `json:"id"`
	Kind     string     `json:"kind"`
	Severity string     `json:"severity"`
	Title    string     `json:"title"`
}

// AlertEngine runs the detection rules over an evaluated operation.
// Implementations screen the parties and persist whatever alerts trigger.
type AlertEngine interface {
	Evaluate(ctx context.Context, op Operation, assessment risk.Assessment) ([]AlertSummary, error)
}

// Service is the operation intake and evaluation surface.
type Service struct {
	model   *risk.Model
	store   Store
	engine  AlertEngine
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the operation service with its dependencies.
func NewService(model *risk.Model, store Store, engine AlertEngine, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		model:   model,
		store:   store,
		engine:  engine,
		logger:  logger,
		metrics: m,
	}
}

// CreateInput carries a new operation record.
type CreateInput struct {
	NotaryID      id.NotaryID
	ActType       risk.ActType
	DeclaredValue float64
	CashAmount    float64
	Seller        PartyRecord
	Buyer         PartyRecord
	ExecutionDate time.Time
}

// Create validates and stores a new operation snapshot.
func (s *Service) Create(ctx context.Context, input CreateInput) (Operation, error) {
	op := Operation{
		ID:            id.NewOperationID(),
		NotaryID:      input.NotaryID,
		ActType:       input.ActType,
		DeclaredValue: input.DeclaredValue,
		CashAmount:    input.CashAmount,
		Seller:        input.Seller,
		Buyer:         input.Buyer,
		ExecutionDate: input.ExecutionDate,
		CreatedAt:     requestcontext.Now(ctx),
	}
	if op.Seller.ID.IsNil() {
		op.Seller.ID = id.NewPartyID()
	}
	if op.Buyer.ID.IsNil() {
		op.Buyer.ID = id.NewPartyID()
	}

	if err := s.model.Validate(op.RiskInput()); err != nil {
		return Operation{}, err
	}
	if err := s.store.Create(ctx, op); err != nil {
		return Operation{}, err
	}

	s.logger.InfoContext(ctx, "operation created",
		"operation_id", op.ID,
		"notary_id", op.NotaryID,
		"act_type", op.ActType,
	)
	return op, nil
}

// Preview computes the risk assessment for a prospective operation without
// storing anything or running alert rules. This is the pre-commit path.
func (s *Service) Preview(ctx context.Context, input risk.Input) (risk.Assessment, error) {
	assessment, err := s.model.Assess(input)
	if err != nil {
		return risk.Assessment{}, err
	}
	s.logger.InfoContext(ctx, "risk preview computed",
		"act_type", input.ActType,
		"score", assessment.Score,
		"level", assessment.Level,
		"tier", assessment.Tier,
	)
	return assessment, nil
}

// EvaluateResult is the post-commit evaluation outcome.
type EvaluateResult struct {
	Operation  Operation       `json:"operation"`
	Assessment risk.Assessment `json:"assessment"`
	Alerts     []AlertSummary  `json:"alerts"`
}

// Evaluate loads a stored operation, assesses it, and runs the alert engine.
// Engine failures never abort the evaluation: the rules that did run have
// already persisted their alerts, so partial results are returned as-is.
func (s *Service) Evaluate(ctx context.Context, operationID id.OperationID) (*EvaluateResult, error) {
	start := time.Now()

	op, err := s.store.Get(ctx, operationID.String())
	if err != nil {
		return nil, err
	}

	assessment, err := s.model.Assess(op.RiskInput())
	if err != nil {
		return nil, err
	}

	alerts, err := s.engine.Evaluate(ctx, op, assessment)
	if err != nil {
		s.logger.ErrorContext(ctx, "alert engine reported failures",
			"operation_id", op.ID,
			"alerts_created", len(alerts),
			"error", err,
		)
	}

	s.metrics.IncrementEvaluation(string(assessment.Level), string(assessment.Tier))
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	return &EvaluateResult{
		Operation:  op,
		Assessment: assessment,
		Alerts:     alerts,
	}, nil
}
