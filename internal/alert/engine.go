package alert

import (
	"context"
	"errors"
	"log/slog"

	"vigia/internal/alert/metrics"
	"vigia/internal/audit"
	"vigia/internal/operation"
	"vigia/internal/risk"
	"vigia/internal/screening"
	id "vigia/pkg/domain"
	"vigia/pkg/requestcontext"
)

// Engine screens the parties and runs the detection rules over one
// evaluated operation. Rules execute sequentially; a persistence failure is
// logged and isolated so the remaining rules still run. The joined error is
// returned for observability but callers should treat the summaries as the
// authoritative outcome.
type Engine struct {
	rules    []Rule
	verifier screening.Verifier
	store    Store
	audit    audit.Publisher
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewEngine constructs the engine with the default rule set.
func NewEngine(verifier screening.Verifier, store Store, publisher audit.Publisher, logger *slog.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		rules:    DefaultRules(),
		verifier: verifier,
		store:    store,
		audit:    publisher,
		logger:   logger,
		metrics:  m,
	}
}

// Evaluate implements operation.AlertEngine.
func (e *Engine) Evaluate(ctx context.Context, op operation.Operation, assessment risk.Assessment) ([]operation.AlertSummary, error) {
	input := RuleInput{
		Operation:  op,
		Assessment: assessment,
		Now:        requestcontext.Now(ctx),
	}

	combined, err := screening.VerifyParties(ctx, e.verifier,
		screening.PartyInput{Role: "seller", Identification: op.Seller.Identification, FullName: op.Seller.FullName},
		screening.PartyInput{Role: "buyer", Identification: op.Buyer.Identification, FullName: op.Buyer.FullName},
	)
	var errs []error
	if err != nil {
		// Screening is one input among several; the profile and timing
		// rules still run without it.
		e.logger.ErrorContext(ctx, "party screening failed during evaluation",
			"operation_id", op.ID,
			"error", err,
		)
		errs = append(errs, err)
	} else {
		input.Screening = combined
	}

	var summaries []operation.AlertSummary
	for _, rule := range e.rules {
		finding := rule.Evaluate(input)
		if finding == nil {
			continue
		}

		created := Alert{
			ID:          id.NewAlertID(),
			OperationID: op.ID,
			NotaryID:    op.NotaryID,
			Kind:        finding.Kind,
			Severity:    finding.Severity,
			Title:       finding.Title,
			Description: finding.Description,
			Details:     finding.Details,
			State:       StatePending,
			CreatedAt:   input.Now,
		}
		if err := e.store.Create(ctx, created); err != nil {
			e.logger.ErrorContext(ctx, "alert persistence failed",
				"operation_id", op.ID,
				"kind", finding.Kind,
				"error", err,
			)
			e.metrics.IncrementPersistFailure(string(finding.Kind))
			errs = append(errs, err)
			continue
		}

		e.metrics.IncrementCreated(string(created.Kind), string(created.Severity))
		e.audit.Publish(ctx, audit.NewEvent(audit.EventAlertCreated, created.ID.String(), map[string]any{
			"operation_id": op.ID.String(),
			"notary_id":    op.NotaryID.String(),
			"kind":         created.Kind,
			"severity":     created.Severity,
		}))

		e.logger.InfoContext(ctx, "alert created",
			"alert_id", created.ID,
			"operation_id", op.ID,
			"kind", created.Kind,
			"severity", created.Severity,
		)

		summaries = append(summaries, operation.AlertSummary{
			ID:       created.ID,
			Kind:     string(created.Kind),
			Severity: string(created.Severity),
			Title:    created.Title,
		})
	}

	return summaries, errors.Join(errs...)
}
