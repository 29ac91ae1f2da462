package operation

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/platform/config"
	"vigia/internal/risk"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
)

type stubEngine struct {
	summaries []AlertSummary
	lastOp    Operation
	calls     int
}

func (e *stubEngine) Evaluate(_ context.Context, op Operation, _ risk.Assessment) ([]AlertSummary, error) {
	e.calls++
	e.lastOp = op
	return e.summaries, nil
}

func newTestService(engine AlertEngine) (*Service, *InMemoryStore) {
	model := risk.NewModel(config.RiskConfig{HomeJurisdiction: "Ecuador"})
	store := NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(model, store, engine, logger, nil), store
}

func createInput() CreateInput {
	return CreateInput{
		NotaryID:      id.NewNotaryID(),
		ActType:       risk.ActSale,
		DeclaredValue: 150_000,
		CashAmount:    12_000,
		Seller:        PartyRecord{Identification: "1700000001", FullName: "Ana Seller", Type: risk.PersonNatural},
		Buyer:         PartyRecord{Identification: "1700000002", FullName: "Luis Buyer", Type: risk.PersonNatural, PEP: true},
		ExecutionDate: time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestServiceCreate(t *testing.T) {
	service, store := newTestService(&stubEngine{})

	t.Run("assigns ids and persists", func(t *testing.T) {
		op, err := service.Create(context.Background(), createInput())
		require.NoError(t, err)
		assert.False(t, op.ID.IsNil())
		assert.False(t, op.Seller.ID.IsNil())
		assert.False(t, op.Buyer.ID.IsNil())
		assert.False(t, op.CreatedAt.IsZero())

		stored, err := store.Get(context.Background(), op.ID.String())
		require.NoError(t, err)
		assert.Equal(t, op, stored)
	})

	t.Run("rejects invalid risk input", func(t *testing.T) {
		input := createInput()
		input.DeclaredValue = 0
		_, err := service.Create(context.Background(), input)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestServicePreview(t *testing.T) {
	engine := &stubEngine{}
	service, store := newTestService(engine)

	input := risk.Input{
		ActType:       risk.ActSale,
		DeclaredValue: 150_000,
		CashAmount:    12_000,
		Seller:        risk.Party{Type: risk.PersonNatural},
		Buyer:         risk.Party{Type: risk.PersonNatural, PEP: true},
	}
	assessment, err := service.Preview(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 100, assessment.Score)
	assert.Equal(t, risk.TierIntensified, assessment.Tier)

	assert.Equal(t, 0, engine.calls, "preview must not run alert rules")
	_, err = store.Get(context.Background(), id.NewOperationID().String())
	assert.Error(t, err, "preview must not persist anything")
}

func TestServiceEvaluate(t *testing.T) {
	engine := &stubEngine{summaries: []AlertSummary{{ID: id.NewAlertID(), Kind: "CASH_LIMIT_BREACH", Severity: "CRITICAL"}}}
	service, _ := newTestService(engine)

	op, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	result, err := service.Evaluate(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, op.ID, result.Operation.ID)
	assert.Equal(t, 100, result.Assessment.Score)
	assert.Equal(t, risk.LevelVeryHigh, result.Assessment.Level)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, 1, engine.calls)
	assert.Equal(t, op.ID, engine.lastOp.ID)

	t.Run("unknown operation is not found", func(t *testing.T) {
		_, err := service.Evaluate(context.Background(), id.NewOperationID())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
