//go:build integration

package alert_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"vigia/internal/alert"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *alert.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = alert.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "alerts"))
}

func newStoredAlert(notaryID id.NotaryID, severity alert.Severity, createdAt time.Time) alert.Alert {
	return alert.Alert{
		ID:          id.NewAlertID(),
		OperationID: id.NewOperationID(),
		NotaryID:    notaryID,
		Kind:        alert.KindCashLimitBreach,
		Severity:    severity,
		Title:       "Cash amount at or above legal limit",
		Description: "Cash payment of $15000.00 meets or exceeds the $10000 limit for a single transaction",
		Details:     map[string]any{"cash_amount": 15000.0, "limit": 10000.0},
		State:       alert.StatePending,
		CreatedAt:   createdAt,
	}
}

func (s *PostgresStoreSuite) TestCreateAndGetRoundTrip() {
	ctx := context.Background()
	stored := newStoredAlert(id.NewNotaryID(), alert.SeverityCritical, time.Now().UTC().Truncate(time.Microsecond))

	s.Require().NoError(s.store.Create(ctx, stored))

	loaded, err := s.store.Get(ctx, stored.ID.String())
	s.Require().NoError(err)
	s.Equal(stored.ID, loaded.ID)
	s.Equal(stored.OperationID, loaded.OperationID)
	s.Equal(stored.Kind, loaded.Kind)
	s.Equal(stored.Severity, loaded.Severity)
	s.Equal(stored.State, loaded.State)
	s.Equal(stored.Details["limit"], loaded.Details["limit"])
	s.Nil(loaded.ReviewedBy)
	s.True(stored.CreatedAt.Equal(loaded.CreatedAt))
}

func (s *PostgresStoreSuite) TestGetMissingIsNotFound() {
	_, err := s.store.Get(context.Background(), id.NewAlertID().String())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *PostgresStoreSuite) TestUpdatePersistsReviewFields() {
	ctx := context.Background()
	stored := newStoredAlert(id.NewNotaryID(), alert.SeverityHigh, time.Now().UTC().Truncate(time.Microsecond))
	s.Require().NoError(s.store.Create(ctx, stored))

	reviewer := id.NewUserID()
	reviewedAt := time.Now().UTC().Truncate(time.Microsecond)
	stored.State = alert.StateConfirmed
	stored.ReviewedBy = &reviewer
	stored.ReviewedAt = &reviewedAt
	stored.ReviewComment = "confirmed against bank records"
	s.Require().NoError(s.store.Update(ctx, stored))

	loaded, err := s.store.Get(ctx, stored.ID.String())
	s.Require().NoError(err)
	s.Equal(alert.StateConfirmed, loaded.State)
	s.Require().NotNil(loaded.ReviewedBy)
	s.Equal(reviewer, *loaded.ReviewedBy)
	s.Require().NotNil(loaded.ReviewedAt)
	s.True(reviewedAt.Equal(*loaded.ReviewedAt))
	s.Equal("confirmed against bank records", loaded.ReviewComment)
}

func (s *PostgresStoreSuite) TestUpdateMissingIsNotFound() {
	stored := newStoredAlert(id.NewNotaryID(), alert.SeverityLow, time.Now())
	err := s.store.Update(context.Background(), stored)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *PostgresStoreSuite) TestListPendingOrderingAndFiltering() {
	ctx := context.Background()
	notaryID := id.NewNotaryID()
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)

	oldMedium := newStoredAlert(notaryID, alert.SeverityMedium, base)
	newMedium := newStoredAlert(notaryID, alert.SeverityMedium, base.Add(10*time.Minute))
	critical := newStoredAlert(notaryID, alert.SeverityCritical, base)
	otherOffice := newStoredAlert(id.NewNotaryID(), alert.SeverityCritical, base)

	resolved := newStoredAlert(notaryID, alert.SeverityHigh, base)
	resolved.State = alert.StateFalsePositive

	underAnalysis := newStoredAlert(notaryID, alert.SeverityCritical, base)
	underAnalysis.State = alert.StateInAnalysis

	for _, a := range []alert.Alert{oldMedium, newMedium, critical, otherOffice, resolved, underAnalysis} {
		s.Require().NoError(s.store.Create(ctx, a))
	}

	pending, err := s.store.ListPending(ctx, notaryID.String())
	s.Require().NoError(err)
	s.Require().Len(pending, 3, "only PENDING alerts belong in the queue")
	s.Equal(critical.ID, pending[0].ID)
	s.Equal(newMedium.ID, pending[1].ID)
	s.Equal(oldMedium.ID, pending[2].ID)
}
