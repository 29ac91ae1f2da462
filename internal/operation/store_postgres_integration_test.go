//go:build integration

package operation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"vigia/internal/operation"
	"vigia/internal/risk"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *operation.PostgresStore
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
	s.store = operation.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "operations"))
}

func (s *PostgresStoreSuite) TestCreateAndGetRoundTrip() {
	ctx := context.Background()
	created := time.Now().UTC().Truncate(time.Microsecond)

	stored := operation.Operation{
		ID:            id.NewOperationID(),
		NotaryID:      id.NewNotaryID(),
		ActType:       risk.ActSale,
		DeclaredValue: 150_000,
		CashAmount:    12_000,
		Seller: operation.PartyRecord{
			ID:             id.NewPartyID(),
			Identification: "1700000001",
			FullName:       "Ana Seller",
			Type:           risk.PersonNatural,
		},
		Buyer: operation.PartyRecord{
			ID:                     id.NewPartyID(),
			Identification:         "1700000002",
			FullName:               "Holding Buyer S.A.",
			Type:                   risk.PersonLegalEntity,
			CountryOfIncorporation: "Panamá",
			PEP:                    true,
			MonthlyIncome:          20_000,
		},
		ExecutionDate: created.Add(72 * time.Hour),
		CreatedAt:     created,
	}

	s.Require().NoError(s.store.Create(ctx, stored))

	loaded, err := s.store.Get(ctx, stored.ID.String())
	s.Require().NoError(err)
	s.Equal(stored.ID, loaded.ID)
	s.Equal(stored.ActType, loaded.ActType)
	s.Equal(stored.Buyer.ID, loaded.Buyer.ID)
	s.Equal(stored.Buyer.CountryOfIncorporation, loaded.Buyer.CountryOfIncorporation)
	s.True(loaded.Buyer.PEP)
	s.InDelta(stored.Buyer.MonthlyIncome, loaded.Buyer.MonthlyIncome, 0.001)
	s.True(stored.ExecutionDate.Equal(loaded.ExecutionDate))
	s.True(stored.CreatedAt.Equal(loaded.CreatedAt))
}

func (s *PostgresStoreSuite) TestGetMissingIsNotFound() {
	_, err := s.store.Get(context.Background(), id.NewOperationID().String())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
