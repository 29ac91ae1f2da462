package operation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vigia/internal/risk"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
)

// PostgresStore persists operation snapshots in PostgreSQL. Parties are
// flattened into the operations row; they have no life cycle of their own.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed operation store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const insertOperationSQL = `
INSERT INTO operations (
	id, notary_id, act_type, declared_value, cash_amount,
	seller_id, seller_identification, seller_full_name, seller_person_type,
	seller_country, seller_pep, seller_monthly_income,
	buyer_id, buyer_identification, buyer_full_name, buyer_person_type,
	buyer_country, buyer_pep, buyer_monthly_income,
	execution_date, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`

func (s *PostgresStore) Create(ctx context.Context, op Operation) error {
	_, err := s.db.ExecContext(ctx, insertOperationSQL,
		op.ID.String(), op.NotaryID.String(), string(op.ActType), op.DeclaredValue, op.CashAmount,
		op.Seller.ID.String(), op.Seller.Identification, op.Seller.FullName, string(op.Seller.Type),
		op.Seller.CountryOfIncorporation, op.Seller.PEP, op.Seller.MonthlyIncome,
		op.Buyer.ID.String(), op.Buyer.Identification, op.Buyer.FullName, string(op.Buyer.Type),
		op.Buyer.CountryOfIncorporation, op.Buyer.PEP, op.Buyer.MonthlyIncome,
		op.ExecutionDate, op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create operation: %w", err)
	}
	return nil
}

const getOperationSQL = `
SELECT
	id, notary_id, act_type, declared_value, cash_amount,
	seller_id, seller_identification, seller_full_name, seller_person_type,
	seller_country, seller_pep, seller_monthly_income,
	buyer_id, buyer_identification, buyer_full_name, buyer_person_type,
	buyer_country, buyer_pep, buyer_monthly_income,
	execution_date, created_at
FROM operations WHERE id = $1`

func (s *PostgresStore) Get(ctx context.Context, operationID string) (Operation, error) {
	var (
		op                    Operation
		opID, notaryID        string
		actType               string
		sellerID, buyerID     string
		sellerType, buyerType string
	)
	err := s.db.QueryRowContext(ctx, getOperationSQL, operationID).Scan(
		&opID, &notaryID, &actType, &op.DeclaredValue, &op.CashAmount,
		&sellerID, &op.Seller.Identification, &op.Seller.FullName, &sellerType,
		&op.Seller.CountryOfIncorporation, &op.Seller.PEP, &op.Seller.MonthlyIncome,
		&buyerID, &op.Buyer.Identification, &op.Buyer.FullName, &buyerType,
		&op.Buyer.CountryOfIncorporation, &op.Buyer.PEP, &op.Buyer.MonthlyIncome,
		&op.ExecutionDate, &op.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Operation{}, dErrors.New(dErrors.CodeNotFound, "operation not found")
		}
		return Operation{}, fmt.Errorf("get operation: %w", err)
	}

	if op.ID, err = id.ParseOperationID(opID); err != nil {
		return Operation{}, fmt.Errorf("get operation: %w", err)
	}
	if op.NotaryID, err = id.ParseNotaryID(notaryID); err != nil {
		return Operation{}, fmt.Errorf("get operation: %w", err)
	}
	if op.Seller.ID, err = id.ParsePartyID(sellerID); err != nil {
		return Operation{}, fmt.Errorf("get operation: %w", err)
	}
	if op.Buyer.ID, err = id.ParsePartyID(buyerID); err != nil {
		return Operation{}, fmt.Errorf("get operation: %w", err)
	}
	op.ActType = risk.ActType(actType)
	op.Seller.Type = risk.PersonType(sellerType)
	op.Buyer.Type = risk.PersonType(buyerType)
	return op, nil
}
