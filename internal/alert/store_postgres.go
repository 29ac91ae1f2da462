package alert

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
)

// PostgresStore persists alerts in PostgreSQL. Rule details are stored as
// JSONB since their shape varies per rule.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed alert store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const insertAlertSQL = `
INSERT INTO alerts (
	id, operation_id, notary_id, kind, severity, title, description,
	details, state, reviewed_by, reviewed_at, review_comment, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`

func (s *PostgresStore) Create(ctx context.Context, alert Alert) error {
	details, err := json.Marshal(alert.Details)
	if err != nil {
		return fmt.Errorf("marshal alert details: %w", err)
	}
	_, err = s.db.ExecContext(ctx, insertAlertSQL,
		alert.ID.String(), alert.OperationID.String(), alert.NotaryID.String(),
		string(alert.Kind), string(alert.Severity), alert.Title, alert.Description,
		details, string(alert.State),
		nullUserID(alert.ReviewedBy), nullTime(alert.ReviewedAt), alert.ReviewComment,
		alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

const getAlertSQL = `
SELECT id, operation_id, notary_id, kind, severity, title, description,
	details, state, reviewed_by, reviewed_at, review_comment, created_at
FROM alerts WHERE id = $1`

func (s *PostgresStore) Get(ctx context.Context, alertID string) (Alert, error) {
	alert, err := scanAlert(s.db.QueryRowContext(ctx, getAlertSQL, alertID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Alert{}, dErrors.New(dErrors.CodeNotFound, "alert not found")
		}
		return Alert{}, fmt.Errorf("get alert: %w", err)
	}
	return alert, nil
}

const updateAlertSQL = `
UPDATE alerts SET
	state = $2, reviewed_by = $3, reviewed_at = $4, review_comment = $5
WHERE id = $1`

func (s *PostgresStore) Update(ctx context.Context, alert Alert) error {
	result, err := s.db.ExecContext(ctx, updateAlertSQL,
		alert.ID.String(), string(alert.State),
		nullUserID(alert.ReviewedBy), nullTime(alert.ReviewedAt), alert.ReviewComment,
	)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	if affected == 0 {
		return dErrors.New(dErrors.CodeNotFound, "alert not found")
	}
	return nil
}

const listPendingAlertsSQL = `
SELECT id, operation_id, notary_id, kind, severity, title, description,
	details, state, reviewed_by, reviewed_at, review_comment, created_at
FROM alerts
WHERE notary_id = $1 AND state = 'PENDING'
ORDER BY
	CASE severity
		WHEN 'CRITICAL' THEN 4
		WHEN 'HIGH' THEN 3
		WHEN 'MEDIUM' THEN 2
		ELSE 1
	END DESC,
	created_at DESC`

func (s *PostgresStore) ListPending(ctx context.Context, notaryID string) ([]Alert, error) {
	rows, err := s.db.QueryContext(ctx, listPendingAlertsSQL, notaryID)
	if err != nil {
		return nil, fmt.Errorf("list pending alerts: %w", err)
	}
	defer rows.Close()

	var alerts []Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("list pending alerts: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending alerts: %w", err)
	}
	return alerts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (Alert, error) {
	var (
		alert                   Alert
		alertID, opID, notaryID string
		kind, severity, state   string
		details                 []byte
		reviewedBy              sql.NullString
		reviewedAt              sql.NullTime
	)
	err := row.Scan(
		&alertID, &opID, &notaryID, &kind, &severity, &alert.Title, &alert.Description,
		&details, &state, &reviewedBy, &reviewedAt, &alert.ReviewComment, &alert.CreatedAt,
	)
	if err != nil {
		return Alert{}, err
	}

	if alert.ID, err = id.ParseAlertID(alertID); err != nil {
		return Alert{}, err
	}
	if alert.OperationID, err = id.ParseOperationID(opID); err != nil {
		return Alert{}, err
	}
	if alert.NotaryID, err = id.ParseNotaryID(notaryID); err != nil {
		return Alert{}, err
	}
	alert.Kind = Kind(kind)
	alert.Severity = Severity(severity)
	alert.State = State(state)

	if len(details) > 0 {
		if err := json.Unmarshal(details, &alert.Details); err != nil {
			return Alert{}, err
		}
	}
	if reviewedBy.Valid {
		userID, err := id.ParseUserID(reviewedBy.String)
		if err != nil {
			return Alert{}, err
		}
		alert.ReviewedBy = &userID
	}
	if reviewedAt.Valid {
		alert.ReviewedAt = &reviewedAt.Time
	}
	return alert, nil
}

func nullUserID(value *id.UserID) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: value.String(), Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
