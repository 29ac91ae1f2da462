//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer wraps a testcontainers Postgres instance with the
// service schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS operations (
	id                    UUID PRIMARY KEY,
	notary_id             UUID NOT NULL,
	act_type              TEXT NOT NULL,
	declared_value        DOUBLE PRECISION NOT NULL,
	cash_amount           DOUBLE PRECISION NOT NULL DEFAULT 0,
	seller_id             UUID NOT NULL,
	seller_identification TEXT NOT NULL,
	seller_full_name      TEXT NOT NULL,
	seller_person_type    TEXT NOT NULL,
	seller_country        TEXT NOT NULL DEFAULT '',
	seller_pep            BOOLEAN NOT NULL DEFAULT FALSE,
	seller_monthly_income DOUBLE PRECISION NOT NULL DEFAULT 0,
	buyer_id              UUID NOT NULL,
	buyer_identification  TEXT NOT NULL,
	buyer_full_name       TEXT NOT NULL,
	buyer_person_type     TEXT NOT NULL,
	buyer_country         TEXT NOT NULL DEFAULT '',
	buyer_pep             BOOLEAN NOT NULL DEFAULT FALSE,
	buyer_monthly_income  DOUBLE PRECISION NOT NULL DEFAULT 0,
	execution_date        TIMESTAMPTZ,
	created_at            TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS alerts (
	id             UUID PRIMARY KEY,
	operation_id   UUID NOT NULL,
	notary_id      UUID NOT NULL,
	kind           TEXT NOT NULL,
	severity       TEXT NOT NULL,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	details        JSONB,
	state          TEXT NOT NULL,
	reviewed_by    UUID,
	reviewed_at    TIMESTAMPTZ,
	review_comment TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS alerts_pending_by_notary
	ON alerts (notary_id, created_at DESC)
	WHERE state = 'PENDING';
`

// NewPostgresContainer starts a Postgres container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("vigia_test"),
		tcpostgres.WithUsername("vigia"),
		tcpostgres.WithPassword("vigia"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// TruncateTables clears the given tables. Use between tests for isolation.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := p.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(tables, ", ")))
	return err
}
