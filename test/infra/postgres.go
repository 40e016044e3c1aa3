// Package infra boots throwaway Postgres containers for integration tests.
package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Schema is the subset of the production schema the pipeline touches: the
// snapshot view it reads and the audit log it shadow-writes.
const Schema = `
CREATE TABLE IF NOT EXISTS sales_snapshot (
	id                    text PRIMARY KEY,
	status                text NOT NULL,
	install_cost          double precision NOT NULL DEFAULT 0,
	days_since_signature  int NOT NULL DEFAULT 0,
	days_since_last_event int,
	deposit_paid          boolean NOT NULL DEFAULT false,
	views                 int NOT NULL DEFAULT 0,
	clicks                int NOT NULL DEFAULT 0,
	sends                 int NOT NULL DEFAULT 0,
	email_opt_out         boolean NOT NULL DEFAULT false,
	refreshed_at          timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ops_audit_log (
	id               uuid PRIMARY KEY,
	record_id        text NOT NULL,
	action_performed text NOT NULL,
	justification    text NOT NULL DEFAULT '',
	source_axis      text NOT NULL DEFAULT '',
	priority         text NOT NULL,
	risk_score       int NOT NULL,
	health_score     int NOT NULL,
	created_at       timestamptz NOT NULL
);
`

// Harness owns the lifecycle of the Postgres test container and pgx pool.
type Harness struct {
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
}

// NewHarness boots a Postgres 16 container and applies the embedded schema.
func NewHarness(ctx context.Context) (*Harness, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("solarops"),
		postgres.WithUsername("solarops"),
		postgres.WithPassword("solarops"),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("resolve connection string: %w", err)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	cfg.MaxConns = 16
	cfg.MaxConnIdleTime = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if _, err := pool.Exec(ctx, Schema); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Harness{container: pgContainer, pool: pool, dsn: dsn}, nil
}

// Pool exposes the configured pgx pool.
func (h *Harness) Pool() *pgxpool.Pool {
	return h.pool
}

// DSN returns the connection string for direct connections.
func (h *Harness) DSN() string {
	return h.dsn
}

// Close tears down the pool and the container.
func (h *Harness) Close(ctx context.Context) {
	if h.pool != nil {
		h.pool.Close()
	}
	if h.container != nil {
		_ = h.container.Terminate(ctx)
	}
}
