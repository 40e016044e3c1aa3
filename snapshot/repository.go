package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested record is not part of the current snapshot.
var ErrNotFound = errors.New("snapshot: record not found")

// Lister abstracts the snapshot source for the pipeline driver.
type Lister interface {
	List(ctx context.Context) ([]Record, error)
}

// Repository reads the materialized sales snapshot. The view is refreshed by
// the CRM sync job; the pipeline only ever reads it.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed snapshot reader.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const recordColumns = `
	id, status, install_cost, days_since_signature, days_since_last_event,
	deposit_paid, views, clicks, sends, email_opt_out, refreshed_at
`

// List fetches every row of the current snapshot in stable id order.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM sales_snapshot
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot: list: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0, 64)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: iterate records: %w", err)
	}

	return records, nil
}

// GetByID fetches a single snapshot row, mainly for targeted re-evaluation.
func (r *Repository) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM sales_snapshot
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("snapshot: query by id: %w", err)
	}

	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var status string
	err := row.Scan(
		&rec.ID,
		&status,
		&rec.InstallCost,
		&rec.DaysSinceSignature,
		&rec.DaysSinceLastEvent,
		&rec.DepositPaid,
		&rec.Views,
		&rec.Clicks,
		&rec.Sends,
		&rec.EmailOptOut,
		&rec.RefreshedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("snapshot: scan record: %w", err)
	}
	rec.Status = Status(status)
	if !rec.Status.Valid() {
		return Record{}, fmt.Errorf("snapshot: record %s has unknown status %q", rec.ID, status)
	}
	return rec, nil
}
