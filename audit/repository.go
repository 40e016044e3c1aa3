package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Writer abstracts the audit sink for the recorder.
type Writer interface {
	Append(ctx context.Context, entry Entry) error
}

// Repository appends audit entries to the ops audit log. Append-only: there
// is deliberately no read path back into the pipeline.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed audit writer.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Append inserts one audit entry.
func (r *Repository) Append(ctx context.Context, entry Entry) error {
	const query = `
		INSERT INTO ops_audit_log
			(id, record_id, action_performed, justification, source_axis, priority, risk_score, health_score, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.RecordID,
		entry.ActionPerformed,
		entry.Justification,
		string(entry.SourceAxis),
		string(entry.Priority),
		entry.RiskScore,
		entry.HealthScore,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("audit: append entry: %w", err)
	}

	return nil
}
