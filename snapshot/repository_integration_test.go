package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"solarops/snapshot"
	"solarops/test/infra"
)

// TestRepository_Integration boots a throwaway Postgres and exercises the
// snapshot read path end to end.
func TestRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	h, err := infra.NewHarness(ctx)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	defer h.Close(context.Background())

	refreshed := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	seed := `
		INSERT INTO sales_snapshot
			(id, status, install_cost, days_since_signature, days_since_last_event,
			 deposit_paid, views, clicks, sends, email_opt_out, refreshed_at)
		VALUES
			('rec-1', 'signed', 20000, 15, 1,  false, 2, 0, 1, false, $1),
			('rec-2', 'sent',   0,     0,  9,  false, 13, 0, 2, false, $1),
			('rec-3', 'draft',  0,     0,  NULL, false, 0, 0, 0, true, $1)
	`
	if _, err := h.Pool().Exec(ctx, seed, refreshed); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	repo := snapshot.NewRepository(h.Pool())

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "rec-1" || records[1].ID != "rec-2" || records[2].ID != "rec-3" {
		t.Fatalf("records out of id order: %+v", records)
	}

	first := records[0]
	if first.Status != snapshot.StatusSigned || first.InstallCost != 20000 || first.DaysSinceSignature != 15 {
		t.Fatalf("unexpected rec-1: %+v", first)
	}
	if first.DaysSinceLastEvent == nil || *first.DaysSinceLastEvent != 1 {
		t.Fatalf("rec-1 idle days not scanned: %+v", first.DaysSinceLastEvent)
	}

	third := records[2]
	if third.DaysSinceLastEvent != nil {
		t.Fatalf("NULL last-event must scan as nil, got %v", *third.DaysSinceLastEvent)
	}
	if !third.EmailOptOut {
		t.Fatalf("rec-3 opt-out flag lost")
	}

	got, err := repo.GetByID(ctx, "rec-2")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Views != 13 || got.Status != snapshot.StatusSent {
		t.Fatalf("unexpected rec-2: %+v", got)
	}

	if _, err := repo.GetByID(ctx, "rec-missing"); !errors.Is(err, snapshot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
