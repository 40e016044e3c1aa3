package pipeline

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"solarops/axis"
	"solarops/decision"
	"solarops/protocol"
	"solarops/snapshot"
)

var refreshedAt = time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

func intp(v int) *int { return &v }

func testRegistry(t *testing.T) *protocol.Registry {
	t.Helper()
	r, err := protocol.NewRegistry(protocol.DefaultCatalog())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return r
}

func warRoomRecord(id string) snapshot.Record {
	return snapshot.Record{
		ID:                 id,
		Status:             snapshot.StatusSigned,
		InstallCost:        20000,
		DaysSinceSignature: 15,
		DaysSinceLastEvent: intp(1),
		Views:              2,
		RefreshedAt:        refreshedAt,
	}
}

func TestEvaluate_WarRoomEndToEnd(t *testing.T) {
	out := Evaluate(testRegistry(t), warRoomRecord("rec-1"))

	if out.Decision.Priority != decision.PriorityWarRoom || out.Decision.SourceAxis != axis.AxisA {
		t.Fatalf("unexpected decision: %+v", out.Decision)
	}
	if out.AxisA == nil || out.AxisA.Status != axis.StatusWarRoom {
		t.Fatalf("unexpected axis A result: %+v", out.AxisA)
	}
	if out.Action == nil {
		t.Fatalf("expected a prescribed action for a war-room record")
	}
	if out.Action.PrimaryProtocol.ID != "PROT-DEPOSIT-WARROOM" {
		t.Fatalf("expected the deposit war room protocol, got %s", out.Action.PrimaryProtocol.ID)
	}
	if out.Action.Deadline != protocol.DeadlineImmediate {
		t.Fatalf("expected immediate deadline, got %s", out.Action.Deadline)
	}
	if out.Action.GeneratedAt != refreshedAt {
		t.Fatalf("generatedAt should pin to snapshot refresh time, got %v", out.Action.GeneratedAt)
	}
}

func TestEvaluate_HealthyRecordYieldsNoneAndNoAction(t *testing.T) {
	rec := snapshot.Record{
		ID:                 "rec-ok",
		Status:             snapshot.StatusSigned,
		InstallCost:        20000,
		DaysSinceSignature: 2,
		DepositPaid:        true,
		DaysSinceLastEvent: intp(1),
		Views:              2,
		Clicks:             1,
		RefreshedAt:        refreshedAt,
	}
	out := Evaluate(testRegistry(t), rec)
	if out.Decision.Priority != decision.PriorityNone {
		t.Fatalf("expected NONE decision, got %+v", out.Decision)
	}
	if out.Action != nil {
		t.Fatalf("healthy record should prescribe nothing, got %+v", out.Action)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	registry := testRegistry(t)
	rec := warRoomRecord("rec-det")

	first := Evaluate(registry, rec)
	for i := 0; i < 5; i++ {
		again := Evaluate(registry, rec)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("evaluation %d diverged:\n%+v\n%+v", i, first, again)
		}
	}
}

func TestRun_OutputOrderMatchesInput(t *testing.T) {
	registry := testRegistry(t)

	records := make([]snapshot.Record, 50)
	for i := range records {
		records[i] = warRoomRecord(fmt.Sprintf("rec-%03d", i))
	}

	runner := NewRunner(registry, 4)
	outcomes, err := runner.Run(context.Background(), records)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(outcomes) != len(records) {
		t.Fatalf("expected %d outcomes, got %d", len(records), len(outcomes))
	}
	for i, out := range outcomes {
		if out.RecordID != records[i].ID {
			t.Fatalf("outcome %d landed out of order: %s", i, out.RecordID)
		}
	}
}

func TestRun_ContentIndependentOfConcurrency(t *testing.T) {
	registry := testRegistry(t)

	records := []snapshot.Record{
		warRoomRecord("rec-a"),
		{ID: "rec-b", Status: snapshot.StatusSent, Views: 13, DaysSinceLastEvent: intp(9), RefreshedAt: refreshedAt},
		{ID: "rec-c", Status: snapshot.StatusDraft, EmailOptOut: true, DaysSinceLastEvent: intp(1), RefreshedAt: refreshedAt},
		{ID: "rec-d", Status: snapshot.StatusSigned, InstallCost: 5000, DepositPaid: true, DaysSinceSignature: 1, DaysSinceLastEvent: intp(1), RefreshedAt: refreshedAt},
	}

	serial, err := NewRunner(registry, 1).Run(context.Background(), records)
	if err != nil {
		t.Fatalf("serial run: %v", err)
	}
	parallel, err := NewRunner(registry, 8).Run(context.Background(), records)
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Fatalf("concurrency changed pass content:\n%+v\n%+v", serial, parallel)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	registry := testRegistry(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := []snapshot.Record{warRoomRecord("rec-x")}
	if _, err := NewRunner(registry, 2).Run(ctx, records); err == nil {
		t.Fatalf("expected context cancellation error")
	}
}

func TestRun_EmptyBatch(t *testing.T) {
	outcomes, err := NewRunner(testRegistry(t), 2).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(outcomes))
	}
}
