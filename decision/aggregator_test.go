package decision

import (
	"testing"

	"solarops/axis"
	"solarops/snapshot"
)

func intp(v int) *int { return &v }

func TestAggregate_WarRoomFromAxisA(t *testing.T) {
	rec := snapshot.Record{
		ID:                 "rec-1",
		Status:             snapshot.StatusSigned,
		InstallCost:        20000,
		DaysSinceSignature: 15,
		DaysSinceLastEvent: intp(1),
	}
	dec := Aggregate(rec)
	if dec.Priority != PriorityWarRoom || dec.SourceAxis != axis.AxisA {
		t.Fatalf("expected WAR_ROOM from axis A, got %+v", dec)
	}
}

func TestAggregate_AxisBFollowUp(t *testing.T) {
	rec := snapshot.Record{
		ID:                 "rec-3",
		Status:             snapshot.StatusSent,
		Views:              13, // interaction score 65
		DaysSinceLastEvent: intp(9),
	}
	dec := Aggregate(rec)
	if dec.Priority != PriorityAction || dec.SourceAxis != axis.AxisB {
		t.Fatalf("expected PRIORITY_ACTION from axis B, got %+v", dec)
	}
}

func TestAggregate_AxisCOptOut(t *testing.T) {
	rec := snapshot.Record{
		ID:                 "rec-4",
		Status:             snapshot.StatusDraft,
		EmailOptOut:        true,
		DaysSinceLastEvent: intp(1),
	}
	dec := Aggregate(rec)
	if dec.Priority != PriorityStop || dec.SourceAxis != axis.AxisC {
		t.Fatalf("expected STOP from axis C, got %+v", dec)
	}
}

// A record qualifying on axis A always resolves on axis A, even when axis C
// would also have something to say: signed revenue outranks lead triage.
func TestAggregate_AxisAPrecedesLowerAxes(t *testing.T) {
	rec := snapshot.Record{
		ID:                 "rec-prec",
		Status:             snapshot.StatusSigned,
		InstallCost:        20000,
		DaysSinceSignature: 15,
		DaysSinceLastEvent: intp(40),
		EmailOptOut:        true,
	}
	dec := Aggregate(rec)
	if dec.SourceAxis != axis.AxisA {
		t.Fatalf("axis A must take precedence, got %+v", dec)
	}
	if dec.Priority != PriorityWarRoom {
		t.Fatalf("expected WAR_ROOM, got %s", dec.Priority)
	}
}

// A signed contract fully under control maps to no action on any axis: axis A
// yields SOUS_CONTROLE (not actionable) and B/C exclude signed records.
func TestAggregate_NoAxisYieldsNone(t *testing.T) {
	rec := snapshot.Record{
		ID:                 "rec-none",
		Status:             snapshot.StatusSigned,
		InstallCost:        20000,
		DaysSinceSignature: 2,
		DepositPaid:        true,
		DaysSinceLastEvent: intp(1),
	}
	dec := Aggregate(rec)
	if dec.Priority != PriorityNone {
		t.Fatalf("expected NONE, got %+v", dec)
	}
	if dec.SourceAxis != "" {
		t.Fatalf("NONE decision must carry no source axis, got %q", dec.SourceAxis)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	rec := snapshot.Record{
		ID:                 "rec-det",
		Status:             snapshot.StatusSent,
		Views:              13,
		DaysSinceLastEvent: intp(9),
	}
	first := Aggregate(rec)
	second := Aggregate(rec)
	if first.Priority != second.Priority || first.SourceAxis != second.SourceAxis {
		t.Fatalf("aggregation diverged: %+v vs %+v", first, second)
	}
}
