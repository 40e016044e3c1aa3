// Package scoring reduces one snapshot record to bounded operational scores.
// Every function here is pure: same record in, same numbers out, no state.
package scoring

import (
	"math"

	"solarops/signal"
	"solarops/snapshot"
)

// Result bundles the scores computed for one record during a pass.
type Result struct {
	RecordID    string
	Risk        int
	Inertia     int
	Health      int
	Interaction int
	CVI         int
}

// Score computes every engine for rec. Health is derived fresh from the risk
// and inertia values of this same call, never cached.
func Score(rec snapshot.Record, signals []signal.Signal) Result {
	risk := Risk(rec)
	inertia := Inertia(rec)
	return Result{
		RecordID:    rec.ID,
		Risk:        risk,
		Inertia:     inertia,
		Health:      Health(risk, inertia),
		Interaction: Interaction(rec),
		CVI:         CVI(rec, signals),
	}
}

// Risk scores the financial exposure of a record on [0,100].
func Risk(rec snapshot.Record) int {
	score := 0

	unsecured := rec.Status == snapshot.StatusSigned && !rec.DepositPaid && rec.DepositRequired()
	switch {
	case unsecured && rec.DaysSinceSignature > 14:
		score += 60
	case unsecured && rec.DaysSinceSignature >= 8:
		score += 40
	}

	// A record with no client event on file is scored like the stalest one:
	// absence of contact history is never grounds for optimism.
	idle, hasEvents := rec.IdleDays()
	switch {
	case !hasEvents || idle > 10:
		score += 25
	case idle >= 6:
		score += 15
	}

	if rec.EmailOptOut {
		score += 100
	}
	if rec.DepositPaid {
		score -= 40
	}
	if hasEvents && idle <= 2 {
		score -= 15
	}

	return clamp(score)
}

// Inertia scores how stalled the client relationship is on [0,100].
func Inertia(rec snapshot.Record) int {
	idle, hasEvents := rec.IdleDays()
	if !hasEvents {
		return 60
	}

	score := 0
	switch {
	case idle > 14:
		score += 50
	case idle >= 7:
		score += 35
	case idle >= 4:
		score += 20
	}
	if idle <= 2 {
		score -= 25
	}

	return clamp(score)
}

// Health is the composite wellbeing of a record: 100 minus a weighted mix of
// risk and inertia, rounded and clamped to [0,100].
func Health(risk, inertia int) int {
	return clamp(int(math.Round(100 - 0.6*float64(risk) - 0.4*float64(inertia))))
}

// Interaction maps raw view and click counters to a [0,100] momentum score
// consumed by the post-meeting axis.
func Interaction(rec snapshot.Record) int {
	return clamp(5*rec.Views + 20*rec.Clicks)
}

// CVI is the customer value index: a composite of the dominant risk drivers,
// weighting risk, inertia and the most severe detected signal.
func CVI(rec snapshot.Record, signals []signal.Signal) int {
	maxSeverity := 0.0
	for _, sig := range signals {
		if sig.Severity > maxSeverity {
			maxSeverity = sig.Severity
		}
	}
	raw := 0.5*float64(Risk(rec)) + 0.2*float64(Inertia(rec)) + 30*maxSeverity
	return clamp(int(math.Round(raw)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
