package axis

import (
	"fmt"

	"solarops/snapshot"
)

// ClassifyC evaluates the cold-lead triage axis. Perimeter: every record that
// is not signed. Opt-out is an absolute override and is checked first.
func ClassifyC(rec snapshot.Record) *Result {
	if rec.Status == snapshot.StatusSigned {
		return nil
	}

	if rec.EmailOptOut {
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisC,
			Status:         StatusDrop,
			Reasons:        []string{"client opted out of contact"},
			Recommendation: "Stop all outreach; flag the record for removal from call lists.",
		}
	}

	idle, hasEvents := rec.IdleDays()
	switch {
	case !hasEvents:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisC,
			Status:         StatusObserve,
			Reasons:        []string{"no interaction history on file"},
			Recommendation: "Keep under passive watch until a first client event lands.",
		}
	case idle >= 30:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisC,
			Status:         StatusDrop,
			Reasons:        []string{fmt.Sprintf("lead idle for %d days", idle)},
			Recommendation: "Abandon the lead; recycle the slot toward fresher prospects.",
		}
	case idle <= 7:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisC,
			Status:         StatusCall,
			Reasons:        []string{fmt.Sprintf("recent activity, %d days since last event", idle)},
			Recommendation: "Priority human call while the lead is warm.",
		}
	default:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisC,
			Status:         StatusObserve,
			Reasons:        []string{fmt.Sprintf("lead cooling, %d days since last event", idle)},
			Recommendation: "Passive watch; no outreach for now.",
		}
	}
}
