package axis

import (
	"fmt"

	"solarops/snapshot"
)

// ClassifyA evaluates the signed-contract axis. Perimeter: signed records
// only; everything else returns nil.
//
// The day>14 overdue check is evaluated strictly before reason accumulation
// and short-circuits it. Reason counting can still escalate to WAR_ROOM on
// its own when two independent flags accumulate below day 14.
func ClassifyA(rec snapshot.Record) *Result {
	if rec.Status != snapshot.StatusSigned {
		return nil
	}

	depositOutstanding := !rec.DepositPaid && rec.DepositRequired()

	if depositOutstanding && rec.DaysSinceSignature > 14 {
		return &Result{
			RecordID: rec.ID,
			Axis:     AxisA,
			Status:   StatusWarRoom,
			Reasons: []string{
				fmt.Sprintf("deposit unpaid %d days after signature, past the 14-day legal window", rec.DaysSinceSignature),
			},
			Recommendation: "Escalate to the war room: secure the deposit today or trigger the cancellation clause review.",
		}
	}

	var reasons []string
	if depositOutstanding && rec.DaysSinceSignature >= 7 {
		reasons = append(reasons, fmt.Sprintf("deposit still unpaid %d days after signature", rec.DaysSinceSignature))
	}
	// A record with no client event on file counts as stale contact.
	if idle, hasEvents := rec.IdleDays(); !hasEvents || idle >= 5 {
		reasons = append(reasons, "no client activity for 5 days or more")
	}

	switch len(reasons) {
	case 0:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisA,
			Status:         StatusUnderControl,
			Reasons:        []string{"deposit and client contact both on track"},
			Recommendation: "No action required.",
		}
	case 1:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisA,
			Status:         StatusSecure,
			Reasons:        reasons,
			Recommendation: "Contact the client within 24h to secure the contract.",
		}
	default:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisA,
			Status:         StatusWarRoom,
			Reasons:        reasons,
			Recommendation: "Escalate to the war room: multiple exposure flags on a signed contract.",
		}
	}
}
