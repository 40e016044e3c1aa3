package axis

import (
	"fmt"

	"solarops/scoring"
	"solarops/snapshot"
)

// behaviour is the intermediate interaction bucket used by Axis B.
type behaviour string

const (
	behaviourInterested behaviour = "interested"
	behaviourAgitated   behaviour = "agitated"
	behaviourMuted      behaviour = "muted"
	behaviourNeutral    behaviour = "neutral"
)

// ClassifyB evaluates the post-meeting pipeline axis. Perimeter: sent,
// unsigned records with no deposit on file.
func ClassifyB(rec snapshot.Record) *Result {
	if rec.Status != snapshot.StatusSent || rec.DepositPaid {
		return nil
	}

	interaction := scoring.Interaction(rec)
	idle, hasEvents := rec.IdleDays()
	// No recorded event reads as an idle stretch beyond every threshold.
	longIdle := !hasEvents || idle > 7

	var b behaviour
	switch {
	case interaction >= 60:
		b = behaviourInterested
	case interaction >= 30:
		b = behaviourAgitated
	case longIdle:
		b = behaviourMuted
	default:
		b = behaviourNeutral
	}

	switch {
	case b == behaviourInterested && longIdle:
		return &Result{
			RecordID: rec.ID,
			Axis:     AxisB,
			Status:   StatusFollowUp,
			Reasons: []string{
				fmt.Sprintf("high interaction score (%d) but idle for more than 7 days", interaction),
			},
			Recommendation: "Call immediately: the client is interested and going cold.",
		}
	case b == behaviourMuted:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisB,
			Status:         StatusWatch,
			Reasons:        []string{"client muted: no meaningful interaction on file"},
			Recommendation: "Do not re-engage; keep on the watch list.",
		}
	default:
		return &Result{
			RecordID:       rec.ID,
			Axis:           AxisB,
			Status:         StatusWatch,
			Reasons:        []string{fmt.Sprintf("behaviour %q does not warrant outreach", b)},
			Recommendation: "No action.",
		}
	}
}
