// Package decision merges the three axis outcomes into one operational
// verdict per record.
package decision

import (
	"solarops/axis"
	"solarops/snapshot"
)

// Priority is the merged operational priority of a record.
type Priority string

const (
	PriorityWarRoom Priority = "WAR_ROOM"
	PriorityAction  Priority = "PRIORITY_ACTION"
	PriorityWatch   Priority = "WATCH"
	PriorityStop    Priority = "STOP"
	PriorityNone    Priority = "NONE"
)

// Decision is the single verdict the aggregator emits for one record. It is
// transient: recomputed every pass and never fed back into the pipeline.
type Decision struct {
	RecordID       string
	Priority       Priority
	SourceAxis     axis.Axis // empty when no axis produced an actionable state
	Reasons        []string
	Recommendation string
}

// attempt pairs one axis classifier with the states it is allowed to convert
// into a verdict. States absent from the map fall through to the next axis.
type attempt struct {
	classify func(snapshot.Record) *axis.Result
	verdicts map[axis.Status]Priority
}

// attempts encodes the business precedence: protect signed revenue first
// (axis A), then push the stalled pipeline (B), then triage cold leads (C).
// The order is load-bearing; each attempt may short-circuit the rest.
var attempts = []attempt{
	{
		classify: axis.ClassifyA,
		verdicts: map[axis.Status]Priority{
			axis.StatusWarRoom: PriorityWarRoom,
			axis.StatusSecure:  PriorityAction,
		},
	},
	{
		classify: axis.ClassifyB,
		verdicts: map[axis.Status]Priority{
			axis.StatusFollowUp: PriorityAction,
			axis.StatusWatch:    PriorityWatch,
		},
	},
	{
		classify: axis.ClassifyC,
		verdicts: map[axis.Status]Priority{
			axis.StatusCall: PriorityAction,
			axis.StatusDrop: PriorityStop,
		},
	},
}

// Aggregate walks the axis attempts in precedence order and returns the first
// actionable verdict. Records outside every perimeter, or whose axis states
// map to no action, yield a NONE decision with no source axis.
func Aggregate(rec snapshot.Record) Decision {
	for _, at := range attempts {
		res := at.classify(rec)
		if res == nil {
			continue
		}
		priority, ok := at.verdicts[res.Status]
		if !ok {
			continue
		}
		return Decision{
			RecordID:       rec.ID,
			Priority:       priority,
			SourceAxis:     res.Axis,
			Reasons:        res.Reasons,
			Recommendation: res.Recommendation,
		}
	}

	return Decision{
		RecordID: rec.ID,
		Priority: PriorityNone,
	}
}
