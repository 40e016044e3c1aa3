package protocol

import (
	"sort"
	"time"

	"solarops/decision"
	"solarops/scoring"
	"solarops/signal"
	"solarops/snapshot"
)

// Deadline labels derived from the primary protocol's urgency. The deadline
// is never stored in the catalog.
const (
	DeadlineImmediate = "immediate"
	Deadline24h       = "24h"
)

const maxSecondaryProtocols = 2

// SelectParams carries everything selection needs for one record.
type SelectParams struct {
	RecordID    string
	Status      snapshot.Status
	Scores      scoring.Result
	Signals     []signal.Signal
	Priority    decision.Priority
	Reason      string
	Stake       float64
	GeneratedAt time.Time
}

// Select matches the record against the catalog and prescribes the best
// eligible protocol, with up to two runners-up attached as secondaries.
// It returns nil when nothing in the catalog is eligible; that is a normal
// outcome, not an error.
func (r *Registry) Select(params SelectParams) *PrescribedAction {
	eligible := make([]Protocol, 0, len(r.ordered))
	for _, p := range r.ordered {
		if matches(p, params.Status, params.Scores, params.Signals) {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	// Stable: catalog declaration order breaks ties between equal urgencies.
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Urgency.Rank() > eligible[j].Urgency.Rank()
	})

	primary := eligible[0]
	secondaries := eligible[1:]
	if len(secondaries) > maxSecondaryProtocols {
		secondaries = secondaries[:maxSecondaryProtocols]
	}

	deadline := Deadline24h
	if primary.Urgency == UrgencyCritical {
		deadline = DeadlineImmediate
	}

	return &PrescribedAction{
		ID:                 params.RecordID + ":" + primary.ID,
		RecordID:           params.RecordID,
		Priority:           params.Priority,
		Reason:             params.Reason,
		PrimaryProtocol:    primary,
		SecondaryProtocols: append([]Protocol(nil), secondaries...),
		Payload: Payload{
			Stake:   params.Stake,
			Summary: primary.Name + ": " + primary.Objective,
		},
		GeneratedAt: params.GeneratedAt,
		Deadline:    deadline,
	}
}

// matches implements trigger evaluation: the status whitelist (when present)
// must admit the record, and either a required signal fired or the risk score
// reached the protocol's minimum.
func matches(p Protocol, status snapshot.Status, scores scoring.Result, signals []signal.Signal) bool {
	if len(p.Triggers.StatusWhitelist) > 0 {
		admitted := false
		for _, s := range p.Triggers.StatusWhitelist {
			if s == status {
				admitted = true
				break
			}
		}
		if !admitted {
			return false
		}
	}

	for _, required := range p.Triggers.RequiredSignalCodes {
		for _, sig := range signals {
			if sig.Code == required {
				return true
			}
		}
	}

	return p.Triggers.MinScore != nil && scores.Risk >= *p.Triggers.MinScore
}
