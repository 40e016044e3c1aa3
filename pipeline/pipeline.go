// Package pipeline chains the ops-intelligence stages for one snapshot pass:
// signal detection, scoring, axis classification, decision aggregation and
// protocol selection. Every stage is pure; the batch driver only fans records
// out and collects results.
package pipeline

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"solarops/axis"
	"solarops/decision"
	"solarops/protocol"
	"solarops/scoring"
	"solarops/signal"
	"solarops/snapshot"
)

// Outcome is everything the pipeline derives for one record in one pass.
// It is handed to the output boundary (rendering, audit) and discarded;
// nothing in it feeds back into a later pass.
type Outcome struct {
	RecordID string
	Signals  []signal.Signal
	Scores   scoring.Result
	AxisA    *axis.Result
	AxisB    *axis.Result
	AxisC    *axis.Result
	Decision decision.Decision
	// Action is nil when no catalog protocol was eligible.
	Action *protocol.PrescribedAction
}

// Evaluate runs the full stage chain for a single record. Deterministic:
// identical record and catalog always produce an identical outcome.
func Evaluate(registry *protocol.Registry, rec snapshot.Record) Outcome {
	signals := signal.DetectAll(rec)
	scores := scoring.Score(rec, signals)
	dec := decision.Aggregate(rec)

	out := Outcome{
		RecordID: rec.ID,
		Signals:  signals,
		Scores:   scores,
		AxisA:    axis.ClassifyA(rec),
		AxisB:    axis.ClassifyB(rec),
		AxisC:    axis.ClassifyC(rec),
		Decision: dec,
	}

	out.Action = registry.Select(protocol.SelectParams{
		RecordID:    rec.ID,
		Status:      rec.Status,
		Scores:      scores,
		Signals:     signals,
		Priority:    dec.Priority,
		Reason:      strings.Join(dec.Reasons, "; "),
		Stake:       rec.InstallCost,
		GeneratedAt: rec.RefreshedAt,
	})

	return out
}

// Runner drives one pass over a snapshot batch. Records share no mutable
// state, so they are evaluated concurrently; outcomes land at the index of
// the record that produced them, keeping output order independent of
// completion order.
type Runner struct {
	registry    *protocol.Registry
	concurrency int
}

// NewRunner builds a batch runner over a validated protocol registry.
// Concurrency below 1 falls back to 8 workers.
func NewRunner(registry *protocol.Registry, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 8
	}
	return &Runner{registry: registry, concurrency: concurrency}
}

// Run evaluates every record of the batch and returns one outcome per input
// record, in input order. The only error source is context cancellation.
func (r *Runner) Run(ctx context.Context, records []snapshot.Record) ([]Outcome, error) {
	outcomes := make([]Outcome, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = Evaluate(r.registry, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}
