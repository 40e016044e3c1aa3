package audit

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"solarops/decision"
	"solarops/pipeline"
)

// Recorder turns pipeline outcomes into audit entries. Writes are best-effort
// from the pipeline's point of view: the caller decides whether a failed
// shadow write is worth more than a log line.
type Recorder struct {
	writer Writer
	now    func() time.Time
}

// NewRecorder builds a recorder over the given sink. A nil clock defaults to
// time.Now.
func NewRecorder(writer Writer, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{writer: writer, now: now}
}

// Record shadow-writes one outcome. NONE decisions are skipped: an absent
// verdict is a normal terminal value, not an action worth auditing.
func (r *Recorder) Record(ctx context.Context, out pipeline.Outcome) error {
	if out.Decision.Priority == "" || out.Decision.Priority == decision.PriorityNone {
		return nil
	}

	action := "decision:" + string(out.Decision.Priority)
	if out.Action != nil {
		action = "protocol:" + out.Action.PrimaryProtocol.ID
	}

	entry := Entry{
		ID:              uuid.NewString(),
		RecordID:        out.RecordID,
		ActionPerformed: action,
		Justification:   strings.Join(out.Decision.Reasons, "; "),
		SourceAxis:      out.Decision.SourceAxis,
		Priority:        out.Decision.Priority,
		RiskScore:       out.Scores.Risk,
		HealthScore:     out.Scores.Health,
		CreatedAt:       r.now().UTC(),
	}

	return r.writer.Append(ctx, entry)
}
