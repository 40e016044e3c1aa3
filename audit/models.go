package audit

import (
	"time"

	"solarops/axis"
	"solarops/decision"
)

// Entry is one shadow-written audit row: it records what the pipeline
// decided, never influences what it decides. The pipeline does not read
// previously written entries.
type Entry struct {
	ID              string
	RecordID        string
	ActionPerformed string
	Justification   string
	SourceAxis      axis.Axis
	Priority        decision.Priority
	RiskScore       int
	HealthScore     int
	CreatedAt       time.Time
}
