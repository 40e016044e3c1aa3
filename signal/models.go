package signal

import "time"

// Domain groups signal codes by the business area they describe.
type Domain string

const (
	DomainFinancial  Domain = "FINANCIAL"
	DomainEngagement Domain = "ENGAGEMENT"
	DomainContract   Domain = "CONTRACT"
	DomainHistorical Domain = "HISTORICAL"
	DomainSystemic   Domain = "SYSTEMIC"
)

// Signal is one normalized, timestamped fact derived from a snapshot record.
// Signals are recomputed from scratch on every pass and never written back to
// the source record. Several signals may coexist for one record; overlapping
// facts are kept as-is, there is no deduplication.
type Signal struct {
	ID          string
	Code        Code
	Domain      Domain
	Severity    float64
	Confidence  float64
	Label       string
	Description string
	DetectedAt  time.Time
	Source      string
	Metadata    map[string]any
}
