package snapshot

import "time"

// Status is the lifecycle state of a sales record as reported by the CRM.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusSigned    Status = "signed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether the status is one of the four known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusSigned, StatusCancelled:
		return true
	}
	return false
}

// Record is one row of the sales snapshot: a contract or lead frozen at
// refresh time. It is read-only for the duration of a pipeline pass; a new
// snapshot fully replaces the previous one, there is no incremental mutation.
type Record struct {
	ID                 string
	Status             Status
	InstallCost        float64
	DaysSinceSignature int
	// DaysSinceLastEvent is nil when no client event was ever recorded.
	DaysSinceLastEvent *int
	DepositPaid        bool
	Views              int
	Clicks             int
	Sends              int
	EmailOptOut        bool
	RefreshedAt        time.Time
}

// DepositRequired reports whether the contract carries a deposit obligation.
// Zero-cost records (e.g. free audits) never owe a deposit.
func (r Record) DepositRequired() bool {
	return r.InstallCost > 0
}

// IdleDays returns the days since the last client event and whether any
// client event was ever recorded.
func (r Record) IdleDays() (int, bool) {
	if r.DaysSinceLastEvent == nil {
		return 0, false
	}
	return *r.DaysSinceLastEvent, true
}
