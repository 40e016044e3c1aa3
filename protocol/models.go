// Package protocol holds the static catalog of remediation playbooks and the
// selector that matches records against it.
package protocol

import (
	"time"

	"solarops/decision"
	"solarops/signal"
	"solarops/snapshot"
)

// Urgency ranks how fast a protocol must be engaged.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// Rank converts an urgency to its sort weight. Unknown urgencies rank zero,
// below LOW; the registry rejects them before selection ever sees one.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

// Owner identifies who executes a protocol step.
type Owner string

const (
	OwnerSystem Owner = "SYSTEM"
	OwnerHuman  Owner = "HUMAN"
)

// ActionType is the kind of work a protocol step prescribes. The set is
// closed: referencing an unregistered action type is a configuration error.
type ActionType string

const (
	ActionCall        ActionType = "CALL"
	ActionEmail       ActionType = "EMAIL"
	ActionTask        ActionType = "TASK"
	ActionEscalate    ActionType = "ESCALATE"
	ActionSuppress    ActionType = "SUPPRESS"
	ActionLegalReview ActionType = "LEGAL_REVIEW"
)

func knownActionType(a ActionType) bool {
	switch a {
	case ActionCall, ActionEmail, ActionTask, ActionEscalate, ActionSuppress, ActionLegalReview:
		return true
	}
	return false
}

// Step is one ordered action inside a protocol playbook.
type Step struct {
	Order       int        `yaml:"order"`
	Action      ActionType `yaml:"action"`
	Owner       Owner      `yaml:"owner"`
	Description string     `yaml:"description"`
}

// Triggers gates protocol eligibility. A protocol matches a record when the
// status whitelist (if any) admits the record's status AND either one of the
// required signal codes was detected or the minimum risk score is met.
type Triggers struct {
	StatusWhitelist     []snapshot.Status `yaml:"status_whitelist"`
	MinScore            *int              `yaml:"min_score"`
	RequiredSignalCodes []signal.Code     `yaml:"required_signal_codes"`
}

// Protocol is one immutable catalog entry: a named remediation playbook.
// Catalog declaration order is curated and breaks urgency ties.
type Protocol struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Objective     string   `yaml:"objective"`
	Category      string   `yaml:"category"`
	Urgency       Urgency  `yaml:"urgency"`
	Triggers      Triggers `yaml:"triggers"`
	Steps         []Step   `yaml:"steps"`
	SuccessMetric string   `yaml:"success_metric"`
	FailureRisk   string   `yaml:"failure_risk"`
}

// Payload carries the business context attached to a prescribed action.
type Payload struct {
	Stake   float64
	Summary string
}

// PrescribedAction is the externally visible output of protocol selection
// for one record during one pass.
type PrescribedAction struct {
	ID                 string
	RecordID           string
	Priority           decision.Priority
	Reason             string
	PrimaryProtocol    Protocol
	SecondaryProtocols []Protocol
	Payload            Payload
	GeneratedAt        time.Time
	Deadline           string
}
