// Package axis buckets each snapshot record into one discrete operational
// state per classification lens: A covers signed-contract exposure, B covers
// post-meeting pipeline momentum, C covers cold-lead triage.
package axis

// Axis names one of the three classification lenses.
type Axis string

const (
	AxisA Axis = "A"
	AxisB Axis = "B"
	AxisC Axis = "C"
)

// Status is an axis-specific operational state. The values are the canonical
// state names used across the sales organisation and its reporting.
type Status string

const (
	// Axis A states, most severe first.
	StatusWarRoom      Status = "WAR_ROOM"
	StatusSecure       Status = "A_SECURISER"
	StatusUnderControl Status = "SOUS_CONTROLE"

	// Axis B states.
	StatusFollowUp Status = "A_RELANCER"
	StatusWatch    Status = "A_SURVEILLER"

	// Axis C states.
	StatusCall    Status = "A_APPELER"
	StatusObserve Status = "A_OBSERVER"
	StatusDrop    Status = "A_ABANDONNER"
)

// Result is the outcome of one axis classifier for one record. Classifiers
// return nil when the record sits outside their perimeter.
type Result struct {
	RecordID       string
	Axis           Axis
	Status         Status
	Reasons        []string
	Recommendation string
}
