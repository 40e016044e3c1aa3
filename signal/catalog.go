package signal

import (
	"fmt"

	"solarops/snapshot"
)

// Code identifies a signal kind using the DOMAIN.ENTITY.EVENT convention.
type Code string

const (
	CodeDepositMissingInWindow Code = "FINANCIAL.DEPOSIT.MISSING_IN_WINDOW"
	CodeDepositOverdue         Code = "FINANCIAL.DEPOSIT.OVERDUE"

	CodeClientMuted      Code = "ENGAGEMENT.CLIENT.MUTED"
	CodeClientFatigued   Code = "ENGAGEMENT.CLIENT.FATIGUED"
	CodeClientAgitated   Code = "ENGAGEMENT.CLIENT.AGITATED"
	CodeClientPowerUser  Code = "ENGAGEMENT.CLIENT.POWER_USER"
	CodeClientStagnation Code = "ENGAGEMENT.PIPELINE.STAGNATION"
	CodeClientGhosting   Code = "ENGAGEMENT.CLIENT.GHOSTING"
	CodeClientReawakened Code = "ENGAGEMENT.CLIENT.REAWAKENED"

	CodeSignatureConfirmed Code = "CONTRACT.SIGNATURE.CONFIRMED"
	CodeClosingWindowOpen  Code = "CONTRACT.DEPOSIT.CLOSING_WINDOW"
)

// descriptor is the static definition backing a signal code.
type descriptor struct {
	domain      Domain
	label       string
	description string
}

// catalog is the read-only signal-code registry. It is built once at package
// init; any reference to a code outside this map is a configuration error and
// must be rejected before the pipeline runs.
var catalog = map[Code]descriptor{
	CodeDepositMissingInWindow: {
		domain:      DomainFinancial,
		label:       "Deposit outstanding within legal window",
		description: "Contract signed, deposit unpaid, still inside the 14-day legal window.",
	},
	CodeDepositOverdue: {
		domain:      DomainFinancial,
		label:       "Deposit overdue",
		description: "Contract signed more than 14 days ago and the deposit was never received.",
	},
	CodeClientMuted: {
		domain:      DomainEngagement,
		label:       "Client muted",
		description: "No views and no clicks recorded for this client.",
	},
	CodeClientFatigued: {
		domain:      DomainEngagement,
		label:       "Client fatigued",
		description: "Four or more sends without a single view.",
	},
	CodeClientAgitated: {
		domain:      DomainEngagement,
		label:       "Client agitated",
		description: "Three or more views without any click.",
	},
	CodeClientPowerUser: {
		domain:      DomainEngagement,
		label:       "Power user",
		description: "Signed, deposit paid and fifteen or more views.",
	},
	CodeClientStagnation: {
		domain:      DomainEngagement,
		label:       "Pipeline stagnation",
		description: "Sent more than 14 days ago with fewer than three views.",
	},
	CodeClientGhosting: {
		domain:      DomainEngagement,
		label:       "Client ghosting",
		description: "Signed more than three days ago and never viewed since.",
	},
	CodeClientReawakened: {
		domain:      DomainEngagement,
		label:       "Client reawakened",
		description: "More than two views after an idle stretch beyond thirty days.",
	},
	CodeSignatureConfirmed: {
		domain:      DomainContract,
		label:       "Signature confirmed",
		description: "The contract carries a client signature.",
	},
	CodeClosingWindowOpen: {
		domain:      DomainContract,
		label:       "Closing legal window",
		description: "Deposit outstanding with 12 to 14 days elapsed since signature.",
	},
}

// Known reports whether code exists in the signal-code registry.
func Known(code Code) bool {
	_, ok := catalog[code]
	return ok
}

// Codes returns every registered signal code. Order is unspecified.
func Codes() []Code {
	out := make([]Code, 0, len(catalog))
	for code := range catalog {
		out = append(out, code)
	}
	return out
}

// newSignal materialises a signal for rec from the registry entry for code.
// DetectedAt is pinned to the snapshot refresh time so repeated passes over
// the same snapshot produce identical output.
func newSignal(rec snapshot.Record, code Code, severity, confidence float64, source string, metadata map[string]any) Signal {
	desc, ok := catalog[code]
	if !ok {
		// Detectors only emit codes declared above; reaching this means the
		// registry and a detector went out of sync at build time.
		panic(fmt.Sprintf("signal: detector emitted unregistered code %q", code))
	}
	return Signal{
		ID:          rec.ID + "/" + string(code),
		Code:        code,
		Domain:      desc.domain,
		Severity:    severity,
		Confidence:  confidence,
		Label:       desc.label,
		Description: desc.description,
		DetectedAt:  rec.RefreshedAt,
		Source:      source,
		Metadata:    metadata,
	}
}
