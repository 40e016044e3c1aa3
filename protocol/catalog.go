package protocol

import (
	"solarops/signal"
	"solarops/snapshot"
)

func intPtr(v int) *int { return &v }

// DefaultCatalog is the curated built-in protocol catalog. Declaration order
// matters: among entries of equal urgency, the earlier one wins ties during
// selection.
func DefaultCatalog() []Protocol {
	return []Protocol{
		{
			ID:        "PROT-DEPOSIT-WARROOM",
			Name:      "Deposit war room",
			Objective: "Recover a deposit that ran past the 14-day legal window",
			Category:  "financial",
			Urgency:   UrgencyCritical,
			Triggers: Triggers{
				StatusWhitelist:     []snapshot.Status{snapshot.StatusSigned},
				RequiredSignalCodes: []signal.Code{signal.CodeDepositOverdue},
			},
			Steps: []Step{
				{Order: 1, Action: ActionEscalate, Owner: OwnerSystem, Description: "Open a war-room thread with the sales lead and finance."},
				{Order: 2, Action: ActionCall, Owner: OwnerHuman, Description: "Sales lead calls the client about the outstanding deposit."},
				{Order: 3, Action: ActionLegalReview, Owner: OwnerHuman, Description: "Legal reviews the cancellation clause if the call fails."},
			},
			SuccessMetric: "Deposit received within 48h of escalation",
			FailureRisk:   "Contract voidable, full install cost at risk",
		},
		{
			ID:        "PROT-CLOSING-WINDOW",
			Name:      "Closing window sprint",
			Objective: "Secure the deposit while the legal window is still open",
			Category:  "financial",
			Urgency:   UrgencyCritical,
			Triggers: Triggers{
				StatusWhitelist:     []snapshot.Status{snapshot.StatusSigned},
				RequiredSignalCodes: []signal.Code{signal.CodeClosingWindowOpen},
			},
			Steps: []Step{
				{Order: 1, Action: ActionCall, Owner: OwnerHuman, Description: "Rep calls the client the same day."},
				{Order: 2, Action: ActionEmail, Owner: OwnerSystem, Description: "Send the payment link with the window end date spelled out."},
			},
			SuccessMetric: "Deposit received before day 14",
			FailureRisk:   "Window expires and the contract enters the war room",
		},
		{
			ID:        "PROT-HIGH-RISK-REVIEW",
			Name:      "High-risk contract review",
			Objective: "Put any high-risk record in front of a human within a day",
			Category:  "financial",
			Urgency:   UrgencyHigh,
			Triggers: Triggers{
				MinScore: intPtr(60),
			},
			Steps: []Step{
				{Order: 1, Action: ActionTask, Owner: OwnerSystem, Description: "Create a review task on the ops board."},
				{Order: 2, Action: ActionCall, Owner: OwnerHuman, Description: "Ops reviews the dossier and calls the client."},
			},
			SuccessMetric: "Risk score back under 40 within a week",
			FailureRisk:   "Silent slide into the war room",
		},
		{
			ID:        "PROT-GHOST-CHASE",
			Name:      "Ghosting recovery",
			Objective: "Re-open contact with a signed client who went silent",
			Category:  "engagement",
			Urgency:   UrgencyHigh,
			Triggers: Triggers{
				StatusWhitelist:     []snapshot.Status{snapshot.StatusSigned},
				RequiredSignalCodes: []signal.Code{signal.CodeClientGhosting},
			},
			Steps: []Step{
				{Order: 1, Action: ActionCall, Owner: OwnerHuman, Description: "Rep calls outside business-email channels."},
				{Order: 2, Action: ActionTask, Owner: OwnerSystem, Description: "Schedule a follow-up touch in 3 days if unreachable."},
			},
			SuccessMetric: "First client view or reply within 72h",
			FailureRisk:   "Signed contract drifting toward cancellation",
		},
		{
			ID:        "PROT-REENGAGE",
			Name:      "Pipeline re-engagement",
			Objective: "Restart a stalled post-meeting conversation",
			Category:  "engagement",
			Urgency:   UrgencyMedium,
			Triggers: Triggers{
				StatusWhitelist:     []snapshot.Status{snapshot.StatusSent},
				RequiredSignalCodes: []signal.Code{signal.CodeClientStagnation, signal.CodeClientAgitated},
			},
			Steps: []Step{
				{Order: 1, Action: ActionEmail, Owner: OwnerSystem, Description: "Send the tailored recap with the savings projection attached."},
				{Order: 2, Action: ActionCall, Owner: OwnerHuman, Description: "Rep follows up by phone within two days."},
			},
			SuccessMetric: "A new client view or click within 5 days",
			FailureRisk:   "Lead cools past the recovery point",
		},
		{
			ID:        "PROT-FATIGUE-SUPPRESS",
			Name:      "Outreach suppression",
			Objective: "Stop burning a fatigued or muted address with more sends",
			Category:  "engagement",
			Urgency:   UrgencyMedium,
			Triggers: Triggers{
				RequiredSignalCodes: []signal.Code{signal.CodeClientFatigued, signal.CodeClientMuted},
			},
			Steps: []Step{
				{Order: 1, Action: ActionSuppress, Owner: OwnerSystem, Description: "Pause automated sequences for 14 days."},
				{Order: 2, Action: ActionTask, Owner: OwnerSystem, Description: "Flag the record for channel review (phone or postal)."},
			},
			SuccessMetric: "No further sends while suppressed",
			FailureRisk:   "Spam complaint or hard opt-out",
		},
		{
			ID:        "PROT-POWERUSER-UPSELL",
			Name:      "Power-user referral ask",
			Objective: "Turn a highly engaged, secured client into a referral source",
			Category:  "growth",
			Urgency:   UrgencyLow,
			Triggers: Triggers{
				StatusWhitelist:     []snapshot.Status{snapshot.StatusSigned},
				RequiredSignalCodes: []signal.Code{signal.CodeClientPowerUser},
			},
			Steps: []Step{
				{Order: 1, Action: ActionEmail, Owner: OwnerSystem, Description: "Send the referral program invitation."},
			},
			SuccessMetric: "One referral contact within 30 days",
			FailureRisk:   "None; opportunity cost only",
		},
		{
			ID:        "PROT-REAWAKENED-STRIKE",
			Name:      "Reawakened lead strike",
			Objective: "Capitalise on a dormant lead that started viewing again",
			Category:  "engagement",
			Urgency:   UrgencyHigh,
			Triggers: Triggers{
				RequiredSignalCodes: []signal.Code{signal.CodeClientReawakened},
			},
			Steps: []Step{
				{Order: 1, Action: ActionCall, Owner: OwnerHuman, Description: "Rep calls the same day the reawakening is detected."},
			},
			SuccessMetric: "Meeting booked within 48h",
			FailureRisk:   "The second window of interest closes",
		},
		{
			ID:        "PROT-WATCHLIST",
			Name:      "Watch-list grooming",
			Objective: "Keep moderately exposed records under periodic review",
			Category:  "hygiene",
			Urgency:   UrgencyLow,
			Triggers: Triggers{
				MinScore: intPtr(30),
			},
			Steps: []Step{
				{Order: 1, Action: ActionTask, Owner: OwnerSystem, Description: "Add the record to the weekly ops review list."},
			},
			SuccessMetric: "Record reviewed at the next weekly ops meeting",
			FailureRisk:   "Slow unnoticed degradation",
		},
	}
}
