package signal

import "solarops/snapshot"

// legalWindowDays is the statutory deposit window counted from signature.
const legalWindowDays = 14

// DetectAll runs the three detector families over rec and concatenates their
// output. The families are independent: none of them reads or suppresses the
// facts produced by a sibling, so overlapping signals are expected.
func DetectAll(rec snapshot.Record) []Signal {
	var out []Signal
	out = append(out, DetectFinancial(rec)...)
	out = append(out, DetectEngagement(rec)...)
	out = append(out, DetectContract(rec)...)
	return out
}

// DetectFinancial flags deposit-timing facts on signed contracts.
func DetectFinancial(rec snapshot.Record) []Signal {
	if rec.Status != snapshot.StatusSigned || rec.DepositPaid || !rec.DepositRequired() {
		return nil
	}

	meta := map[string]any{
		"days_since_signature": rec.DaysSinceSignature,
		"install_cost":         rec.InstallCost,
	}
	if rec.DaysSinceSignature > legalWindowDays {
		return []Signal{newSignal(rec, CodeDepositOverdue, 0.95, 1, "detector.financial", meta)}
	}
	return []Signal{newSignal(rec, CodeDepositMissingInWindow, 0.6, 1, "detector.financial", meta)}
}

// DetectEngagement classifies interaction volume into behavioral facts.
// Thresholds are fixed integer cut-offs with inclusive ">=" semantics.
func DetectEngagement(rec snapshot.Record) []Signal {
	var out []Signal
	idle, hasEvents := rec.IdleDays()

	if rec.Views == 0 && rec.Clicks == 0 {
		out = append(out, newSignal(rec, CodeClientMuted, 0.5, 0.9, "detector.engagement", nil))
	}
	if rec.Sends >= 4 && rec.Views == 0 {
		out = append(out, newSignal(rec, CodeClientFatigued, 0.7, 0.85, "detector.engagement", map[string]any{
			"sends": rec.Sends,
		}))
	}
	if rec.Views >= 3 && rec.Clicks == 0 {
		out = append(out, newSignal(rec, CodeClientAgitated, 0.55, 0.8, "detector.engagement", map[string]any{
			"views": rec.Views,
		}))
	}
	if rec.Views >= 15 && rec.Status == snapshot.StatusSigned && rec.DepositPaid {
		out = append(out, newSignal(rec, CodeClientPowerUser, 0.1, 0.95, "detector.engagement", map[string]any{
			"views": rec.Views,
		}))
	}
	if rec.Status == snapshot.StatusSent && hasEvents && idle > 14 && rec.Views < 3 {
		out = append(out, newSignal(rec, CodeClientStagnation, 0.65, 0.85, "detector.engagement", map[string]any{
			"idle_days": idle,
		}))
	}
	if rec.Status == snapshot.StatusSigned && rec.DaysSinceSignature > 3 && rec.Views == 0 {
		out = append(out, newSignal(rec, CodeClientGhosting, 0.8, 0.9, "detector.engagement", map[string]any{
			"days_since_signature": rec.DaysSinceSignature,
		}))
	}
	if hasEvents && idle > 30 && rec.Views > 2 {
		out = append(out, newSignal(rec, CodeClientReawakened, 0.3, 0.7, "detector.engagement", map[string]any{
			"idle_days": idle,
			"views":     rec.Views,
		}))
	}

	return out
}

// DetectContract flags signature state and the closing legal window.
func DetectContract(rec snapshot.Record) []Signal {
	if rec.Status != snapshot.StatusSigned {
		return nil
	}

	out := []Signal{newSignal(rec, CodeSignatureConfirmed, 0.1, 1, "detector.contract", nil)}

	// 12 to 14 days inclusive: the last stretch of the legal window where a
	// missing deposit can still be recovered without voiding the contract.
	if !rec.DepositPaid && rec.DepositRequired() &&
		rec.DaysSinceSignature >= 12 && rec.DaysSinceSignature <= legalWindowDays {
		out = append(out, newSignal(rec, CodeClosingWindowOpen, 0.85, 1, "detector.contract", map[string]any{
			"days_since_signature": rec.DaysSinceSignature,
		}))
	}

	return out
}
