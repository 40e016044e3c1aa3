package protocol

import (
	"strings"
	"testing"
)

const sampleCatalog = `
protocols:
  - id: PROT-YAML-1
    name: Deposit chase
    objective: Secure the deposit
    category: financial
    urgency: CRITICAL
    triggers:
      status_whitelist: [signed]
      required_signal_codes: [FINANCIAL.DEPOSIT.OVERDUE]
    steps:
      - order: 1
        action: CALL
        owner: HUMAN
        description: Call the client
    success_metric: Deposit in
    failure_risk: Contract voided
  - id: PROT-YAML-2
    name: Watch list
    objective: Review weekly
    category: hygiene
    urgency: LOW
    triggers:
      min_score: 30
    steps:
      - order: 1
        action: TASK
        owner: SYSTEM
        description: Add to list
    success_metric: Reviewed
    failure_risk: Drift
`

func TestReadCatalog_Valid(t *testing.T) {
	r, err := ReadCatalog(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	protocols := r.Protocols()
	if len(protocols) != 2 {
		t.Fatalf("expected 2 protocols, got %d", len(protocols))
	}
	if protocols[0].ID != "PROT-YAML-1" || protocols[1].ID != "PROT-YAML-2" {
		t.Fatalf("declaration order must survive loading: %+v", protocols)
	}
	if protocols[1].Triggers.MinScore == nil || *protocols[1].Triggers.MinScore != 30 {
		t.Fatalf("min_score not decoded: %+v", protocols[1].Triggers)
	}
}

func TestReadCatalog_RejectsUnknownField(t *testing.T) {
	bad := strings.Replace(sampleCatalog, "min_score: 30", "min_scoore: 30", 1)
	if _, err := ReadCatalog(strings.NewReader(bad)); err == nil {
		t.Fatalf("a misspelled trigger key must fail loading, not silently disable the protocol")
	}
}

func TestReadCatalog_RejectsInvalidEntry(t *testing.T) {
	bad := strings.Replace(sampleCatalog, "urgency: LOW", "urgency: WHENEVER", 1)
	if _, err := ReadCatalog(strings.NewReader(bad)); err == nil {
		t.Fatalf("catalog validation must run on loaded files")
	}
}
