package protocol

import (
	"fmt"

	"solarops/signal"
)

// ConfigError reports a governance defect in the protocol catalog. It is
// raised while building the registry, before any record is evaluated: a
// decision surface referencing unregistered codes or actions must abort
// startup rather than be silently skipped.
type ConfigError struct {
	ProtocolID string
	Detail     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("protocol: invalid catalog entry %q: %s", e.ProtocolID, e.Detail)
}

// Registry is the validated, read-only protocol catalog. Built once at
// process start and never mutated afterwards.
type Registry struct {
	ordered []Protocol
	byID    map[string]Protocol
}

// NewRegistry validates the catalog eagerly and freezes it. Declaration
// order is preserved; it encodes curated priority among equal urgencies.
func NewRegistry(catalog []Protocol) (*Registry, error) {
	if len(catalog) == 0 {
		return nil, &ConfigError{Detail: "catalog is empty"}
	}

	r := &Registry{
		ordered: make([]Protocol, len(catalog)),
		byID:    make(map[string]Protocol, len(catalog)),
	}
	copy(r.ordered, catalog)

	for _, p := range r.ordered {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, &ConfigError{ProtocolID: p.ID, Detail: "duplicate protocol id"}
		}
		r.byID[p.ID] = p
	}

	return r, nil
}

// MustNewRegistry is NewRegistry for static catalogs wired at startup, where
// a bad catalog must stop the process.
func MustNewRegistry(catalog []Protocol) *Registry {
	r, err := NewRegistry(catalog)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the protocol registered under id.
func (r *Registry) Get(id string) (Protocol, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Protocols returns the catalog in declaration order.
func (r *Registry) Protocols() []Protocol {
	out := make([]Protocol, len(r.ordered))
	copy(out, r.ordered)
	return out
}

func validate(p Protocol) error {
	if p.ID == "" {
		return &ConfigError{Detail: "protocol id is empty"}
	}
	if p.Name == "" {
		return &ConfigError{ProtocolID: p.ID, Detail: "name is empty"}
	}
	if p.Urgency.Rank() == 0 {
		return &ConfigError{ProtocolID: p.ID, Detail: fmt.Sprintf("unknown urgency %q", p.Urgency)}
	}
	if p.Triggers.MinScore == nil && len(p.Triggers.RequiredSignalCodes) == 0 {
		return &ConfigError{ProtocolID: p.ID, Detail: "no trigger: needs a min score or at least one required signal code"}
	}
	if p.Triggers.MinScore != nil && (*p.Triggers.MinScore < 0 || *p.Triggers.MinScore > 100) {
		return &ConfigError{ProtocolID: p.ID, Detail: fmt.Sprintf("min score %d outside [0,100]", *p.Triggers.MinScore)}
	}
	for _, status := range p.Triggers.StatusWhitelist {
		if !status.Valid() {
			return &ConfigError{ProtocolID: p.ID, Detail: fmt.Sprintf("unknown status %q in whitelist", status)}
		}
	}
	for _, code := range p.Triggers.RequiredSignalCodes {
		if !signal.Known(code) {
			return &ConfigError{ProtocolID: p.ID, Detail: fmt.Sprintf("unregistered signal code %q", code)}
		}
	}
	if len(p.Steps) == 0 {
		return &ConfigError{ProtocolID: p.ID, Detail: "playbook has no steps"}
	}
	for i, step := range p.Steps {
		if step.Order != i+1 {
			return &ConfigError{ProtocolID: p.ID, Detail: fmt.Sprintf("step %d declared with order %d", i+1, step.Order)}
		}
		if !knownActionType(step.Action) {
			return &ConfigError{ProtocolID: p.ID, Detail: fmt.Sprintf("unregistered action type %q", step.Action)}
		}
		if step.Owner != OwnerSystem && step.Owner != OwnerHuman {
			return &ConfigError{ProtocolID: p.ID, Detail: fmt.Sprintf("unknown step owner %q", step.Owner)}
		}
	}
	return nil
}
