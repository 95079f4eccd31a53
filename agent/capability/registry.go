package capability

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	ticketlogx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/ticketlog"
)

// Registry is the immutable capability set. It is built once at startup
// and handed to the orchestrator as an explicit value, never ambient
// state, so tests can run isolated instances side by side.
type Registry struct {
	ordered []contractx.Capability
	byName  map[contractx.CapabilityName]contractx.Capability
}

func NewRegistry(caps ...contractx.Capability) (*Registry, error) {
	r := &Registry{
		ordered: make([]contractx.Capability, 0, len(caps)),
		byName:  make(map[contractx.CapabilityName]contractx.Capability, len(caps)),
	}
	for _, c := range caps {
		if c == nil || c.Name() == "" {
			return nil, fmt.Errorf("%w: capability without a name", contractx.ErrValidation)
		}
		if _, dup := r.byName[c.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate capability %s", contractx.ErrValidation, c.Name())
		}
		r.ordered = append(r.ordered, c)
		r.byName[c.Name()] = c
	}
	return r, nil
}

func (r *Registry) Lookup(name contractx.CapabilityName) (contractx.Capability, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Overview lists every capability with its description, one per line,
// for the classifier's pre-routing trace.
func (r *Registry) Overview() string {
	lines := make([]string, 0, len(r.ordered))
	for _, c := range r.ordered {
		lines = append(lines, fmt.Sprintf("- %s: %s", c.Name(), c.Describe()))
	}
	return strings.Join(lines, "\n")
}

// DefaultSet wires the five stock capabilities over the shared fixtures.
// Returns the registry plus the catalog's product names for the
// classifier.
func DefaultSet(tickets ticketlogx.Store) (*Registry, []string, error) {
	orders := NewOrderLookup()
	catalog := NewCatalogLookup()

	registry, err := NewRegistry(
		orders,
		catalog,
		NewPolicyLookup(),
		NewIssueDesk(orders, tickets),
		NewGeneralInquiry(),
	)
	if err != nil {
		return nil, nil, err
	}
	return registry, catalog.Products(), nil
}
