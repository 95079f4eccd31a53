package nodes

import (
	"fmt"
	"strings"

	capabilityx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/capability"
	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
)

// ClarifyGate resolves the routed capability and withholds invocation
// when a required argument is missing, answering with a clarification
// prompt instead.
func ClarifyGate(in *GraphState, registry *capabilityx.Registry) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	// Not reachable with the guaranteed fallback rule, handled anyway.
	if in.Route.Capability == "" {
		in.Reply = replyx.NoCapabilityResponse
		return in, nil
	}

	target, ok := registry.Lookup(in.Route.Capability)
	if !ok {
		return nil, fmt.Errorf("%w: %s", contractx.ErrCapabilityUnknown, in.Route.Capability)
	}
	in.Capability = target

	for _, arg := range target.Required() {
		if strings.TrimSpace(in.Route.Args[arg]) == "" {
			in.Reply = replyx.Clarify(target.Name(), in.Query)
			return in, nil
		}
	}
	return in, nil
}
