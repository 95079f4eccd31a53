package capability

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

// PolicyLookup serves company policy texts by category.
type PolicyLookup struct {
	names    []string
	policies map[string]string
}

func NewPolicyLookup() *PolicyLookup {
	return &PolicyLookup{
		names: []string{"return policy", "shipping policy"},
		policies: map[string]string{
			"return policy":   "You can return items within 30 days of purchase for a full refund, provided they are in original condition.",
			"shipping policy": "Standard shipping takes 3-5 business days. Express shipping is available for an additional cost.",
		},
	}
}

func (p *PolicyLookup) Name() contractx.CapabilityName {
	return contractx.CapabilityPolicyLookup
}

func (p *PolicyLookup) Describe() string {
	return "Explains company policies such as returns and shipping. Requires 'policy_type'."
}

func (p *PolicyLookup) Required() []string {
	return []string{contractx.ArgPolicyType}
}

func (p *PolicyLookup) Invoke(_ context.Context, args contractx.Args) (contractx.Payload, error) {
	raw := args[contractx.ArgPolicyType]
	policyType := strings.ToLower(strings.TrimSpace(raw))
	if policyType == "" {
		return contractx.ErrorPayload("Policy type is required."), nil
	}

	if details, ok := p.policies[policyType]; ok {
		return contractx.Payload{"policy": policyType, "details": details}, nil
	}

	// Loose match: a known name inside the request wins over the word
	// fallback, so "our shipping policy details" never lands on the
	// return policy via the shared word "policy".
	for _, known := range p.names {
		if strings.Contains(policyType, known) {
			return contractx.Payload{"policy": known, "details": p.policies[known]}, nil
		}
	}
	for _, known := range p.names {
		if anyWordIn(policyType, known) {
			return contractx.Payload{"policy": known, "details": p.policies[known]}, nil
		}
	}

	return contractx.ErrorPayload(fmt.Sprintf(
		"Policy type '%s' not found. Available policies: %s.", raw, strings.Join(p.names, ", "),
	)), nil
}

func anyWordIn(input, target string) bool {
	for _, word := range strings.Fields(input) {
		if strings.Contains(target, word) {
			return true
		}
	}
	return false
}
