package nodes

import (
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	intentx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/intent"
)

type GraphInput struct {
	Query string
}

type GraphOutput struct {
	Reply string
}

// GraphState is the per-turn pipeline state. It lives for one query and
// is never shared across turns.
type GraphState struct {
	Query string

	Route      intentx.Route
	Capability contractx.Capability
	Payload    contractx.Payload

	// Reply set before invocation short-circuits the remaining nodes
	// (clarification gate, tier-3 apology).
	Reply string
}

func ValidateRequest(in GraphInput) (*GraphState, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, contractx.ErrEmptyQuery
	}
	return &GraphState{Query: query}, nil
}
