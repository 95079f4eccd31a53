package capability

import (
	"context"
	"strings"
	"testing"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

func TestPolicyLookupKnownPolicy(t *testing.T) {
	t.Parallel()

	policies := NewPolicyLookup()
	payload, err := policies.Invoke(context.Background(), contractx.Args{contractx.ArgPolicyType: "return policy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Str("policy") != "return policy" {
		t.Fatalf("got policy %q", payload.Str("policy"))
	}
	if !strings.Contains(payload.Str("details"), "30 days") {
		t.Fatalf("got details %q", payload.Str("details"))
	}
}

func TestPolicyLookupLooseMatch(t *testing.T) {
	t.Parallel()

	policies := NewPolicyLookup()
	payload, err := policies.Invoke(context.Background(), contractx.Args{contractx.ArgPolicyType: "our shipping policy details"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Str("policy") != "shipping policy" {
		t.Fatalf("got policy %q", payload.Str("policy"))
	}
}

func TestPolicyLookupMissingType(t *testing.T) {
	t.Parallel()

	policies := NewPolicyLookup()
	payload, _ := policies.Invoke(context.Background(), contractx.Args{})
	if !payload.IsError() {
		t.Fatal("expected error payload")
	}
}
