package capability

import (
	"context"
	"strings"
	"testing"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

func TestOrderLookupKnownOrder(t *testing.T) {
	t.Parallel()

	orders := NewOrderLookup()
	payload, err := orders.Invoke(context.Background(), contractx.Args{contractx.ArgOrderID: "ord123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.IsError() {
		t.Fatalf("unexpected error payload: %s", payload.ErrorText())
	}
	if payload.Str("status") != "Shipped" {
		t.Fatalf("got status %q", payload.Str("status"))
	}
	if payload.Str("estimated_delivery") != "2025-05-15" {
		t.Fatalf("got estimate %q", payload.Str("estimated_delivery"))
	}
}

func TestOrderLookupMissingID(t *testing.T) {
	t.Parallel()

	orders := NewOrderLookup()
	payload, err := orders.Invoke(context.Background(), contractx.Args{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payload.IsError() {
		t.Fatal("expected error payload")
	}
}

func TestOrderLookupUnknownOrder(t *testing.T) {
	t.Parallel()

	orders := NewOrderLookup()
	payload, err := orders.Invoke(context.Background(), contractx.Args{contractx.ArgOrderID: "ORD999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payload.IsError() || !strings.Contains(payload.ErrorText(), "ORD999") {
		t.Fatalf("expected not-found error naming the order, got %v", payload)
	}
}

func TestOrderLookupResultIsACopy(t *testing.T) {
	t.Parallel()

	orders := NewOrderLookup()
	first, _ := orders.Invoke(context.Background(), contractx.Args{contractx.ArgOrderID: "ORD456"})
	first["status"] = "tampered"

	second, _ := orders.Invoke(context.Background(), contractx.Args{contractx.ArgOrderID: "ORD456"})
	if second.Str("status") != "Processing" {
		t.Fatalf("fixture mutated through returned payload: %q", second.Str("status"))
	}
}
