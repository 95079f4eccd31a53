package orchestrator

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	capabilityx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/capability"
	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	intentx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/intent"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
	ticketlogx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/ticketlog"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()

	registry, products, err := capabilityx.DefaultSet(ticketlogx.NopStore{})
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	classifier := intentx.NewClassifier(products, registry.Overview())

	o, err := New(registry, classifier, nil)
	if err != nil {
		t.Fatalf("build orchestrator: %v", err)
	}
	return o
}

func TestHandleQueryOrderStatus(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t)
	got, err := o.HandleQuery(context.Background(), "What is the status of order ORD123?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Shipped") || !strings.Contains(got, "2025-05-15") {
		t.Fatalf("got %q", got)
	}
}

func TestHandleQueryDamagedOrderFilesTicket(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t)
	got, err := o.HandleQuery(context.Background(), "My order ORD123 arrived damaged")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "send a replacement immediately") {
		t.Fatalf("expected the replacement template, got %q", got)
	}
	if !regexp.MustCompile(`Ticket ID: TICKET-ORD123-\d{4}`).MatchString(got) {
		t.Fatalf("expected a ticket id, got %q", got)
	}
}

func TestHandleQueryProductInfo(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t)
	got, err := o.HandleQuery(context.Background(), "Tell me about the laptop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"A high-performance laptop.", "$1200", "In Stock: Yes"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
}

func TestHandleQueryOrderWithoutIDAsksForClarification(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t)
	got, err := o.HandleQuery(context.Background(), "order")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "To check your order status, I'll need your order ID (like ORD123). Could you please provide it?"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHandleQueryGibberishFallsBackToInquiry(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t)
	got, err := o.HandleQuery(context.Background(), "asdkjasd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "happy to help with your question") {
		t.Fatalf("expected the general-question template, got %q", got)
	}
}

func TestHandleQueryEmptyInput(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t)
	if _, err := o.HandleQuery(context.Background(), "   "); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestHandleQuerySameInputSameReply(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t)
	first, err := o.HandleQuery(context.Background(), "What is your return policy?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := o.HandleQuery(context.Background(), "What is your return policy?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("replies diverged:\n%q\n%q", first, second)
	}
}

// boomCapability breaks on invocation instead of returning a domain
// error payload.
type boomCapability struct{}

func (boomCapability) Name() contractx.CapabilityName { return contractx.CapabilityOrderLookup }
func (boomCapability) Describe() string               { return "always fails" }
func (boomCapability) Required() []string             { return nil }
func (boomCapability) Invoke(context.Context, contractx.Args) (contractx.Payload, error) {
	return nil, errors.New("backend exploded")
}

func TestHandleQueryUnexpectedFailureBecomesApology(t *testing.T) {
	t.Parallel()

	registry, err := capabilityx.NewRegistry(boomCapability{})
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	classifier := intentx.NewClassifier(nil, registry.Overview())

	o, err := New(registry, classifier, nil)
	if err != nil {
		t.Fatalf("build orchestrator: %v", err)
	}

	got, err := o.HandleQuery(context.Background(), "What is the status of order ORD123?")
	if err != nil {
		t.Fatalf("unexpected failures must not escape the turn: %v", err)
	}
	if got != replyx.GenericApology {
		t.Fatalf("got %q, want the generic apology", got)
	}
	if strings.Contains(got, "backend exploded") {
		t.Fatalf("raw failure text leaked: %q", got)
	}
}
