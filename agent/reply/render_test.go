package reply

import (
	"strings"
	"testing"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

func TestRenderErrorPayloadNeverHitsSuccessBranches(t *testing.T) {
	t.Parallel()

	got := Render(contractx.ErrorPayload("Order ORD999 not found in our system."))
	if !strings.Contains(got, "Order ORD999 not found in our system.") {
		t.Fatalf("apology must embed the error text: %q", got)
	}
	for _, fragment := range []string{"order information", "Product Information", "Next steps", "Ticket ID"} {
		if strings.Contains(got, fragment) {
			t.Fatalf("error payload rendered a success branch: %q", got)
		}
	}
}

func TestRenderOrderStatusRoundTrip(t *testing.T) {
	t.Parallel()

	got := Render(contractx.Payload{"status": "Shipped", "estimated_delivery": "2025-05-15"})
	if !strings.Contains(got, "Shipped") || !strings.Contains(got, "2025-05-15") {
		t.Fatalf("status and estimate must appear verbatim: %q", got)
	}

	got = Render(contractx.Payload{"status": "Delivered", "delivery_date": "2025-05-10"})
	if !strings.Contains(got, "Delivered on: 2025-05-10") {
		t.Fatalf("delivered orders show the delivery date: %q", got)
	}
}

func TestRenderProduct(t *testing.T) {
	t.Parallel()

	got := Render(contractx.Payload{
		"description": "A high-performance laptop.",
		"price":       "$1200",
		"in_stock":    true,
	})
	for _, want := range []string{"A high-performance laptop.", "$1200", "In Stock: Yes"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}

	got = Render(contractx.Payload{"description": "x", "price": "$1", "in_stock": false})
	if !strings.Contains(got, "In Stock: No") {
		t.Fatalf("out of stock must render No: %q", got)
	}
}

func TestRenderTicket(t *testing.T) {
	t.Parallel()

	got := Render(contractx.Payload{
		"order_id":   "ORD123",
		"resolution": "investigation",
		"message":    "We are on it.",
		"next_steps": []string{"step one", "step two"},
		"ticket_id":  "TICKET-ORD123-0042",
		"escalated":  true,
	})

	for _, want := range []string{
		"order ORD123",
		"We are on it.",
		"1. step one",
		"2. step two",
		"Ticket ID: TICKET-ORD123-0042",
		"escalated for priority handling",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
}

func TestRenderInquiryFollowUp(t *testing.T) {
	t.Parallel()

	got := Render(contractx.Payload{
		"inquiry_type":     "complaint",
		"message":          "Sorry to hear that.",
		"follow_up_needed": true,
	})
	if !strings.Contains(got, "Sorry to hear that.") || !strings.Contains(got, "anything else I can help") {
		t.Fatalf("got %q", got)
	}

	got = Render(contractx.Payload{"inquiry_type": "contact_info", "message": "Call us."})
	if strings.Contains(got, "anything else I can help") {
		t.Fatalf("no follow-up expected: %q", got)
	}
}

func TestRenderUnknownShapeFallsBackToRaw(t *testing.T) {
	t.Parallel()

	got := Render(contractx.Payload{"mystery": "value"})
	if !strings.Contains(got, "Here's the information I found:") || !strings.Contains(got, `"mystery"`) {
		t.Fatalf("got %q", got)
	}
}

func TestRenderEmptyPayload(t *testing.T) {
	t.Parallel()

	if got := Render(nil); got != NoCapabilityResponse {
		t.Fatalf("got %q", got)
	}
}

func TestClarifyPromptSelection(t *testing.T) {
	t.Parallel()

	if got := Clarify(contractx.CapabilityOrderLookup, "order"); got != orderClarification {
		t.Fatalf("got %q", got)
	}
	if got := Clarify(contractx.CapabilityCatalogLookup, "product info please"); got != productClarification {
		t.Fatalf("got %q", got)
	}
	if got := Clarify(contractx.CapabilityPolicyLookup, "your policy"); got != policyClarification {
		t.Fatalf("got %q", got)
	}
	if got := Clarify(contractx.CapabilityIssueDesk, "it broke"); got != issueClarification {
		t.Fatalf("got %q", got)
	}
	if got := Clarify(contractx.CapabilityCatalogLookup, "hmm"); got != genericClarification {
		t.Fatalf("got %q", got)
	}
}
