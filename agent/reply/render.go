package reply

import (
	"encoding/json"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

const (
	// NoCapabilityResponse covers the defensive case where no capability
	// was selected for a turn.
	NoCapabilityResponse = "I'm sorry, I couldn't find the specific information you're looking for with my current tools. I can help you with order status, product information, or company policies. Could you please rephrase your question or provide more specific details?"

	// GenericApology replaces any unexpected invocation failure. Raw
	// failure text never reaches the user.
	GenericApology = "I encountered an error while processing your request. Please try again or contact support."
)

// Render narrates a tagged payload as user-facing text. Branch order is
// significant: error first, then the success tags by priority. The
// result is always non-empty.
func Render(payload contractx.Payload) string {
	if len(payload) == 0 {
		return NoCapabilityResponse
	}
	if payload.IsError() {
		return fmt.Sprintf("I'm sorry, but %s Please double-check the information and try again.", payload.ErrorText())
	}

	switch {
	case payload.Has("status"):
		return renderOrder(payload)
	case payload.Has("description"):
		return renderProduct(payload)
	case payload.Has("policy"):
		return renderPolicy(payload)
	case payload.Has("resolution"):
		return renderTicket(payload)
	case payload.Has("inquiry_type"):
		return renderInquiry(payload)
	default:
		return renderRaw(payload)
	}
}

func renderOrder(p contractx.Payload) string {
	var b strings.Builder
	b.WriteString("Here's your order information:\n")
	fmt.Fprintf(&b, "• Status: %s\n", p.Str("status"))
	if p.Has("estimated_delivery") {
		fmt.Fprintf(&b, "• Estimated Delivery: %s", p.Str("estimated_delivery"))
	} else if p.Has("delivery_date") {
		fmt.Fprintf(&b, "• Delivered on: %s", p.Str("delivery_date"))
	}
	return b.String()
}

func renderProduct(p contractx.Payload) string {
	inStock := "No"
	if p.Bool("in_stock") {
		inStock = "Yes"
	}
	var b strings.Builder
	b.WriteString("Product Information:\n")
	fmt.Fprintf(&b, "• Description: %s\n", p.Str("description"))
	fmt.Fprintf(&b, "• Price: %s\n", p.Str("price"))
	fmt.Fprintf(&b, "• In Stock: %s", inStock)
	return b.String()
}

func renderPolicy(p contractx.Payload) string {
	return fmt.Sprintf("Here's our %s:\n\n%s", p.Str("policy"), p.Str("details"))
}

func renderTicket(p contractx.Payload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I understand your concern about order %s.\n\n", p.Str("order_id"))
	fmt.Fprintf(&b, "%s\n\n", p.Str("message"))
	b.WriteString("Next steps:\n")
	for i, step := range p.Strs("next_steps") {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\nTicket ID: %s", p.Str("ticket_id"))
	if p.Bool("escalated") {
		b.WriteString("\n⚠️ This issue has been escalated for priority handling.")
	}
	return b.String()
}

func renderInquiry(p contractx.Payload) string {
	response := p.Str("message")
	if p.Bool("follow_up_needed") {
		response += "\n\nIs there anything else I can help you with regarding this matter?"
	}
	return response
}

func renderRaw(p contractx.Payload) string {
	formatted, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Sprintf("Here's the information: %v", map[string]any(p))
	}
	return fmt.Sprintf("Here's the information I found:\n%s", formatted)
}
