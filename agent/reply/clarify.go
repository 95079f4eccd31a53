package reply

import (
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

const (
	orderClarification   = "To check your order status, I'll need your order ID (like ORD123). Could you please provide it?"
	productClarification = "I'd be happy to help with product information! Which specific product are you interested in? (laptop, mouse, keyboard)"
	policyClarification  = "I can help with our policies! Which policy would you like to know about? (return policy, shipping policy)"
	issueClarification   = "To help resolve your order issue, I'll need your order ID (like ORD123). Could you please provide it?"

	genericClarification = "I need a bit more information to help you effectively. Please provide more details about what you're looking for - an order ID, product name, or specific policy type."
)

// Clarify asks the user for the required argument the classifier could
// not extract. The issue desk gets its own prompt; otherwise the prompt
// is picked by which keyword triggered the query.
func Clarify(capability contractx.CapabilityName, query string) string {
	if capability == contractx.CapabilityIssueDesk {
		return issueClarification
	}

	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "order"):
		return orderClarification
	case strings.Contains(lower, "product"):
		return productClarification
	case strings.Contains(lower, "policy"):
		return policyClarification
	default:
		return genericClarification
	}
}
