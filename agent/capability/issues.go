package capability

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	ticketlogx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/ticketlog"
)

type issueResolution struct {
	action    string
	message   string
	nextSteps []string
	escalate  bool
}

// Ordered sub-classification of a free-text issue description, first
// match wins. "broken" appears under both damaged and defective; the
// damaged rule runs first and takes it.
var issueRules = []struct {
	issueType string
	keywords  []string
}{
	{"not_received", []string{"not received", "didn't receive", "haven't got", "missing", "lost"}},
	{"damaged", []string{"damaged", "broken", "cracked", "smashed"}},
	{"wrong_item", []string{"wrong", "incorrect", "different", "not what i ordered"}},
	{"defective", []string{"defective", "not working", "faulty", "doesn't work", "broken"}},
	{"late_delivery", []string{"late", "delayed", "slow", "taking too long"}},
}

var issueResolutions = map[string]issueResolution{
	"not_received": {
		action:    "investigation",
		message:   "I understand you haven't received your order yet. I'm initiating an investigation with our shipping partner. We'll track your package and provide an update within 24 hours. If not located, we'll process a replacement or full refund immediately.",
		nextSteps: []string{"Track package with carrier", "Contact shipping partner", "Issue replacement/refund if needed"},
		escalate:  true,
	},
	"damaged": {
		action:    "replacement",
		message:   "I'm sorry your item arrived damaged. We'll send a replacement immediately at no cost. Please keep the damaged item until the replacement arrives, then we'll arrange pickup of the damaged product.",
		nextSteps: []string{"Process replacement order", "Schedule pickup of damaged item", "Expedite shipping"},
		escalate:  false,
	},
	"wrong_item": {
		action:    "exchange",
		message:   "I apologize for sending the wrong item. We'll send the correct product right away and arrange pickup of the incorrect item. You won't be charged for return shipping.",
		nextSteps: []string{"Process correct order", "Schedule pickup", "Verify correct item details"},
		escalate:  false,
	},
	"defective": {
		action:    "replacement_or_refund",
		message:   "I'm sorry the product is defective. We can either send a replacement or process a full refund. Which would you prefer? We'll also arrange pickup of the defective item.",
		nextSteps: []string{"Offer replacement or refund choice", "Process selected option", "Arrange pickup"},
		escalate:  false,
	},
	"late_delivery": {
		action:    "investigation",
		message:   "I understand your order is late. Let me check the current status and estimated delivery time. We'll also look into compensation for the delay.",
		nextSteps: []string{"Check delivery status", "Contact carrier", "Offer compensation"},
		escalate:  true,
	},
}

// Unrecognized issue categories escalate to the support team.
var escalationResolution = issueResolution{
	action:    "escalation",
	message:   "I understand you're having an issue with your order. Let me escalate this to our specialized support team who will contact you within 2 hours to resolve this matter.",
	nextSteps: []string{"Escalate to specialized support", "Schedule callback within 2 hours"},
	escalate:  true,
}

// IssueDesk files tickets for order complaints. The order must exist in
// the order records; the issue category comes from the caller or is
// inferred from the free-text description.
type IssueDesk struct {
	orders  *OrderLookup
	tickets ticketlogx.Store
}

func NewIssueDesk(orders *OrderLookup, tickets ticketlogx.Store) *IssueDesk {
	if tickets == nil {
		tickets = ticketlogx.NopStore{}
	}
	return &IssueDesk{orders: orders, tickets: tickets}
}

func (d *IssueDesk) Name() contractx.CapabilityName {
	return contractx.CapabilityIssueDesk
}

func (d *IssueDesk) Describe() string {
	return "Handles order complaints such as non-delivery, damaged, or wrong items. Requires 'order_id'; accepts a free-text 'description'."
}

func (d *IssueDesk) Required() []string {
	return []string{contractx.ArgOrderID}
}

func (d *IssueDesk) Invoke(ctx context.Context, args contractx.Args) (contractx.Payload, error) {
	orderID := strings.ToUpper(strings.TrimSpace(args[contractx.ArgOrderID]))
	if orderID == "" {
		return contractx.ErrorPayload("Order ID is required to handle the issue."), nil
	}
	if !d.orders.KnownOrder(orderID) {
		return contractx.ErrorPayload(fmt.Sprintf("Order %s not found in our system.", orderID)), nil
	}

	issueType := strings.TrimSpace(args["issue_type"])
	description := args[contractx.ArgDescription]
	if issueType == "" {
		if strings.TrimSpace(description) == "" {
			return contractx.ErrorPayload("Please describe the issue you're experiencing with your order."), nil
		}
		issueType = classifyIssue(description)
	}

	resolution, ok := issueResolutions[issueType]
	if !ok {
		resolution = escalationResolution
	}

	ticketID := newTicketID(orderID, issueType)
	if err := d.tickets.Record(ctx, &ticketlogx.Ticket{
		TicketID:   ticketID,
		OrderID:    orderID,
		IssueType:  issueType,
		Resolution: resolution.action,
		Escalated:  resolution.escalate,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		// The user still gets their ticket; the audit row is best-effort.
		log.Warn().Err(err).Str("ticket_id", ticketID).Msg("ticket log write failed")
	}

	return contractx.Payload{
		"order_id":       orderID,
		"issue_type":     issueType,
		"resolution":     resolution.action,
		"message":        resolution.message,
		"next_steps":     append([]string(nil), resolution.nextSteps...),
		"escalated":      resolution.escalate,
		"ticket_created": true,
		"ticket_id":      ticketID,
	}, nil
}

func classifyIssue(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range issueRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.issueType
			}
		}
	}
	return "general_issue"
}

// newTicketID derives the four-digit suffix from a hash of the issue
// category. Collisions across orders sharing a category are possible;
// this is a placeholder scheme, the ticket log row is authoritative.
func newTicketID(orderID, issueType string) string {
	h := fnv.New32a()
	h.Write([]byte(issueType))
	return fmt.Sprintf("TICKET-%s-%04d", orderID, h.Sum32()%10000)
}
