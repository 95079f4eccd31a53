package capability

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

// OrderLookup resolves an order id to its shipping status. Backed by
// in-process fixture data; a real deployment swaps the map for an order
// service query.
type OrderLookup struct {
	orders map[string]contractx.Payload
}

func NewOrderLookup() *OrderLookup {
	return &OrderLookup{
		orders: map[string]contractx.Payload{
			"ORD123": {"status": "Shipped", "estimated_delivery": "2025-05-15"},
			"ORD456": {"status": "Processing", "estimated_delivery": "2025-05-18"},
			"ORD789": {"status": "Delivered", "delivery_date": "2025-05-10"},
			"ORD741": {"status": "Delivered", "delivery_date": "2025-05-10"},
		},
	}
}

func (o *OrderLookup) Name() contractx.CapabilityName {
	return contractx.CapabilityOrderLookup
}

func (o *OrderLookup) Describe() string {
	return "Looks up a customer's order status and delivery estimate. Requires 'order_id'."
}

func (o *OrderLookup) Required() []string {
	return []string{contractx.ArgOrderID}
}

func (o *OrderLookup) Invoke(_ context.Context, args contractx.Args) (contractx.Payload, error) {
	orderID := strings.ToUpper(strings.TrimSpace(args[contractx.ArgOrderID]))
	if orderID == "" {
		return contractx.ErrorPayload("Order ID is required."), nil
	}

	order, ok := o.orders[orderID]
	if !ok {
		return contractx.ErrorPayload(fmt.Sprintf("Order %s not found in our system.", orderID)), nil
	}
	return clonePayload(order), nil
}

// KnownOrder reports whether the order id exists in the order records.
func (o *OrderLookup) KnownOrder(orderID string) bool {
	_, ok := o.orders[strings.ToUpper(strings.TrimSpace(orderID))]
	return ok
}

func clonePayload(p contractx.Payload) contractx.Payload {
	out := make(contractx.Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
