package capability

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

// CatalogLookup answers product questions from the catalog fixtures.
type CatalogLookup struct {
	names    []string
	products map[string]contractx.Payload
}

func NewCatalogLookup() *CatalogLookup {
	return &CatalogLookup{
		names: []string{"laptop", "mouse", "keyboard"},
		products: map[string]contractx.Payload{
			"laptop":   {"description": "A high-performance laptop.", "price": "$1200", "in_stock": true},
			"mouse":    {"description": "An ergonomic wireless mouse.", "price": "$25", "in_stock": false},
			"keyboard": {"description": "A mechanical gaming keyboard.", "price": "$75", "in_stock": true},
		},
	}
}

func (c *CatalogLookup) Name() contractx.CapabilityName {
	return contractx.CapabilityCatalogLookup
}

func (c *CatalogLookup) Describe() string {
	return "Looks up product description, price, and stock. Requires 'product_name'."
}

func (c *CatalogLookup) Required() []string {
	return []string{contractx.ArgProductName}
}

// Products returns the catalog's known product names in catalog order,
// for the classifier's product extraction.
func (c *CatalogLookup) Products() []string {
	return append([]string(nil), c.names...)
}

func (c *CatalogLookup) Invoke(_ context.Context, args contractx.Args) (contractx.Payload, error) {
	raw := args[contractx.ArgProductName]
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return contractx.ErrorPayload("Product name is required."), nil
	}

	if product, ok := c.products[name]; ok {
		return clonePayload(product), nil
	}

	// Partial match in either direction: "gaming keyboard" hits "keyboard".
	for _, known := range c.names {
		if strings.Contains(name, known) || strings.Contains(known, name) {
			return clonePayload(c.products[known]), nil
		}
	}

	return contractx.ErrorPayload(fmt.Sprintf("Product '%s' not found in our catalog.", raw)), nil
}
