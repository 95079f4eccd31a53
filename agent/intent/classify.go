package intent

import (
	"strings"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

// Routing lexicons. Membership is substring-based on the lower-cased
// query, matching how the capabilities classify their own sub-categories.
var (
	complaintWords = []string{
		"not received", "didn't receive", "haven't got", "missing", "damaged",
		"broken", "wrong", "incorrect", "defective", "not working", "late",
		"delayed", "problem", "issue", "complaint",
	}
	orderContextWords = []string{
		"order", "ordered", "purchase", "bought", "delivery", "package",
	}
	orderLookupWords = []string{
		"order", "status", "tracking", "delivery", "shipped", "delivered",
	}
	productWords = []string{
		"product", "price", "cost", "buy", "purchase", "tell me about", "how much",
	}
	policyWords = []string{
		"policy", "return", "refund", "shipping", "delivery",
	}
	inquiryWords = []string{
		"help", "question", "how", "what", "when", "where", "why",
		"complain", "feedback", "suggestion", "contact", "hours",
	}
)

// Route is one classifier outcome: the selected capability plus the
// argument set assembled for it. Args may lack a required argument; the
// orchestrator's clarification gate deals with that.
type Route struct {
	Capability contractx.CapabilityName
	Args       contractx.Args
}

// Classifier selects exactly one capability per query through an ordered
// cascade. It holds no per-turn state; classifying the same text twice
// yields the same route.
type Classifier struct {
	products []string
	overview string
}

// NewClassifier builds a classifier over the catalog's product names.
// overview is the registry's human-readable capability listing, emitted
// with the pre-routing trace only.
func NewClassifier(products []string, overview string) *Classifier {
	return &Classifier{
		products: append([]string(nil), products...),
		overview: overview,
	}
}

// The cascade, first match wins, no backtracking. The fallback entry
// always routes, so every query ends up with a capability.
var routingCascade = []struct {
	name  string
	route func(c *Classifier, query, lower string) (Route, bool)
}{
	{"order_complaint", (*Classifier).routeComplaint},
	{"order_lookup", (*Classifier).routeOrderLookup},
	{"catalog_lookup", (*Classifier).routeCatalogLookup},
	{"policy_lookup", (*Classifier).routePolicyLookup},
	{"general_inquiry", (*Classifier).routeInquiry},
	{"fallback", (*Classifier).routeFallback},
}

// Classify maps a query to a capability and its arguments.
func (c *Classifier) Classify(query string) Route {
	log.Debug().
		Str("query", query).
		Str("capabilities", c.overview).
		Msg("routing query across capability cascade")

	lower := strings.ToLower(query)
	for _, step := range routingCascade {
		if route, ok := step.route(c, query, lower); ok {
			log.Debug().
				Str("rule", step.name).
				Str("capability", string(route.Capability)).
				Msg("cascade rule matched")
			return route
		}
	}
	// Unreachable: routeFallback always matches.
	return Route{}
}

// A complaint in order context outranks plain order lookup. The raw text
// rides along as the issue description; the capability sub-classifies it.
func (c *Classifier) routeComplaint(query, lower string) (Route, bool) {
	if !containsAny(lower, complaintWords) || !containsAny(lower, orderContextWords) {
		return Route{}, false
	}
	args := contractx.Args{contractx.ArgDescription: query}
	if id, ok := ExtractOrderID(query); ok {
		args[contractx.ArgOrderID] = id
	}
	return Route{Capability: contractx.CapabilityIssueDesk, Args: args}, true
}

func (c *Classifier) routeOrderLookup(query, lower string) (Route, bool) {
	if !containsAny(lower, orderLookupWords) {
		return Route{}, false
	}
	args := contractx.Args{}
	if id, ok := ExtractOrderID(query); ok {
		args[contractx.ArgOrderID] = id
	}
	return Route{Capability: contractx.CapabilityOrderLookup, Args: args}, true
}

func (c *Classifier) routeCatalogLookup(query, lower string) (Route, bool) {
	if !containsAny(lower, productWords) && !containsAny(lower, c.products) {
		return Route{}, false
	}
	args := contractx.Args{}
	if product, ok := ExtractProduct(query, c.products); ok {
		args[contractx.ArgProductName] = product
	}
	return Route{Capability: contractx.CapabilityCatalogLookup, Args: args}, true
}

func (c *Classifier) routePolicyLookup(query, lower string) (Route, bool) {
	if !containsAny(lower, policyWords) {
		return Route{}, false
	}
	args := contractx.Args{}
	if policy, ok := ExtractPolicyType(query); ok {
		args[contractx.ArgPolicyType] = policy
	}
	return Route{Capability: contractx.CapabilityPolicyLookup, Args: args}, true
}

func (c *Classifier) routeInquiry(query, lower string) (Route, bool) {
	if !containsAny(lower, inquiryWords) {
		return Route{}, false
	}
	return Route{
		Capability: contractx.CapabilityInquiry,
		Args:       contractx.Args{contractx.ArgMessage: query},
	}, true
}

// routeFallback retries product extraction once, then hands the raw text
// to the general inquiry capability. It never declines.
func (c *Classifier) routeFallback(query, lower string) (Route, bool) {
	if product, ok := ExtractProduct(query, c.products); ok {
		return Route{
			Capability: contractx.CapabilityCatalogLookup,
			Args:       contractx.Args{contractx.ArgProductName: product},
		}, true
	}
	return Route{
		Capability: contractx.CapabilityInquiry,
		Args:       contractx.Args{contractx.ArgMessage: query},
	}, true
}
