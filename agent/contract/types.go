package contract

// CapabilityName identifies one backend capability in the registry.
type CapabilityName string

const (
	CapabilityOrderLookup   CapabilityName = "order.lookup"
	CapabilityCatalogLookup CapabilityName = "catalog.lookup"
	CapabilityPolicyLookup  CapabilityName = "policy.lookup"
	CapabilityIssueDesk     CapabilityName = "issue.handle"
	CapabilityInquiry       CapabilityName = "inquiry.general"
)

// Argument names shared between the classifier and the capabilities.
const (
	ArgOrderID     = "order_id"
	ArgProductName = "product_name"
	ArgPolicyType  = "policy_type"
	ArgDescription = "description"
	ArgMessage     = "message"
)

// Args carries the named string arguments assembled for one invocation.
// Built fresh per turn by the classifier, discarded after the turn.
type Args map[string]string

func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Payload is a structured capability result, tagged by which semantic
// fields are present (status, description, policy, resolution,
// inquiry_type). A domain error is a payload whose only field is "error";
// success payloads never carry "error".
type Payload map[string]any

// ErrorPayload wraps a domain-level failure message. Capabilities report
// expected failures this way instead of returning a Go error.
func ErrorPayload(msg string) Payload {
	return Payload{"error": msg}
}

func (p Payload) IsError() bool {
	return p.Has("error")
}

func (p Payload) ErrorText() string {
	return p.Str("error")
}

func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Str returns the string value under key, or "" when absent or non-string.
func (p Payload) Str(key string) string {
	v, ok := p[key].(string)
	if !ok {
		return ""
	}
	return v
}

func (p Payload) Bool(key string) bool {
	v, ok := p[key].(bool)
	return ok && v
}

// Strs returns the value under key as a string slice. JSON round-trips
// decode lists as []any, so both shapes are accepted.
func (p Payload) Strs(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
