package intent

import (
	"regexp"
	"strings"
)

// Order-id patterns, tried top to bottom against the upper-cased query.
// Ordering is a tie-break, not a style choice: later patterns overlap
// earlier ones, and the first hit wins.
var orderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(ORD\d+)\b`),          // canonical ORD123
	regexp.MustCompile(`\bORDER\s*#?\s*(\w+)\b`), // "order ORD123", "order #123"
	regexp.MustCompile(`\b#(\w+)\b`),             // "#ORD123"
	regexp.MustCompile(`\b([A-Z]{3}\d+)\b`),      // any 3 letters + digits
}

// ExtractOrderID scans text for an order identifier. Purely numeric
// captures without the canonical ORD prefix are rejected and the scan
// moves on to the next pattern.
func ExtractOrderID(text string) (string, bool) {
	upper := strings.ToUpper(text)
	for _, pattern := range orderIDPatterns {
		m := pattern.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		id := m[1]
		if !strings.HasPrefix(id, "ORD") && isDigits(id) {
			continue
		}
		return id, true
	}
	return "", false
}

// Words that typically precede a product name ("price of the laptop").
var productIndicators = map[string]bool{
	"about":       true,
	"price":       true,
	"cost":        true,
	"buy":         true,
	"purchase":    true,
	"info":        true,
	"information": true,
}

// ExtractProduct returns the first known product mentioned in text.
// Direct substring membership wins; failing that, the token right after
// an indicator word is checked against the known names.
func ExtractProduct(text string, known []string) (string, bool) {
	lower := strings.ToLower(text)

	for _, product := range known {
		if strings.Contains(lower, product) {
			return product, true
		}
	}

	words := strings.Fields(lower)
	for i, word := range words {
		if !productIndicators[word] || i+1 >= len(words) {
			continue
		}
		next := words[i+1]
		for _, product := range known {
			if next == product {
				return product, true
			}
		}
	}
	return "", false
}

const (
	PolicyReturn   = "return policy"
	PolicyShipping = "shipping policy"
)

// Policy rules evaluated top to bottom, first match wins. The bare
// "policy" rules only fire together with their sub-keywords.
var policyRules = []struct {
	matches func(lower string) bool
	policy  string
}{
	{
		matches: func(lower string) bool { return strings.Contains(lower, "return") },
		policy:  PolicyReturn,
	},
	{
		matches: func(lower string) bool {
			return strings.Contains(lower, "shipping") || strings.Contains(lower, "delivery")
		},
		policy: PolicyShipping,
	},
	{
		matches: func(lower string) bool {
			return strings.Contains(lower, "policy") &&
				containsAny(lower, []string{"back", "refund", "exchange"})
		},
		policy: PolicyReturn,
	},
	{
		matches: func(lower string) bool {
			return strings.Contains(lower, "policy") &&
				containsAny(lower, []string{"ship", "deliver", "send"})
		},
		policy: PolicyShipping,
	},
}

// ExtractPolicyType maps text to one of the known policy categories.
func ExtractPolicyType(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range policyRules {
		if rule.matches(lower) {
			return rule.policy, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
