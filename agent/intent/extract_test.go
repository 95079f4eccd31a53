package intent

import "testing"

func TestExtractOrderIDCanonicalToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"canonical", "What is the status of order ORD123?", "ORD123"},
		{"lowercase input", "check ord456 please", "ORD456"},
		{"order keyword with hash", "my order#ORD789 is late", "ORD789"},
		{"generic three letter prefix", "status of ABC789", "ABC789"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractOrderID(tc.text)
			if !ok {
				t.Fatalf("expected an order id in %q", tc.text)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractOrderIDRejectsBareNumbers(t *testing.T) {
	t.Parallel()

	// "order 99999" captures a purely numeric token without the ORD
	// prefix; the rule must reject it and fall through to nothing.
	if id, ok := ExtractOrderID("track order 99999"); ok {
		t.Fatalf("expected no order id, got %q", id)
	}
	if id, ok := ExtractOrderID("hello there"); ok {
		t.Fatalf("expected no order id, got %q", id)
	}
}

func TestExtractProduct(t *testing.T) {
	t.Parallel()

	known := []string{"laptop", "mouse", "keyboard"}

	if got, ok := ExtractProduct("Tell me about the laptop", known); !ok || got != "laptop" {
		t.Fatalf("got %q ok=%v, want laptop", got, ok)
	}
	if got, ok := ExtractProduct("IS THE MOUSE IN STOCK", known); !ok || got != "mouse" {
		t.Fatalf("got %q ok=%v, want mouse", got, ok)
	}
	if got, ok := ExtractProduct("do you sell monitors", known); ok {
		t.Fatalf("expected no product, got %q", got)
	}
}

func TestExtractPolicyTypeRuleOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"What is your return policy?", PolicyReturn},
		{"how long does shipping take", PolicyShipping},
		{"when will my delivery arrive", PolicyShipping},
		{"what's the policy on refunds", PolicyReturn},
		{"policy for sending items abroad", PolicyShipping},
		// "return" outranks the shipping keywords when both appear.
		{"can I return a delivery", PolicyReturn},
	}

	for _, tc := range cases {
		got, ok := ExtractPolicyType(tc.text)
		if !ok {
			t.Fatalf("expected a policy for %q", tc.text)
		}
		if got != tc.want {
			t.Fatalf("%q: got %q, want %q", tc.text, got, tc.want)
		}
	}

	if got, ok := ExtractPolicyType("hello"); ok {
		t.Fatalf("expected no policy, got %q", got)
	}
}
