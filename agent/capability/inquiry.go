package capability

import (
	"context"
	"strings"
	"time"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
)

type inquiryResponse struct {
	message string
	action  string
}

// Five-way inquiry classification, independent of the routing cascade
// that picked this capability. First match wins.
var inquiryRules = []struct {
	inquiryType string
	keywords    []string
}{
	{"complaint", []string{"complain", "disappointed", "terrible", "awful", "bad experience", "unhappy"}},
	{"feedback", []string{"feedback", "suggestion", "improve", "better"}},
	{"business_hours", []string{"hours", "open", "available", "when"}},
	{"contact_info", []string{"contact", "phone", "email", "reach"}},
}

var inquiryResponses = map[string]inquiryResponse{
	"complaint": {
		message: "I sincerely apologize for your negative experience. Your feedback is very important to us and helps us improve our service. I'd like to escalate this to our customer experience team to ensure we address your concerns properly.",
		action:  "escalate_to_customer_experience",
	},
	"feedback": {
		message: "Thank you for taking the time to share your feedback! We truly value customer input as it helps us improve our products and services. I'll make sure your feedback reaches the appropriate team.",
		action:  "forward_to_feedback_team",
	},
	"general_question": {
		message: "I'd be happy to help with your question. Could you please provide more specific details about what you'd like to know?",
		action:  "request_clarification",
	},
	"business_hours": {
		message: "Our customer support is available 24/7 through this chat. Our phone support is available Monday-Friday 9AM-6PM EST, and Saturday-Sunday 10AM-4PM EST.",
		action:  "provide_information",
	},
	"contact_info": {
		message: "You can reach us through:\n• This chat (24/7)\n• Phone: 1-800-SUPPORT\n• Email: support@ecommerce.com\n• Social media: @ecommercesupport",
		action:  "provide_information",
	},
}

// GeneralInquiry handles everything the other capabilities don't:
// complaints about service, feedback, hours, contact info, and open
// questions.
type GeneralInquiry struct {
	now func() time.Time
}

func NewGeneralInquiry() *GeneralInquiry {
	return &GeneralInquiry{now: time.Now}
}

func (g *GeneralInquiry) Name() contractx.CapabilityName {
	return contractx.CapabilityInquiry
}

func (g *GeneralInquiry) Describe() string {
	return "Handles general inquiries, service complaints, feedback, and questions that fit no other capability."
}

// Required is empty: the classifier always supplies the raw query as the
// message, so this capability is never gated.
func (g *GeneralInquiry) Required() []string {
	return nil
}

func (g *GeneralInquiry) Invoke(_ context.Context, args contractx.Args) (contractx.Payload, error) {
	message := args[contractx.ArgMessage]
	if strings.TrimSpace(message) == "" {
		return contractx.ErrorPayload("Please provide details about your inquiry."), nil
	}

	inquiryType := strings.TrimSpace(args["inquiry_type"])
	if inquiryType == "" {
		inquiryType = classifyInquiry(message)
	}

	response, ok := inquiryResponses[inquiryType]
	if !ok {
		response = inquiryResponses["general_question"]
	}

	return contractx.Payload{
		"inquiry_type":     inquiryType,
		"message":          response.message,
		"action":           response.action,
		"timestamp":        g.now().UTC().Format("2006-01-02 15:04:05"),
		"follow_up_needed": inquiryType == "complaint" || inquiryType == "general_question",
	}, nil
}

func classifyInquiry(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range inquiryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.inquiryType
			}
		}
	}
	return "general_question"
}
