package reply

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/rs/zerolog/log"
)

const polishSystemPrompt = "You are a customer support assistant. Rewrite the drafted reply in a warm, concise tone. Keep every fact, identifier, number, and list item exactly as given. Reply with the rewritten text only."

// Polisher optionally rephrases a rendered reply through a chat model.
// Rendering stays deterministic: the draft is the source of truth, and
// any model failure falls back to it unchanged.
type Polisher struct {
	client *openaisdk.Client
	model  string
}

// NewPolisher returns nil when no client is configured; a nil Polisher
// passes drafts through untouched.
func NewPolisher(client *openaisdk.Client, model string) *Polisher {
	if client == nil || strings.TrimSpace(model) == "" {
		return nil
	}
	return &Polisher{client: client, model: strings.TrimSpace(model)}
}

func (p *Polisher) Polish(ctx context.Context, query, draft string) string {
	if p == nil || p.client == nil {
		return draft
	}

	completion, err := p.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(p.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(polishSystemPrompt),
			openaisdk.UserMessage(fmt.Sprintf("Customer asked: %s\n\nDrafted reply:\n%s", query, draft)),
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("reply polish failed, using draft")
		return draft
	}
	if len(completion.Choices) == 0 {
		return draft
	}

	polished := strings.TrimSpace(completion.Choices[0].Message.Content)
	if polished == "" {
		return draft
	}
	return polished
}
