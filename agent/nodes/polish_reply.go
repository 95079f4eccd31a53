package nodes

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
)

// PolishReply optionally rephrases the drafted reply for tone. A nil
// polisher passes the draft through.
func PolishReply(ctx context.Context, in *GraphState, polisher *replyx.Polisher) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if polisher == nil || in.Reply == "" {
		return in, nil
	}

	in.Reply = polisher.Polish(ctx, in.Query, in.Reply)
	return in, nil
}
