package nodes

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
)

// InvokeCapability calls the selected capability. Domain errors come
// back inside the payload and flow on to the renderer; a Go error from
// the call itself is swallowed here and replaced with the fixed apology
// so an unexpected fault can never surface raw or crash the turn.
func InvokeCapability(ctx context.Context, in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Reply != "" {
		return in, nil
	}
	if in.Capability == nil {
		return nil, fmt.Errorf("%w: capability not resolved", contractx.ErrValidation)
	}

	log.Info().
		Str("capability", string(in.Capability.Name())).
		Int("args", len(in.Route.Args)).
		Msg("invoking capability")

	payload, err := in.Capability.Invoke(ctx, in.Route.Args)
	if err != nil {
		log.Error().Err(err).
			Str("capability", string(in.Capability.Name())).
			Msg("capability invocation failed")
		in.Reply = replyx.GenericApology
		return in, nil
	}

	in.Payload = payload
	return in, nil
}
