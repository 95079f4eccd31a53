package nodes

import (
	"fmt"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
)

func RenderResponse(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Reply != "" {
		return in, nil
	}

	in.Reply = replyx.Render(in.Payload)
	return in, nil
}
