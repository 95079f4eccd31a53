package nodes

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		reply = replyx.NoCapabilityResponse
	}
	return GraphOutput{Reply: reply}, nil
}
