package nodes

import (
	"fmt"

	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	intentx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/intent"
)

func ClassifyIntent(in *GraphState, classifier *intentx.Classifier) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.Route = classifier.Classify(in.Query)
	return in, nil
}
