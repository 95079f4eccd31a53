package orchestrator

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/compose"
	capabilityx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/capability"
	contractx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/contract"
	intentx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/intent"
	nodex "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/nodes"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
)

var ErrEmptyQuery = contractx.ErrEmptyQuery

// Orchestrator runs one support turn: classify, gate, invoke, render.
// It holds only immutable collaborators, so turns share no state.
type Orchestrator struct {
	registry   *capabilityx.Registry
	classifier *intentx.Classifier
	polisher   *replyx.Polisher

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

// New wires the turn pipeline. polisher may be nil; replies then stay
// fully deterministic.
func New(
	registry *capabilityx.Registry,
	classifier *intentx.Classifier,
	polisher *replyx.Polisher,
) (*Orchestrator, error) {
	if registry == nil {
		return nil, errors.New("capability registry is required")
	}
	if classifier == nil {
		return nil, errors.New("intent classifier is required")
	}

	o := &Orchestrator{
		registry:   registry,
		classifier: classifier,
		polisher:   polisher,
	}

	graphRunner, err := o.compileHandleQueryGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleQuery maps one raw customer query to the rendered reply.
func (o *Orchestrator) HandleQuery(ctx context.Context, query string) (string, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{Query: query})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}
