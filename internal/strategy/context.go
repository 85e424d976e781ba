package strategy

import (
	"context"

	"IndicatorScope/internal/model"
)

// Context runs the strategy selected by the current parameters.
type Context struct {
	params   *model.Parameters
	registry *Registry
	sink     ResultSink
}

// NewContext wires the shared parameters, registry and result sink.
func NewContext(params *model.Parameters, registry *Registry, sink ResultSink) *Context {
	return &Context{params: params, registry: registry, sink: sink}
}

// Execute computes the analysis for the current parameters.
func (c *Context) Execute(ctx context.Context) bool {
	p := *c.params
	return c.registry.Get(p.Kind).Compute(ctx, p.Country, p.StartYear, p.EndYear, c.sink)
}
