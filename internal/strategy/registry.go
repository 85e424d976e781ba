package strategy

import (
	"fmt"

	"IndicatorScope/internal/model"
)

// Registry maps each analysis kind to its Strategy.
type Registry struct {
	strategies [model.KindCount]*Strategy
}

// NewRegistry builds one Strategy per catalog entry, all sharing source.
func NewRegistry(source Source) *Registry {
	r := &Registry{}
	for i, def := range Catalog {
		r.strategies[i] = New(def, source)
	}
	return r
}

// Get returns the Strategy for kind. Kinds are validated before they get
// here, so an invalid kind panics.
func (r *Registry) Get(kind model.AnalysisKind) *Strategy {
	if !kind.Valid() {
		panic(fmt.Sprintf("strategy: no strategy for analysis kind %d", kind))
	}
	return r.strategies[kind-1]
}
