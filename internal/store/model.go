package store

import (
	"sync"

	"IndicatorScope/internal/model"
)

// Notifier fans an update out to every subscriber.
type Notifier interface {
	NotifyAll(params *model.Parameters)
}

// Model holds the latest analysis result and publishes replacements.
type Model struct {
	mu       sync.RWMutex
	result   model.AnalysisResult
	params   *model.Parameters
	notifier Notifier
}

// NewModel creates an empty Model. params is the shared selection passed
// to subscribers on every update.
func NewModel(params *model.Parameters, notifier Notifier) *Model {
	return &Model{params: params, notifier: notifier}
}

// StoreResult replaces the held result and then notifies subscribers in
// order. It returns after every subscriber has been updated.
func (m *Model) StoreResult(result model.AnalysisResult) {
	m.mu.Lock()
	m.result = result
	m.mu.Unlock()

	if m.notifier != nil {
		m.notifier.NotifyAll(m.params)
	}
}

// State returns the current result, empty before the first success.
func (m *Model) State() model.AnalysisResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.result == nil {
		return model.AnalysisResult{}
	}
	return m.result
}
