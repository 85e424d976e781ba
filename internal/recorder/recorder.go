package recorder

import (
	"time"

	"github.com/google/uuid"

	"IndicatorScope/internal/model"
)

// RunEvent records one recalculation request and its outcome.
type RunEvent struct {
	ID      string
	Time    time.Time
	Trigger string // "command" or "schedule"
	Params  model.Parameters
	Outcome model.Outcome
	Lengths []int // points per derived series, empty unless Success
}

// NewRunEvent stamps a RunEvent with a fresh id and the current time.
func NewRunEvent(trigger string, params model.Parameters, outcome model.Outcome, lengths []int) *RunEvent {
	return &RunEvent{
		ID:      uuid.New().String(),
		Time:    time.Now(),
		Trigger: trigger,
		Params:  params,
		Outcome: outcome,
		Lengths: lengths,
	}
}

// ViewerEvent records a change to the viewer list.
type ViewerEvent struct {
	Action string // "ADD", "REMOVE", "CLEAR"
	Kind   model.AnalysisKind
	Viewer model.ViewerKind
	OK     bool
}

// Recorder persists the history of a session.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	RecordViewer(evt *ViewerEvent) error
	RecentRuns(limit int) ([]RunEvent, error)
	Close() error
}
