package session

import (
	"context"
	"log"
	"sync"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/recorder"
	"IndicatorScope/internal/reftable"
	"IndicatorScope/internal/store"
	"IndicatorScope/internal/strategy"
	"IndicatorScope/internal/validator"
	"IndicatorScope/internal/viewer"
)

// ViewerOutcome is the result of an AddViewer request.
type ViewerOutcome int

const (
	ViewerAdded ViewerOutcome = iota
	ViewerIncompatible
	ViewerDuplicate
)

func (o ViewerOutcome) Message() string {
	switch o {
	case ViewerAdded:
		return "Viewer added"
	case ViewerIncompatible:
		return "Viewer not available for this analysis"
	case ViewerDuplicate:
		return "Viewer already shown"
	default:
		return "Unknown viewer outcome"
	}
}

// Options holds the collaborators of a Session.
type Options struct {
	Validator *validator.Validator
	Names     *reftable.CountryNames
	Source    strategy.Source
	Recorder  recorder.Recorder
	Defaults  model.Parameters
}

// Session owns the analysis parameters and serialises every command that
// reads or changes them.
type Session struct {
	mu        sync.Mutex
	params    *model.Parameters
	pending   model.Parameters
	validator *validator.Validator
	names     *reftable.CountryNames
	analysis  *strategy.Context
	model     *store.Model
	viewers   *viewer.List
	approved  model.AnalysisKind // kind the subscribed viewers were checked against
	recorder  recorder.Recorder
}

// viewerGate forwards notifications only when the published result has the
// shape the subscribed viewers were approved for. Called with Session.mu held.
type viewerGate struct {
	s *Session
}

func (g viewerGate) NotifyAll(params *model.Parameters) {
	if g.s.viewers.Len() > 0 && g.s.approved != params.Kind {
		log.Printf("[WARN] viewers approved for kind %d, not notifying with kind %d result", g.s.approved, params.Kind)
		return
	}
	g.s.viewers.NotifyAll(params)
}

// New wires a Session. The result model starts empty.
func New(opts Options) *Session {
	params := opts.Defaults
	s := &Session{
		params:    &params,
		pending:   params,
		validator: opts.Validator,
		names:     opts.Names,
		recorder:  opts.Recorder,
	}
	if s.recorder == nil {
		s.recorder = recorder.NewNoopRecorder()
	}
	if s.names == nil {
		s.names = reftable.NewCountryNames(nil)
	}

	var m *store.Model
	s.viewers = viewer.NewList(viewer.StateFunc(func() model.AnalysisResult { return m.State() }))
	m = store.NewModel(s.params, viewerGate{s: s})
	s.model = m
	s.analysis = strategy.NewContext(s.params, strategy.NewRegistry(opts.Source), m)
	return s
}

// SetParameters records a new selection for the next Recalculate. Selecting
// a different analysis kind clears the viewers.
func (s *Session) SetParameters(kind model.AnalysisKind, country string, startYear, endYear int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if kind != s.pending.Kind && s.viewers.Len() > 0 {
		s.viewers.Clear()
		s.recordViewer("CLEAR", kind, "", true)
	}
	s.pending = model.Parameters{Kind: kind, Country: country, StartYear: startYear, EndYear: endYear}
}

// Recalculate validates the pending selection and, when valid, makes it
// current and runs the analysis.
func (s *Session) Recalculate(ctx context.Context) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pending
	if code, ok := s.names.Code(p.Country); ok {
		p.Country = code
	}

	outcome := s.validator.Validate(p.Kind, p.Country, p.StartYear, p.EndYear)
	if outcome == model.Success {
		*s.params = p
		outcome = s.execute(ctx)
	}
	s.recordRun("command", p, outcome)
	return outcome
}

// Refresh re-runs the analysis for the current parameters. Parameters that
// do not validate, such as unchecked defaults, are not run.
func (s *Session) Refresh(ctx context.Context) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *s.params
	outcome := s.validator.Validate(p.Kind, p.Country, p.StartYear, p.EndYear)
	if outcome == model.Success {
		outcome = s.execute(ctx)
	}
	s.recordRun("schedule", p, outcome)
	return outcome
}

func (s *Session) execute(ctx context.Context) model.Outcome {
	if !s.analysis.Execute(ctx) {
		return model.InsufficientData
	}
	return model.Success
}

// AddViewer subscribes a viewer if the selected analysis kind permits it.
// The viewer shows data from the next successful recalculation.
func (s *Session) AddViewer(kind model.ViewerKind) ViewerOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.validator.IsValidViewer(s.pending.Kind, kind) {
		s.recordViewer("ADD", s.pending.Kind, kind, false)
		return ViewerIncompatible
	}
	if !s.viewers.Add(kind) {
		s.recordViewer("ADD", s.pending.Kind, kind, false)
		return ViewerDuplicate
	}
	s.approved = s.pending.Kind
	s.recordViewer("ADD", s.pending.Kind, kind, true)
	return ViewerAdded
}

// RemoveViewer unsubscribes the viewer of kind.
func (s *Session) RemoveViewer(kind model.ViewerKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.viewers.Remove(kind)
	s.recordViewer("REMOVE", s.pending.Kind, kind, ok)
	return ok
}

// Status is a point-in-time view of the session.
type Status struct {
	Current model.Parameters
	Pending model.Parameters
	Viewers []model.ViewerKind
	Result  model.AnalysisResult
}

// Status returns the current state of the session.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Current: *s.params,
		Pending: s.pending,
		Viewers: s.viewers.Kinds(),
		Result:  s.model.State(),
	}
}

// Display renders every subscribed viewer in order.
func (s *Session) Display(render func(viewer.Viewer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewers.DisplayAll(render)
}

// History returns up to limit recorded runs, newest first.
func (s *Session) History(limit int) ([]recorder.RunEvent, error) {
	return s.recorder.RecentRuns(limit)
}

func (s *Session) recordRun(trigger string, p model.Parameters, outcome model.Outcome) {
	var lengths []int
	if outcome == model.Success {
		lengths = s.model.State().Lengths()
	}
	log.Printf("[INFO] %s run %s: %s", trigger, p, outcome)
	if err := s.recorder.RecordRun(recorder.NewRunEvent(trigger, p, outcome, lengths)); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}
}

func (s *Session) recordViewer(action string, kind model.AnalysisKind, v model.ViewerKind, ok bool) {
	evt := &recorder.ViewerEvent{Action: action, Kind: kind, Viewer: v, OK: ok}
	if err := s.recorder.RecordViewer(evt); err != nil {
		log.Printf("[WARN] record viewer event: %v", err)
	}
}
