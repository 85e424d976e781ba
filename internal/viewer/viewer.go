package viewer

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/strategy"
)

// ErrNoData is returned by Display before the viewer has received an update.
var ErrNoData = errors.New("viewer has no data yet")

// Viewer renders the analysis result it last received.
type Viewer interface {
	Kind() model.ViewerKind
	Update(params *model.Parameters)
	Display(w io.Writer) error
}

// StateReader exposes the current analysis result.
type StateReader interface {
	State() model.AnalysisResult
}

// StateFunc adapts a function to StateReader.
type StateFunc func() model.AnalysisResult

func (f StateFunc) State() model.AnalysisResult { return f() }

// snapshot is the data shared by every viewer: a copy of the parameters
// and result taken on the last update.
type snapshot struct {
	mu      sync.RWMutex
	state   StateReader
	params  model.Parameters
	result  model.AnalysisResult
	updated bool
}

func (s *snapshot) Update(params *model.Parameters) {
	result := s.state.State()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = *params
	s.result = result
	s.updated = true
}

func (s *snapshot) current() (model.Parameters, model.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.updated || len(s.result) == 0 {
		return model.Parameters{}, nil, ErrNoData
	}
	return s.params, s.result, nil
}

// title returns the analysis title and one label per result series.
func title(params model.Parameters, n int) (string, []string) {
	def, ok := strategy.Lookup(params.Kind)
	labels := make([]string, n)
	for i := range labels {
		if ok && i < len(def.Labels) {
			labels[i] = def.Labels[i]
		} else {
			labels[i] = fmt.Sprintf("Series %d", i+1)
		}
	}
	if !ok {
		return fmt.Sprintf("Analysis %d", params.Kind), labels
	}
	return def.Title, labels
}

func subtitle(params model.Parameters) string {
	return fmt.Sprintf("%s, %d-%d", params.Country, params.StartYear, params.EndYear)
}

// New builds a viewer of kind reading results from state.
func New(kind model.ViewerKind, state StateReader) (Viewer, error) {
	snap := &snapshot{state: state}
	switch kind {
	case model.ViewerLine:
		return &LineViewer{snapshot: snap}, nil
	case model.ViewerScatter:
		return &ScatterViewer{snapshot: snap}, nil
	case model.ViewerTime:
		return &TimeViewer{snapshot: snap}, nil
	case model.ViewerPie:
		return &PieViewer{snapshot: snap}, nil
	case model.ViewerReport:
		return &ReportViewer{snapshot: snap}, nil
	default:
		return nil, fmt.Errorf("unknown viewer kind %q", kind)
	}
}
