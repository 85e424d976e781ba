package viewer

import (
	"log"
	"sync"

	"IndicatorScope/internal/model"
)

// List is the ordered set of subscribed viewers, at most one per kind.
type List struct {
	mu      sync.Mutex
	state   StateReader
	viewers []Viewer
}

// NewList creates an empty list whose viewers read from state.
func NewList(state StateReader) *List {
	return &List{state: state}
}

// Add subscribes a new viewer of kind. It returns false if one is
// already subscribed.
func (l *List) Add(kind model.ViewerKind) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.indexOf(kind) >= 0 {
		return false
	}
	v, err := New(kind, l.state)
	if err != nil {
		log.Printf("[WARN] add viewer: %v", err)
		return false
	}
	l.viewers = append(l.viewers, v)
	return true
}

// Remove unsubscribes the viewer of kind.
func (l *List) Remove(kind model.ViewerKind) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(kind)
	if i < 0 {
		return false
	}
	l.viewers = append(l.viewers[:i], l.viewers[i+1:]...)
	return true
}

// Clear removes every viewer.
func (l *List) Clear() {
	l.mu.Lock()
	l.viewers = nil
	l.mu.Unlock()
}

// NotifyAll updates every viewer in subscription order.
func (l *List) NotifyAll(params *model.Parameters) {
	for _, v := range l.snapshot() {
		v.Update(params)
	}
}

// Kinds returns the subscribed viewer kinds in order.
func (l *List) Kinds() []model.ViewerKind {
	vs := l.snapshot()
	kinds := make([]model.ViewerKind, len(vs))
	for i, v := range vs {
		kinds[i] = v.Kind()
	}
	return kinds
}

// Len returns the number of subscribed viewers.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.viewers)
}

// DisplayAll calls render for each viewer in order and stops at the
// first error.
func (l *List) DisplayAll(render func(Viewer) error) error {
	for _, v := range l.snapshot() {
		if err := render(v); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) snapshot() []Viewer {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Viewer, len(l.viewers))
	copy(out, l.viewers)
	return out
}

func (l *List) indexOf(kind model.ViewerKind) int {
	for i, v := range l.viewers {
		if v.Kind() == kind {
			return i
		}
	}
	return -1
}
