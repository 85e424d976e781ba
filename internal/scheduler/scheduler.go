package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/viewer"
)

// Refresher re-runs the current analysis and renders its viewers.
type Refresher interface {
	Refresh(ctx context.Context) model.Outcome
	Display(render func(viewer.Viewer) error) error
}

// Scheduler manages the periodic refresh task.
type Scheduler struct {
	Cron     *cron.Cron
	Session  Refresher
	Renderer *viewer.Renderer
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, s Refresher, r *viewer.Renderer) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Session:  s,
		Renderer: r,
		Ctx:      ctx,
	}
}

// Register adds the refresh task on spec (six-field cron, seconds first).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running task.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately.
func (s *Scheduler) RunNow() model.Outcome {
	return s.refresh()
}

func (s *Scheduler) refreshTask() {
	s.refresh()
}

func (s *Scheduler) refresh() model.Outcome {
	log.Println("[INFO] running refresh task")
	outcome := s.Session.Refresh(s.Ctx)
	if outcome != model.Success {
		log.Printf("[WARN] refresh: %s", outcome.Message())
		return outcome
	}

	err := s.Session.Display(func(v viewer.Viewer) error {
		path, err := s.Renderer.Render(v)
		if err != nil {
			return fmt.Errorf("render %s: %w", v.Kind(), err)
		}
		if path != "" {
			log.Printf("[INFO] wrote %s", path)
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] refresh: %v", err)
	}
	return outcome
}
