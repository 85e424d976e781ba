package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run an analysis and refresh it on the configured schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a := newApp(cfg)
		defer a.Close()

		if err := applySelection(cmd, a.session); err != nil {
			return err
		}
		a.renderer.Dir = cfg.Output.Dir

		if outcome := a.session.Recalculate(ctx); outcome != model.Success {
			log.Printf("[WARN] initial run: %s", outcome.Message())
		} else if err := render(a.session, a.renderer); err != nil {
			log.Printf("[ERROR] initial render: %v", err)
		}

		sched := scheduler.NewScheduler(ctx, a.session, a.renderer)
		if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		log.Printf("[INFO] refreshing on %q. Press Ctrl+C to stop.", cfg.Schedule.RefreshCron)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
		return nil
	},
}

func init() {
	addSelectionFlags(watchCmd)
}
