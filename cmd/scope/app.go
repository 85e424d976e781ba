package main

import (
	"log"
	"os"
	"time"

	"IndicatorScope/internal/collector"
	"IndicatorScope/internal/config"
	"IndicatorScope/internal/recorder"
	"IndicatorScope/internal/reftable"
	"IndicatorScope/internal/session"
	"IndicatorScope/internal/validator"
	"IndicatorScope/internal/viewer"
)

// app holds the wired collaborators of one process.
type app struct {
	session  *session.Session
	renderer *viewer.Renderer
	recorder recorder.Recorder
}

func newApp(cfg *config.Config) *app {
	var fetcher collector.Fetcher
	switch cfg.DataSource.Type {
	case "file":
		fetcher = collector.NewFileFetcher(cfg.DataSource.DataDir)
	default:
		fetcher = collector.NewWorldBankFetcher(
			cfg.DataSource.BaseURL,
			cfg.Proxy,
			cfg.DataSource.RequestsPerSecond,
			time.Duration(cfg.DataSource.TimeoutSeconds)*time.Second,
		)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	paths := cfg.TablePaths()
	tables := reftable.Load(paths)
	names := reftable.LoadCountryNames(paths.Names)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	s := session.New(session.Options{
		Validator: validator.New(tables),
		Names:     names,
		Source:    collector.NewCollector(fetcher),
		Recorder:  rec,
		Defaults:  cfg.DefaultParameters(),
	})

	return &app{
		session:  s,
		renderer: &viewer.Renderer{Dir: cfg.Output.Dir, Out: os.Stdout},
		recorder: rec,
	}
}

func (a *app) Close() {
	if err := a.recorder.Close(); err != nil {
		log.Printf("[WARN] close recorder: %v", err)
	}
}
