package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"IndicatorScope/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			run_trigger TEXT,
			kind        INTEGER,
			country     TEXT,
			start_year  INTEGER,
			end_year    INTEGER,
			outcome     TEXT,
			lengths     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS viewer_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			action     TEXT,
			kind       INTEGER,
			viewer     TEXT,
			ok         INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_viewer_ts ON viewer_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(evt *RunEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lengths, err := json.Marshal(evt.Lengths)
	if err != nil {
		return fmt.Errorf("encode lengths: %w", err)
	}
	_, err = r.db.Exec(`INSERT INTO analysis_runs
		(id, timestamp, run_trigger, kind, country, start_year, end_year, outcome, lengths)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		evt.ID, evt.Time.Unix(), evt.Trigger,
		int(evt.Params.Kind), evt.Params.Country, evt.Params.StartYear, evt.Params.EndYear,
		evt.Outcome.String(), string(lengths),
	)
	return err
}

func (r *SQLiteRecorder) RecordViewer(evt *ViewerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO viewer_events
		(timestamp, action, kind, viewer, ok)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Action, int(evt.Kind), string(evt.Viewer), evt.OK,
	)
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, timestamp, run_trigger, kind, country, start_year, end_year, outcome, lengths
		FROM analysis_runs ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunEvent
	for rows.Next() {
		var (
			evt     RunEvent
			ts      int64
			kind    int
			outcome string
			lengths string
		)
		if err := rows.Scan(&evt.ID, &ts, &evt.Trigger, &kind, &evt.Params.Country,
			&evt.Params.StartYear, &evt.Params.EndYear, &outcome, &lengths); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		evt.Time = time.Unix(ts, 0)
		evt.Params.Kind = model.AnalysisKind(kind)
		if evt.Outcome, err = parseOutcome(outcome); err != nil {
			return nil, fmt.Errorf("run %s: %w", evt.ID, err)
		}
		if err := json.Unmarshal([]byte(lengths), &evt.Lengths); err != nil {
			return nil, fmt.Errorf("decode lengths: %w", err)
		}
		out = append(out, evt)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func parseOutcome(s string) (model.Outcome, error) {
	for o := model.Success; o <= model.InsufficientData; o++ {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}
