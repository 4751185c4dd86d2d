// Package stats keeps a queryable record of run results in SQLite,
// aggregated per suite and policy for trend reporting. The JSONL
// history log is the tamper-evident record; this store exists for
// cheap aggregate queries.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ppiankov/failsim/internal/history"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	ts           TEXT NOT NULL,
	suite        TEXT NOT NULL,
	policy       TEXT NOT NULL,
	attempted    INTEGER NOT NULL,
	succeeded    INTEGER NOT NULL,
	failed       INTEGER NOT NULL,
	halted_early INTEGER NOT NULL,
	availability REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_suite_policy ON runs(suite, policy);
`

// Store wraps the SQLite database holding per-run rows.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the stats database and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("stats: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("stats: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one completed run. The entry must already carry its
// run ID and timestamp (history.Log.Record fills them).
func (s *Store) Record(e history.Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, ts, suite, policy, attempted, succeeded, failed, halted_early, availability)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Timestamp, e.Suite, e.Policy,
		e.Attempted, e.Succeeded, e.Failed, boolToInt(e.HaltedEarly), e.Availability,
	)
	if err != nil {
		return fmt.Errorf("stats: insert run: %w", err)
	}
	return nil
}

// Aggregate holds the per-suite, per-policy rollup of recorded runs.
type Aggregate struct {
	Suite             string  `json:"suite"`
	Policy            string  `json:"policy"`
	Runs              int     `json:"runs"`
	MeanAvailability  float64 `json:"mean_availability"`
	WorstAvailability float64 `json:"worst_availability"`
	HaltedRuns        int     `json:"halted_runs"`
	LastRun           string  `json:"last_run"`
}

// Aggregates returns the rollup for every suite/policy pair, ordered
// by suite then policy.
func (s *Store) Aggregates() ([]Aggregate, error) {
	rows, err := s.db.Query(
		`SELECT suite, policy, COUNT(*), AVG(availability), MIN(availability),
		        SUM(halted_early), MAX(ts)
		 FROM runs
		 GROUP BY suite, policy
		 ORDER BY suite, policy`)
	if err != nil {
		return nil, fmt.Errorf("stats: query aggregates: %w", err)
	}
	defer rows.Close()

	var aggs []Aggregate
	for rows.Next() {
		var a Aggregate
		if err := rows.Scan(&a.Suite, &a.Policy, &a.Runs, &a.MeanAvailability,
			&a.WorstAvailability, &a.HaltedRuns, &a.LastRun); err != nil {
			return nil, fmt.Errorf("stats: scan aggregate: %w", err)
		}
		aggs = append(aggs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats: read aggregates: %w", err)
	}
	return aggs, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
