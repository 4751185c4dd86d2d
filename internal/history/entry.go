// Package history is the append-only record of completed simulation
// runs: one JSONL line per run, SHA-256 hash-chained so tampering with
// past results is detectable.
package history

import "github.com/ppiankov/failsim/internal/sim"

// Entry is one line in the hash-chained JSONL run history.
// All fields are scalars (no map[string]any) to guarantee deterministic
// json.Marshal field order for reproducible hashing.
type Entry struct {
	Timestamp    string  `json:"ts"`
	RunID        string  `json:"run_id"`
	Suite        string  `json:"suite"`
	Policy       string  `json:"policy"`
	Attempted    int     `json:"attempted"`
	Succeeded    int     `json:"succeeded"`
	Failed       int     `json:"failed"`
	HaltedEarly  bool    `json:"halted_early"`
	Availability float64 `json:"availability"`
	PrevHash     string  `json:"prev_hash"`
}

// EntryForRun builds a history entry from one completed run.
// Timestamp, RunID, and PrevHash are filled by Log.Record.
func EntryForRun(suite string, r *sim.RunResult) Entry {
	return Entry{
		Suite:        suite,
		Policy:       string(r.Policy),
		Attempted:    len(r.Attempted),
		Succeeded:    r.Succeeded,
		Failed:       r.Failed,
		HaltedEarly:  r.HaltedEarly,
		Availability: r.Availability(),
	}
}
