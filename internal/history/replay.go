package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Filter holds selection criteria for reading the run history.
// Zero-value fields match everything.
type Filter struct {
	Suite  string
	Policy string
	Last   int // keep only the most recent N entries, 0 = all
}

// Summary holds aggregate figures for a set of history entries.
type Summary struct {
	Total             int     `json:"total"`
	StrictRuns        int     `json:"strict_runs"`
	ResilientRuns     int     `json:"resilient_runs"`
	HaltedRuns        int     `json:"halted_runs"`
	MeanAvailability  float64 `json:"mean_availability"`
	BestAvailability  float64 `json:"best_availability"`
	WorstAvailability float64 `json:"worst_availability"`
	FirstTimestamp    string  `json:"first_timestamp"`
	LastTimestamp     string  `json:"last_timestamp"`
}

// Result holds filtered entries and their summary.
type Result struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// Read loads history entries matching the filter and computes their
// summary. Malformed lines are skipped: partial history is better than
// none when showing past runs (Verify is the strict reader).
func Read(path string, filter Filter) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	result := &Result{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue // skip malformed lines
		}
		if filter.Suite != "" && entry.Suite != filter.Suite {
			continue
		}
		if filter.Policy != "" && entry.Policy != filter.Policy {
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history log: %w", err)
	}

	if filter.Last > 0 && len(result.Entries) > filter.Last {
		result.Entries = result.Entries[len(result.Entries)-filter.Last:]
	}

	for _, e := range result.Entries {
		updateSummary(&result.Summary, e)
	}
	if result.Summary.Total > 0 {
		result.Summary.MeanAvailability /= float64(result.Summary.Total)
	}

	return result, nil
}

func updateSummary(s *Summary, entry Entry) {
	if s.Total == 0 {
		s.FirstTimestamp = entry.Timestamp
		s.BestAvailability = entry.Availability
		s.WorstAvailability = entry.Availability
	}
	s.Total++
	s.LastTimestamp = entry.Timestamp

	switch entry.Policy {
	case "strict":
		s.StrictRuns++
	case "resilient":
		s.ResilientRuns++
	}
	if entry.HaltedEarly {
		s.HaltedRuns++
	}

	// MeanAvailability accumulates a sum here; Read divides at the end.
	s.MeanAvailability += entry.Availability
	if entry.Availability > s.BestAvailability {
		s.BestAvailability = entry.Availability
	}
	if entry.Availability < s.WorstAvailability {
		s.WorstAvailability = entry.Availability
	}
}
