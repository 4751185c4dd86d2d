package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const separator = "──────────────────────────────────────────────────────────────────"

// FormatTimeline renders a history Result as a human-readable timeline.
func FormatTimeline(result *Result) string {
	if len(result.Entries) == 0 {
		return "No history entries found.\n"
	}

	var b strings.Builder

	first := formatDateTime(result.Summary.FirstTimestamp)
	last := formatTimeOnly(result.Summary.LastTimestamp)
	fmt.Fprintf(&b, "Run history | %s–%s UTC\n", first, last)
	b.WriteString(separator + "\n")

	for _, e := range result.Entries {
		halted := ""
		if e.HaltedEarly {
			halted = "  [halted]"
		}
		fmt.Fprintf(&b, "%-10s %-14s %-20s %-10s %d/%d ok  %5.1f%%%s\n",
			formatTimeOnly(e.Timestamp), e.RunID, truncate(e.Suite, 20),
			strings.ToUpper(e.Policy), e.Succeeded, e.Attempted,
			e.Availability*100, halted)
	}

	b.WriteString(separator + "\n")
	b.WriteString(formatSummary(result.Summary))

	return b.String()
}

// FormatJSON renders a history Result as indented JSON.
func FormatJSON(result *Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal history result: %w", err)
	}
	return string(data), nil
}

func formatSummary(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d runs (%d strict, %d resilient), %d halted early\n",
		s.Total, s.StrictRuns, s.ResilientRuns, s.HaltedRuns)
	fmt.Fprintf(&b, "availability: mean %.1f%%, best %.1f%%, worst %.1f%%\n",
		s.MeanAvailability*100, s.BestAvailability*100, s.WorstAvailability*100)
	return b.String()
}

func formatDateTime(ts string) string {
	t, err := time.Parse(TimestampFormat, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatTimeOnly(ts string) string {
	t, err := time.Parse(TimestampFormat, ts)
	if err != nil {
		return ts
	}
	return t.Format("15:04:05")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
