package stats

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatText renders aggregates as a human-readable table.
func FormatText(aggs []Aggregate) string {
	if len(aggs) == 0 {
		return "No recorded runs.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-10s %6s %10s %10s %8s\n",
		"SUITE", "POLICY", "RUNS", "MEAN", "WORST", "HALTED")

	for _, a := range aggs {
		fmt.Fprintf(&b, "%-20s %-10s %6d %9.1f%% %9.1f%% %8d\n",
			a.Suite, a.Policy, a.Runs,
			a.MeanAvailability*100, a.WorstAvailability*100, a.HaltedRuns)
	}

	return b.String()
}

// FormatJSON renders aggregates as JSON.
func FormatJSON(aggs []Aggregate) (string, error) {
	data, err := json.MarshalIndent(aggs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal aggregates: %w", err)
	}
	return string(data), nil
}
