package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
)

// status returns the one-word summary for a report line.
func status(r *Report) string {
	switch {
	case r.Result.HaltedEarly:
		return "HALTED"
	case r.Result.Failed > 0:
		return "DEGRADED"
	default:
		return "CLEAN"
	}
}

// FormatText renders a list of run reports as human-readable text.
func FormatText(reports []*Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Ran %d scenario run", len(reports))
	if len(reports) != 1 {
		b.WriteString("s")
	}
	b.WriteString("...\n\n")

	totalAttempted := 0
	totalSucceeded := 0

	for _, r := range reports {
		res := r.Result
		totalAttempted += len(res.Attempted)
		totalSucceeded += res.Succeeded

		fmt.Fprintf(&b, "  %-8s %-20s [%-9s] %d/%d attempted, %d succeeded, availability %.1f%%\n",
			status(r), r.Suite, res.Policy, len(res.Attempted), res.Total,
			res.Succeeded, res.Availability()*100)

		for i, attempt := range res.Attempted {
			if !attempt.Outcome.Failed {
				continue
			}
			mode := string(attempt.Mode)
			if mode == "" {
				mode = "-"
			}
			fmt.Fprintf(&b, "    FAIL  step %d: %-16s %-18s %s\n",
				i+1, attempt.Name, mode, attempt.Outcome.Reason)
		}
		if res.HaltedEarly {
			dropped := res.Total - len(res.Attempted)
			fmt.Fprintf(&b, "    HALT  %d scenario", dropped)
			if dropped != 1 {
				b.WriteString("s")
			}
			b.WriteString(" never attempted\n")
		}
	}

	fmt.Fprintf(&b, "\n%d of %d attempted scenarios succeeded.\n", totalSucceeded, totalAttempted)

	return b.String()
}

// FormatJSON renders run reports as JSON.
func FormatJSON(reports []*Report) (string, error) {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal reports: %w", err)
	}
	return string(data), nil
}
