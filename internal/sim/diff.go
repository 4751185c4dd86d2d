package sim

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Comparison contrasts a strict and a resilient run over the same
// scenario set.
type Comparison struct {
	Total                 int     `json:"total"`
	StrictAttempted       int     `json:"strict_attempted"`
	StrictSucceeded       int     `json:"strict_succeeded"`
	StrictAvailability    float64 `json:"strict_availability"`
	ResilientSucceeded    int     `json:"resilient_succeeded"`
	ResilientFailed       int     `json:"resilient_failed"`
	ResilientAvailability float64 `json:"resilient_availability"`
	AvailabilityDelta     float64 `json:"availability_delta"`
	DroppedByHalt         int     `json:"dropped_by_halt"`
}

// Compare builds a Comparison from a strict and a resilient run of the
// same scenario list.
func Compare(strict, resilient *RunResult) *Comparison {
	return &Comparison{
		Total:                 resilient.Total,
		StrictAttempted:       len(strict.Attempted),
		StrictSucceeded:       strict.Succeeded,
		StrictAvailability:    strict.Availability(),
		ResilientSucceeded:    resilient.Succeeded,
		ResilientFailed:       resilient.Failed,
		ResilientAvailability: resilient.Availability(),
		AvailabilityDelta:     resilient.Availability() - strict.Availability(),
		DroppedByHalt:         strict.Total - len(strict.Attempted),
	}
}

// FormatComparisonText renders a Comparison as human-readable text.
func FormatComparisonText(c *Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Comparing policies over %d scenarios...\n\n", c.Total)
	fmt.Fprintf(&b, "  STRICT     attempted %d/%d, %d succeeded, availability %.1f%%\n",
		c.StrictAttempted, c.Total, c.StrictSucceeded, c.StrictAvailability*100)
	fmt.Fprintf(&b, "  RESILIENT  attempted %d/%d, %d succeeded, availability %.1f%%\n",
		c.Total, c.Total, c.ResilientSucceeded, c.ResilientAvailability*100)

	b.WriteString("\n")
	if c.DroppedByHalt > 0 {
		fmt.Fprintf(&b, "%d scenario", c.DroppedByHalt)
		if c.DroppedByHalt != 1 {
			b.WriteString("s")
		}
		b.WriteString(" never attempted under strict. ")
	}
	fmt.Fprintf(&b, "Continuing through failures is worth %.1f points of availability.\n",
		c.AvailabilityDelta*100)

	return b.String()
}

// FormatComparisonJSON renders a Comparison as JSON.
func FormatComparisonJSON(c *Comparison) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal comparison: %w", err)
	}
	return string(data), nil
}
