// Package sim is the outcome simulator: a deterministic pass/fail walk
// over a scripted scenario list under a halt-or-continue policy.
// Scenario outcomes are fixed at construction; the simulator never
// generates failures, it only records how each policy responds to them.
package sim

// FailureMode tags a scenario with the kind of fault it scripts.
// Modes are descriptive only and never affect control flow.
type FailureMode string

const (
	ModeNone            FailureMode = ""
	ModeDivideByZero    FailureMode = "divide_by_zero"
	ModeMissingResource FailureMode = "missing_resource"
	ModeParseError      FailureMode = "parse_error"
	ModeTimeout         FailureMode = "timeout"
)

// KnownMode reports whether m is a recognized failure mode.
func KnownMode(m FailureMode) bool {
	switch m {
	case ModeNone, ModeDivideByZero, ModeMissingResource, ModeParseError, ModeTimeout:
		return true
	default:
		return false
	}
}

// Outcome is the predetermined result of one scenario: success, or
// failure with a reason.
type Outcome struct {
	Failed bool   `json:"failed"`
	Reason string `json:"reason,omitempty"`
}

// Success returns a succeeding outcome.
func Success() Outcome {
	return Outcome{}
}

// Failure returns a failing outcome with the given reason.
func Failure(reason string) Outcome {
	return Outcome{Failed: true, Reason: reason}
}

// Scenario is one named, predetermined pass-or-fail event. Immutable
// once constructed.
type Scenario struct {
	Name    string      `json:"name"`
	Mode    FailureMode `json:"mode,omitempty"`
	Outcome Outcome     `json:"outcome"`
}

// Policy selects how a run responds to scenario failures.
type Policy string

const (
	// PolicyStrict halts the run at the first failure. Scenarios after
	// the halt are never attempted.
	PolicyStrict Policy = "strict"

	// PolicyResilient attempts every scenario and records each result,
	// continuing through failures.
	PolicyResilient Policy = "resilient"
)

// Policies lists the supported policies in display order.
func Policies() []Policy {
	return []Policy{PolicyStrict, PolicyResilient}
}

// RunResult is the aggregate outcome of one run. Produced once per
// policy, never mutated after creation.
//
// Invariant: Succeeded+Failed == len(Attempted). Under PolicyStrict,
// HaltedEarly means Attempted is a strict prefix of the input list.
// Under PolicyResilient, HaltedEarly is always false and Attempted
// equals the input list.
type RunResult struct {
	Policy      Policy     `json:"policy"`
	Attempted   []Scenario `json:"attempted"`
	Succeeded   int        `json:"succeeded"`
	Failed      int        `json:"failed"`
	HaltedEarly bool       `json:"halted_early"`
	Total       int        `json:"total"`
}

// Availability is the ratio of succeeded scenarios to the full
// scenario count. The full count is the denominator under both
// policies, so a strict run pays for every scenario its early halt
// dropped.
func (r *RunResult) Availability() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Succeeded) / float64(r.Total)
}
