package sim

import (
	"errors"
	"fmt"
)

// ErrNoScenarios is returned when Run is given an empty scenario list.
var ErrNoScenarios = errors.New("scenario list is empty")

// ErrUnknownPolicy is returned when Run is given a policy it does not
// recognize.
var ErrUnknownPolicy = errors.New("unknown policy")

// Run walks scenarios in order under the given policy and returns the
// aggregate result. Pure function of its inputs: no I/O, no clock, no
// randomness. The only failure paths are input validation; scenario
// failures are data in the result, never errors.
func Run(scenarios []Scenario, policy Policy) (*RunResult, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("sim: %w", ErrNoScenarios)
	}
	switch policy {
	case PolicyStrict, PolicyResilient:
	default:
		return nil, fmt.Errorf("sim: %w: %q", ErrUnknownPolicy, policy)
	}

	result := &RunResult{
		Policy: policy,
		Total:  len(scenarios),
	}

	for _, s := range scenarios {
		result.Attempted = append(result.Attempted, s)
		if !s.Outcome.Failed {
			result.Succeeded++
			continue
		}
		result.Failed++
		if policy == PolicyStrict {
			// A failure at the last position halts nothing: every
			// scenario was already attempted.
			result.HaltedEarly = len(result.Attempted) < len(scenarios)
			break
		}
	}

	return result, nil
}

// FirstFailure returns the first failed attempt, or nil if every
// attempted scenario succeeded.
func (r *RunResult) FirstFailure() *Scenario {
	for i := range r.Attempted {
		if r.Attempted[i].Outcome.Failed {
			return &r.Attempted[i]
		}
	}
	return nil
}
