package scenario

import (
	"github.com/ppiankov/failsim/internal/sim"
)

// Step is one scripted event in a suite file.
type Step struct {
	Name   string `yaml:"name" json:"name"`
	Mode   string `yaml:"mode,omitempty" json:"mode,omitempty"`
	Fail   bool   `yaml:"fail,omitempty" json:"fail,omitempty"`
	Reason string `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Suite is a named, ordered list of scripted steps. The step outcomes
// are fixed in the file; running a suite is deterministic.
type Suite struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []Step `yaml:"steps" json:"steps"`
}

// defaultReason is recorded for failing steps that script no reason.
const defaultReason = "scripted failure"

// Scenarios converts the suite's steps into simulator scenarios.
func (s *Suite) Scenarios() []sim.Scenario {
	scenarios := make([]sim.Scenario, 0, len(s.Steps))
	for _, step := range s.Steps {
		sc := sim.Scenario{
			Name: step.Name,
			Mode: sim.FailureMode(step.Mode),
		}
		if step.Fail {
			reason := step.Reason
			if reason == "" {
				reason = defaultReason
			}
			sc.Outcome = sim.Failure(reason)
		} else {
			sc.Outcome = sim.Success()
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios
}

// Report pairs one suite with the result of a run under one policy.
type Report struct {
	File   string         `json:"file,omitempty"`
	Suite  string         `json:"suite"`
	Result *sim.RunResult `json:"result"`
}
