package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/failsim/internal/history"
	"github.com/ppiankov/failsim/internal/scenario"
	"github.com/ppiankov/failsim/internal/sim"
)

// RunInput is the input for the failsim_run tool.
type RunInput struct {
	Suite  string `json:"suite,omitempty" jsonschema:"built-in suite name or path to a suite YAML file (default production-load)"`
	Policy string `json:"policy,omitempty" jsonschema:"execution policy: strict or resilient (default resilient)"`
}

// FailedStep describes one failed scenario in a run.
type FailedStep struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// RunOutput is the output of the failsim_run tool.
type RunOutput struct {
	Suite        string       `json:"suite,omitempty"`
	Policy       string       `json:"policy,omitempty"`
	Total        int          `json:"total"`
	Attempted    int          `json:"attempted"`
	Succeeded    int          `json:"succeeded"`
	Failed       int          `json:"failed"`
	HaltedEarly  bool         `json:"halted_early"`
	Availability float64      `json:"availability"`
	FailedSteps  []FailedStep `json:"failed_steps,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// --- Handlers ---

func (s *Server) handleRun(ctx context.Context, req *mcpsdk.CallToolRequest, input RunInput) (*mcpsdk.CallToolResult, RunOutput, error) {
	if input.Suite == "" {
		input.Suite = scenario.DefaultSuite
	}
	if input.Policy == "" {
		input.Policy = string(sim.PolicyResilient)
	}

	suite, err := scenario.Resolve(input.Suite)
	if err != nil {
		out := RunOutput{Error: err.Error()}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}

	result, err := sim.Run(suite.Scenarios(), sim.Policy(input.Policy))
	if err != nil {
		out := RunOutput{Error: err.Error()}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}

	if s.historyLog != nil {
		if err := s.historyLog.Record(history.EntryForRun(suite.Name, result)); err != nil {
			out := RunOutput{Error: fmt.Sprintf("record run: %v", err)}
			return &mcpsdk.CallToolResult{IsError: true}, out, nil
		}
	}

	out := RunOutput{
		Suite:        suite.Name,
		Policy:       string(result.Policy),
		Total:        result.Total,
		Attempted:    len(result.Attempted),
		Succeeded:    result.Succeeded,
		Failed:       result.Failed,
		HaltedEarly:  result.HaltedEarly,
		Availability: result.Availability(),
	}
	for _, sc := range result.Attempted {
		if sc.Outcome.Failed {
			out.FailedSteps = append(out.FailedSteps, FailedStep{
				Name:   sc.Name,
				Reason: sc.Outcome.Reason,
			})
		}
	}

	return nil, out, nil
}

// CompareInput is the input for the failsim_compare tool.
type CompareInput struct {
	Suite string `json:"suite,omitempty" jsonschema:"built-in suite name or path to a suite YAML file (default production-load)"`
}

// CompareOutput is the output of the failsim_compare tool.
type CompareOutput struct {
	Suite      string          `json:"suite,omitempty"`
	Comparison *sim.Comparison `json:"comparison,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func (s *Server) handleCompare(ctx context.Context, req *mcpsdk.CallToolRequest, input CompareInput) (*mcpsdk.CallToolResult, CompareOutput, error) {
	if input.Suite == "" {
		input.Suite = scenario.DefaultSuite
	}

	suite, err := scenario.Resolve(input.Suite)
	if err != nil {
		out := CompareOutput{Error: err.Error()}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}

	scenarios := suite.Scenarios()
	strict, err := sim.Run(scenarios, sim.PolicyStrict)
	if err != nil {
		out := CompareOutput{Error: err.Error()}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}
	resilient, err := sim.Run(scenarios, sim.PolicyResilient)
	if err != nil {
		out := CompareOutput{Error: err.Error()}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}

	return nil, CompareOutput{
		Suite:      suite.Name,
		Comparison: sim.Compare(strict, resilient),
	}, nil
}

// SuitesInput is the input for the failsim_suites tool. No parameters.
type SuitesInput struct{}

// SuiteInfo describes one built-in suite.
type SuiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Steps       int    `json:"steps"`
	Default     bool   `json:"default,omitempty"`
}

// SuitesOutput is the output of the failsim_suites tool.
type SuitesOutput struct {
	Suites []SuiteInfo `json:"suites"`
}

func (s *Server) handleSuites(ctx context.Context, req *mcpsdk.CallToolRequest, input SuitesInput) (*mcpsdk.CallToolResult, SuitesOutput, error) {
	var out SuitesOutput
	for _, name := range scenario.ListBuiltin() {
		suite, err := scenario.Builtin(name)
		if err != nil {
			return nil, SuitesOutput{}, err
		}
		out.Suites = append(out.Suites, SuiteInfo{
			Name:        suite.Name,
			Description: suite.Description,
			Steps:       len(suite.Steps),
			Default:     name == scenario.DefaultSuite,
		})
	}
	return nil, out, nil
}
