package sim

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// productionLoad mirrors the canonical seven-request set: five
// successes with faults at positions 3 and 6.
func productionLoad() []Scenario {
	return []Scenario{
		{Name: "req-1", Outcome: Success()},
		{Name: "req-2", Outcome: Success()},
		{Name: "req-3", Mode: ModeMissingResource, Outcome: Failure("no input provided")},
		{Name: "req-4", Outcome: Success()},
		{Name: "req-5", Outcome: Success()},
		{Name: "req-6", Mode: ModeMissingResource, Outcome: Failure("no input provided")},
		{Name: "req-7", Outcome: Success()},
	}
}

func TestStrictHaltsAtFirstFailure(t *testing.T) {
	result, err := Run(productionLoad(), PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Attempted) != 3 {
		t.Errorf("attempted: got %d, want 3", len(result.Attempted))
	}
	if result.Succeeded != 2 {
		t.Errorf("succeeded: got %d, want 2", result.Succeeded)
	}
	if result.Failed != 1 {
		t.Errorf("failed: got %d, want 1", result.Failed)
	}
	if !result.HaltedEarly {
		t.Error("expected halted_early=true")
	}
	if result.Total != 7 {
		t.Errorf("total: got %d, want 7", result.Total)
	}
	if got := result.Attempted[len(result.Attempted)-1].Name; got != "req-3" {
		t.Errorf("last attempted: got %s, want req-3", got)
	}
}

func TestResilientAttemptsEverything(t *testing.T) {
	scenarios := productionLoad()
	result, err := Run(scenarios, PolicyResilient)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(result.Attempted, scenarios) {
		t.Error("attempted should equal the full input list")
	}
	if result.Succeeded != 5 {
		t.Errorf("succeeded: got %d, want 5", result.Succeeded)
	}
	if result.Failed != 2 {
		t.Errorf("failed: got %d, want 2", result.Failed)
	}
	if result.HaltedEarly {
		t.Error("resilient run must never halt early")
	}
}

func TestDocumentedAvailabilityContrast(t *testing.T) {
	strict, err := Run(productionLoad(), PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}
	resilient, err := Run(productionLoad(), PolicyResilient)
	if err != nil {
		t.Fatal(err)
	}

	// 2/7 and 5/7, the 28.6% vs 71.4% contrast.
	if got := strict.Availability(); math.Abs(got-2.0/7.0) > 1e-9 {
		t.Errorf("strict availability: got %f, want 2/7", got)
	}
	if got := resilient.Availability(); math.Abs(got-5.0/7.0) > 1e-9 {
		t.Errorf("resilient availability: got %f, want 5/7", got)
	}
}

func TestCountsAlwaysSumToAttempted(t *testing.T) {
	lists := [][]Scenario{
		productionLoad(),
		{{Name: "only", Outcome: Success()}},
		{{Name: "only", Outcome: Failure("down")}},
		{
			{Name: "a", Outcome: Failure("down")},
			{Name: "b", Outcome: Failure("down")},
		},
	}

	for _, scenarios := range lists {
		for _, policy := range Policies() {
			result, err := Run(scenarios, policy)
			if err != nil {
				t.Fatal(err)
			}
			if result.Succeeded+result.Failed != len(result.Attempted) {
				t.Errorf("policy %s: %d+%d != %d attempted",
					policy, result.Succeeded, result.Failed, len(result.Attempted))
			}
		}
	}
}

func TestStrictPrefixProperty(t *testing.T) {
	scenarios := productionLoad()
	result, err := Run(scenarios, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(result.Attempted, scenarios[:len(result.Attempted)]) {
		t.Error("strict attempted list must be a prefix of the input")
	}
}

func TestFailureAtLastPositionIsNotAnEarlyHalt(t *testing.T) {
	scenarios := []Scenario{
		{Name: "a", Outcome: Success()},
		{Name: "b", Outcome: Failure("down")},
	}

	result, err := Run(scenarios, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}
	if result.HaltedEarly {
		t.Error("failure at the last position halts nothing")
	}
	if len(result.Attempted) != 2 {
		t.Errorf("attempted: got %d, want 2", len(result.Attempted))
	}
}

func TestSingleFailingScenarioBoundary(t *testing.T) {
	scenarios := []Scenario{
		{Name: "only", Mode: ModeDivideByZero, Outcome: Failure("division by zero")},
	}

	for _, policy := range Policies() {
		result, err := Run(scenarios, policy)
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Attempted) != 1 || result.Succeeded != 0 || result.Failed != 1 {
			t.Errorf("policy %s: got %d/%d/%d, want attempted=1 succeeded=0 failed=1",
				policy, len(result.Attempted), result.Succeeded, result.Failed)
		}
		if result.HaltedEarly {
			t.Errorf("policy %s: single-scenario run cannot halt early", policy)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	scenarios := productionLoad()
	for _, policy := range Policies() {
		first, err := Run(scenarios, policy)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Run(scenarios, policy)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("policy %s: repeated runs differ", policy)
		}
	}
}

func TestEmptyInputRejected(t *testing.T) {
	for _, policy := range Policies() {
		_, err := Run(nil, policy)
		if !errors.Is(err, ErrNoScenarios) {
			t.Errorf("policy %s: got %v, want ErrNoScenarios", policy, err)
		}
	}
}

func TestUnknownPolicyRejected(t *testing.T) {
	_, err := Run(productionLoad(), Policy("optimistic"))
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("got %v, want ErrUnknownPolicy", err)
	}
}

func TestFirstFailure(t *testing.T) {
	result, err := Run(productionLoad(), PolicyResilient)
	if err != nil {
		t.Fatal(err)
	}
	f := result.FirstFailure()
	if f == nil || f.Name != "req-3" {
		t.Errorf("first failure: got %+v, want req-3", f)
	}

	clean, err := Run([]Scenario{{Name: "ok", Outcome: Success()}}, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}
	if clean.FirstFailure() != nil {
		t.Error("clean run should have no first failure")
	}
}

func TestAvailabilityOnZeroTotal(t *testing.T) {
	// Constructed directly: Run never produces Total==0.
	r := &RunResult{}
	if got := r.Availability(); got != 0 {
		t.Errorf("got %f, want 0", got)
	}
}
