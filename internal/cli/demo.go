package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/failsim/internal/scenario"
	"github.com/ppiankov/failsim/internal/sim"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in production-load suite under both policies",
	Long: "Walks the canonical seven-request suite twice: once under the strict\n" +
		"policy (halt at the first failure) and once under the resilient policy\n" +
		"(record the failure and keep going), then prints the availability\n" +
		"contrast between the two.",
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	suite, err := scenario.Builtin(scenario.DefaultSuite)
	if err != nil {
		return err
	}
	scenarios := suite.Scenarios()

	fmt.Printf("=== failsim demo: %s (%d requests) ===\n", suite.Name, len(scenarios))

	strict, err := sim.Run(scenarios, sim.PolicyStrict)
	if err != nil {
		return err
	}
	printWalk(strict, "STRICT", "halt at first failure")

	resilient, err := sim.Run(scenarios, sim.PolicyResilient)
	if err != nil {
		return err
	}
	printWalk(resilient, "RESILIENT", "log and continue")

	fmt.Println()
	fmt.Print(sim.FormatComparisonText(sim.Compare(strict, resilient)))

	return nil
}

// printWalk prints one per-request walk of a run.
func printWalk(r *sim.RunResult, label, desc string) {
	fmt.Printf("\n--- %s (%s) ---\n", label, desc)

	for _, sc := range r.Attempted {
		if sc.Outcome.Failed {
			fmt.Printf("  %s: FAIL %s\n", sc.Name, sc.Outcome.Reason)
		} else {
			fmt.Printf("  %s: ok\n", sc.Name)
		}
	}

	if r.HaltedEarly {
		dropped := r.Total - len(r.Attempted)
		fmt.Printf("  run halted, %d request", dropped)
		if dropped != 1 {
			fmt.Print("s")
		}
		fmt.Println(" never attempted")
	}

	fmt.Printf("  Results: %d successful, %d failed\n", r.Succeeded, r.Failed)
	fmt.Printf("  Availability: %.1f%%\n", r.Availability()*100)
}
