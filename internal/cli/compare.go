package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/failsim/internal/scenario"
	"github.com/ppiankov/failsim/internal/sim"
)

var (
	compareScenario string
	compareFormat   string
)

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&compareScenario, "scenario", "s", scenario.DefaultSuite, "Built-in suite name or glob of suite YAML files")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "text", "Output format (text|json)")
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run suites under both policies and show the availability diff",
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	suites, _, err := resolveSuites(compareScenario)
	if err != nil {
		return err
	}

	for i, suite := range suites {
		scenarios := suite.Scenarios()

		strict, err := sim.Run(scenarios, sim.PolicyStrict)
		if err != nil {
			return err
		}
		resilient, err := sim.Run(scenarios, sim.PolicyResilient)
		if err != nil {
			return err
		}

		c := sim.Compare(strict, resilient)

		switch compareFormat {
		case "json":
			out, err := sim.FormatComparisonJSON(c)
			if err != nil {
				return err
			}
			fmt.Println(out)
		default:
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", suite.Name)
			fmt.Print(sim.FormatComparisonText(c))
		}
	}

	return nil
}
