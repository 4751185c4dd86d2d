package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/failsim/internal/scenario"
)

var suitesFormat string

func init() {
	rootCmd.AddCommand(suitesCmd)
	suitesCmd.Flags().StringVarP(&suitesFormat, "format", "f", "text", "Output format (text|json)")
}

var suitesCmd = &cobra.Command{
	Use:   "suites",
	Short: "List the built-in scenario suites",
	RunE:  runSuites,
}

func runSuites(cmd *cobra.Command, args []string) error {
	type suiteInfo struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Steps       int    `json:"steps"`
		Default     bool   `json:"default,omitempty"`
	}

	var infos []suiteInfo
	for _, name := range scenario.ListBuiltin() {
		suite, err := scenario.Builtin(name)
		if err != nil {
			return err
		}
		infos = append(infos, suiteInfo{
			Name:        suite.Name,
			Description: suite.Description,
			Steps:       len(suite.Steps),
			Default:     name == scenario.DefaultSuite,
		})
	}

	if suitesFormat == "json" {
		out, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, info := range infos {
		marker := " "
		if info.Default {
			marker = "*"
		}
		fmt.Printf("%s %-18s %2d steps  %s\n", marker, info.Name, info.Steps, info.Description)
	}
	return nil
}
