// Package cli implements the failsim command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "failsim",
	Short: "Deterministic outcome simulator for failure-handling policies",
	Long: "Runs scripted scenario suites under two policies — strict, which halts\n" +
		"the run at the first failure, and resilient, which records the failure\n" +
		"and keeps going — and reports the availability each policy delivers.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
