package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/failsim/internal/stats"
)

var (
	statsDB     string
	statsFormat string
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsDB, "db", "", "Stats database path (default ~/.failsim/stats.db)")
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text", "Output format (text|json)")
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-suite, per-policy aggregates of recorded runs",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	path := statsDB
	if path == "" {
		path = defaultStatsPath()
	}

	store, err := stats.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	aggs, err := store.Aggregates()
	if err != nil {
		return err
	}

	switch statsFormat {
	case "json":
		out, err := stats.FormatJSON(aggs)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print(stats.FormatText(aggs))
	}

	return nil
}
