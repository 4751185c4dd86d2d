package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/failsim/internal/history"
)

var (
	historyLog    string
	historySuite  string
	historyPolicy string
	historyLast   int
	historyFormat string
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.PersistentFlags().StringVarP(&historyLog, "log", "l", "", "History log path (default ~/.failsim/history.jsonl)")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().StringVar(&historySuite, "suite", "", "Only show runs of this suite")
	historyShowCmd.Flags().StringVar(&historyPolicy, "policy", "", "Only show runs under this policy")
	historyShowCmd.Flags().IntVar(&historyLast, "last", 0, "Only show the last N runs")
	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", "text", "Output format (text|json)")

	historyCmd.AddCommand(historyVerifyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the recorded run history",
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recorded runs with a summary",
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	path := historyLog
	if path == "" {
		path = defaultHistoryPath()
	}

	result, err := history.Read(path, history.Filter{
		Suite:  historySuite,
		Policy: historyPolicy,
		Last:   historyLast,
	})
	if err != nil {
		return err
	}

	switch historyFormat {
	case "json":
		out, err := history.FormatJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print(history.FormatTimeline(result))
	}

	return nil
}

var historyVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the hash chain of the history log",
	RunE:  runHistoryVerify,
}

func runHistoryVerify(cmd *cobra.Command, args []string) error {
	path := historyLog
	if path == "" {
		path = defaultHistoryPath()
	}

	v := history.Verify(path)
	if !v.Valid {
		return fmt.Errorf("history chain broken at line %d: %s", v.ErrorLine, v.Error)
	}

	fmt.Printf("OK: %d entries, chain intact\n", v.Lines)
	return nil
}
