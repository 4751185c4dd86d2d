package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/failsim/internal/scenario"
	"github.com/ppiankov/failsim/internal/sim"
	"github.com/ppiankov/failsim/internal/watch"
)

var (
	watchDir      string
	watchPoll     bool
	watchInterval time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchDir, "dir", "d", ".", "Directory to watch for suite YAML files")
	watchCmd.Flags().BoolVar(&watchPoll, "poll", false, "Use polling instead of filesystem notifications")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Polling interval (with --poll)")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and run suites as their files change",
	Long: "Watches a directory for new or modified suite YAML files and runs each\n" +
		"one under both policies as it changes. Use --poll on filesystems where\n" +
		"change notifications do not work (e.g., NFS); polling only sees new\n" +
		"files, not in-place edits.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	if info, err := os.Stat(watchDir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", watchDir)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nStopping watcher...")
		cancel()
	}()

	fmt.Fprintf(os.Stderr, "Watching %s for suite files...\n", watchDir)

	if watchPoll {
		w := watch.NewPollWatcher(watchDir, runSuiteFile, watchInterval)
		return w.Run(ctx)
	}

	w := watch.NewSuiteWatcher(watchDir, runSuiteFile)
	return w.Run(ctx)
}

// runSuiteFile runs one changed suite file under both policies and
// prints the report. Errors are reported, not fatal; the watcher
// keeps going.
func runSuiteFile(path string) {
	suite, err := scenario.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR %v\n", err)
		return
	}

	scenarios := suite.Scenarios()
	var reports []*scenario.Report
	for _, policy := range sim.Policies() {
		result, err := sim.Run(scenarios, policy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR %s: %v\n", path, err)
			return
		}
		reports = append(reports, &scenario.Report{
			File:   path,
			Suite:  suite.Name,
			Result: result,
		})
	}

	fmt.Print(scenario.FormatText(reports))
}
