package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/failsim/internal/history"
	"github.com/ppiankov/failsim/internal/scenario"
	"github.com/ppiankov/failsim/internal/sim"
	"github.com/ppiankov/failsim/internal/stats"
)

var (
	runScenario string
	runPolicy   string
	runFormat   string
	runRecord   bool
	runLog      string
	runDB       string
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runScenario, "scenario", "s", scenario.DefaultSuite, "Built-in suite name or glob of suite YAML files")
	runCmd.Flags().StringVarP(&runPolicy, "policy", "p", "both", "Policy to run under (strict|resilient|both)")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "text", "Output format (text|json)")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "Append each run to the history log and stats database")
	runCmd.Flags().StringVar(&runLog, "log", "", "History log path (default ~/.failsim/history.jsonl)")
	runCmd.Flags().StringVar(&runDB, "db", "", "Stats database path (default ~/.failsim/stats.db)")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scenario suites under a failure-handling policy",
	Long: "Loads one or more scenario suites — a built-in name or a glob of YAML\n" +
		"files — and runs each under the requested policy. With --record, every\n" +
		"run is appended to the hash-chained history log and the stats database.",
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	policies, err := resolvePolicies(runPolicy)
	if err != nil {
		return err
	}

	suites, files, err := resolveSuites(runScenario)
	if err != nil {
		return err
	}

	var reports []*scenario.Report
	for i, suite := range suites {
		scenarios := suite.Scenarios()
		for _, policy := range policies {
			result, err := sim.Run(scenarios, policy)
			if err != nil {
				return err
			}
			reports = append(reports, &scenario.Report{
				File:   files[i],
				Suite:  suite.Name,
				Result: result,
			})
		}
	}

	if runRecord {
		if err := recordReports(reports); err != nil {
			return err
		}
	}

	switch runFormat {
	case "json":
		out, err := scenario.FormatJSON(reports)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print(scenario.FormatText(reports))
	}

	return nil
}

// resolvePolicies expands a --policy flag value into the policies to
// run.
func resolvePolicies(value string) ([]sim.Policy, error) {
	switch value {
	case "both":
		return sim.Policies(), nil
	case string(sim.PolicyStrict):
		return []sim.Policy{sim.PolicyStrict}, nil
	case string(sim.PolicyResilient):
		return []sim.Policy{sim.PolicyResilient}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want strict, resilient, or both)", value)
	}
}

// resolveSuites loads suites for a --scenario flag value: a built-in
// name resolves to that one suite, anything else is a glob of suite
// files. The returned file list is parallel to the suites; built-ins
// have an empty file entry.
func resolveSuites(value string) ([]*scenario.Suite, []string, error) {
	for _, name := range scenario.ListBuiltin() {
		if value == name {
			s, err := scenario.Builtin(name)
			if err != nil {
				return nil, nil, err
			}
			return []*scenario.Suite{s}, []string{""}, nil
		}
	}
	return scenario.LoadGlob(value)
}

// recordReports appends every report to the history log and the stats
// database.
func recordReports(reports []*scenario.Report) error {
	logPath := runLog
	if logPath == "" {
		logPath = defaultHistoryPath()
	}
	dbPath := runDB
	if dbPath == "" {
		dbPath = defaultStatsPath()
	}

	log, err := history.Open(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	store, err := stats.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for _, r := range reports {
		entry := history.EntryForRun(r.Suite, r.Result)
		// Fill here so the log and the database share one run ID.
		entry.RunID = history.NewRunID()
		entry.Timestamp = time.Now().UTC().Format(history.TimestampFormat)

		if err := log.Record(entry); err != nil {
			return err
		}
		if err := store.Record(entry); err != nil {
			return err
		}
	}

	return nil
}
