package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/failsim/internal/history"
	"github.com/ppiankov/failsim/internal/sim"
)

func resetRunFlags() {
	runScenario = "production-load"
	runPolicy = "both"
	runFormat = "text"
	runRecord = false
	runLog = ""
	runDB = ""
}

func TestRunRun_BuiltinSuite(t *testing.T) {
	resetRunFlags()

	if err := runRun(nil, nil); err != nil {
		t.Fatalf("runRun failed: %v", err)
	}
}

func TestRunRun_RecordWritesHistoryAndStats(t *testing.T) {
	tmpDir := t.TempDir()
	resetRunFlags()
	runRecord = true
	runLog = filepath.Join(tmpDir, "history.jsonl")
	runDB = filepath.Join(tmpDir, "stats.db")

	if err := runRun(nil, nil); err != nil {
		t.Fatalf("runRun failed: %v", err)
	}

	// One history line per policy.
	v := history.Verify(runLog)
	if !v.Valid {
		t.Fatalf("history chain invalid: %s", v.Error)
	}
	if v.Lines != 2 {
		t.Errorf("history lines: got %d, want 2", v.Lines)
	}

	if _, err := os.Stat(runDB); err != nil {
		t.Errorf("stats database not created: %v", err)
	}
}

func TestRunRun_GlobOfSuiteFiles(t *testing.T) {
	tmpDir := t.TempDir()
	suiteYAML := "name: smoke\nsteps:\n  - name: s1\n  - name: s2\n    fail: true\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "smoke.yaml"), []byte(suiteYAML), 0600); err != nil {
		t.Fatal(err)
	}

	resetRunFlags()
	runScenario = filepath.Join(tmpDir, "*.yaml")
	runPolicy = "resilient"

	if err := runRun(nil, nil); err != nil {
		t.Fatalf("runRun failed: %v", err)
	}
}

func TestRunRun_NoMatchingFiles(t *testing.T) {
	resetRunFlags()
	runScenario = filepath.Join(t.TempDir(), "*.yaml")

	if err := runRun(nil, nil); err == nil {
		t.Fatal("expected error for empty glob")
	}
}

func TestResolvePolicies(t *testing.T) {
	both, err := resolvePolicies("both")
	if err != nil || len(both) != 2 {
		t.Errorf("both: %v %v", both, err)
	}

	strict, err := resolvePolicies("strict")
	if err != nil || len(strict) != 1 || strict[0] != sim.PolicyStrict {
		t.Errorf("strict: %v %v", strict, err)
	}

	if _, err := resolvePolicies("optimistic"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestResolveSuites_BuiltinName(t *testing.T) {
	suites, files, err := resolveSuites("production-load")
	if err != nil {
		t.Fatal(err)
	}
	if len(suites) != 1 || suites[0].Name != "production-load" {
		t.Errorf("suites: %+v", suites)
	}
	if len(files) != 1 || files[0] != "" {
		t.Errorf("files: %v", files)
	}
}

func TestRunDemo(t *testing.T) {
	if err := runDemo(nil, nil); err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}
}

func TestRunHistoryVerify(t *testing.T) {
	tmpDir := t.TempDir()
	resetRunFlags()
	runRecord = true
	runLog = filepath.Join(tmpDir, "history.jsonl")
	runDB = filepath.Join(tmpDir, "stats.db")

	if err := runRun(nil, nil); err != nil {
		t.Fatalf("runRun failed: %v", err)
	}

	historyLog = runLog
	defer func() { historyLog = "" }()

	if err := runHistoryVerify(nil, nil); err != nil {
		t.Errorf("verify failed on fresh log: %v", err)
	}
}

func TestRunStats_EmptyDatabase(t *testing.T) {
	statsDB = filepath.Join(t.TempDir(), "stats.db")
	statsFormat = "text"
	defer func() { statsDB = "" }()

	if err := runStats(nil, nil); err != nil {
		t.Fatalf("runStats failed: %v", err)
	}
}
