package cli

import (
	"os"
	"path/filepath"
)

// stateDir returns the failsim state directory (~/.failsim), falling
// back to the current directory when the home directory is unknown.
func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".failsim"
	}
	return filepath.Join(home, ".failsim")
}

// defaultHistoryPath is where run records land unless --log overrides.
func defaultHistoryPath() string {
	return filepath.Join(stateDir(), "history.jsonl")
}

// defaultStatsPath is where the stats database lives unless --db
// overrides.
func defaultStatsPath() string {
	return filepath.Join(stateDir(), "stats.db")
}
