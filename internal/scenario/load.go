package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/failsim/internal/sim"
)

// Parse decodes and validates a suite from YAML bytes.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and validates a suite YAML file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadGlob loads every suite matching the glob pattern. At least one
// file must match.
func LoadGlob(pattern string) ([]*Suite, []string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no suite files match pattern: %s", pattern)
	}

	suites := make([]*Suite, 0, len(matches))
	for _, path := range matches {
		s, err := Load(path)
		if err != nil {
			return nil, nil, err
		}
		suites = append(suites, s)
	}
	return suites, matches, nil
}

func (s *Suite) validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("suite %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if step.Name == "" {
			return fmt.Errorf("suite %q: step %d has no name", s.Name, i+1)
		}
		if !sim.KnownMode(sim.FailureMode(step.Mode)) {
			return fmt.Errorf("suite %q: step %q has unknown mode %q", s.Name, step.Name, step.Mode)
		}
		if !step.Fail && step.Reason != "" {
			return fmt.Errorf("suite %q: step %q has a failure reason but fail is not set", s.Name, step.Name)
		}
	}
	return nil
}
