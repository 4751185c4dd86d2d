package scenario

import (
	_ "embed"
	"fmt"
)

//go:embed suites/production-load.yaml
var productionLoadYAML []byte

//go:embed suites/parse-cascade.yaml
var parseCascadeYAML []byte

//go:embed suites/single-failure.yaml
var singleFailureYAML []byte

// builtinSuites maps suite names to their embedded YAML content.
var builtinSuites = map[string][]byte{
	"production-load": productionLoadYAML,
	"parse-cascade":   parseCascadeYAML,
	"single-failure":  singleFailureYAML,
}

// DefaultSuite is the suite the demo runs: the canonical seven-request
// set behind the 28.6% vs 71.4% availability contrast.
const DefaultSuite = "production-load"

// Builtin returns the named built-in suite.
func Builtin(name string) (*Suite, error) {
	data, ok := builtinSuites[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in suite: %s", name)
	}
	return Parse(data)
}

// ListBuiltin returns the built-in suite names in display order.
func ListBuiltin() []string {
	return []string{"production-load", "parse-cascade", "single-failure"}
}

// Resolve returns the built-in suite of that name when one exists,
// otherwise loads nameOrPath as a suite file.
func Resolve(nameOrPath string) (*Suite, error) {
	if _, ok := builtinSuites[nameOrPath]; ok {
		return Builtin(nameOrPath)
	}
	s, err := Load(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("suite is neither built-in nor a readable file: %w", err)
	}
	return s, nil
}
