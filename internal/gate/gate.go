// Package gate evaluates named version windows loaded from a YAML config.
// A gate holds inclusive min/max version bounds; evaluating a gate against a
// candidate version yields a tri-state verdict, so a gate with unusable
// bounds reports inconclusive instead of failing the check.
package gate

import (
	"fmt"
	"os"
	"sort"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/jimdowning-cyclops/vergate/internal/version"
)

// Config represents the .vergate.yml configuration file.
type Config struct {
	Gates map[string]GateConfig `yaml:"gates"`
}

// GateConfig defines a single version window. Min and Max are version
// strings; either may be empty for an open bound.
type GateConfig struct {
	Min         string `yaml:"min,omitempty"`
	Max         string `yaml:"max,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Gate is a named version window ready for evaluation.
type Gate struct {
	Name        string
	Min         string
	Max         string
	Description string
}

// Decision is the outcome of evaluating one gate against a candidate.
type Decision struct {
	Gate   string
	Min    string
	Max    string
	Result version.RangeResult
}

// Load reads and parses a .vergate.yml config file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(string(data))
}

// Parse parses inline YAML config content.
func Parse(content string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks that the config is usable.
func (c *Config) validate() error {
	if len(c.Gates) == 0 {
		return fmt.Errorf("config must define at least one gate")
	}

	return nil
}

// All returns every configured gate sorted by name for deterministic output.
func (c *Config) All() []Gate {
	gates := make([]Gate, 0, len(c.Gates))
	for name, gc := range c.Gates {
		gates = append(gates, Gate{
			Name:        name,
			Min:         gc.Min,
			Max:         gc.Max,
			Description: gc.Description,
		})
	}

	sort.Slice(gates, func(i, j int) bool {
		return gates[i].Name < gates[j].Name
	})

	return gates
}

// Select returns the gates whose names match the given glob pattern, sorted
// by name. An empty pattern selects every gate.
func (c *Config) Select(pattern string) ([]Gate, error) {
	if pattern == "" {
		return c.All(), nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid gate pattern %q: %w", pattern, err)
	}

	var gates []Gate
	for _, gate := range c.All() {
		if g.Match(gate.Name) {
			gates = append(gates, gate)
		}
	}

	return gates, nil
}

// Evaluate tests the candidate version against each gate's window and
// returns one decision per gate, in input order.
func Evaluate(candidate version.Version, gates []Gate) []Decision {
	decisions := make([]Decision, 0, len(gates))
	for _, g := range gates {
		decisions = append(decisions, Decision{
			Gate:   g.Name,
			Min:    g.Min,
			Max:    g.Max,
			Result: version.InRange(candidate, g.Min, g.Max),
		})
	}

	return decisions
}
