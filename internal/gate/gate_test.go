package gate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimdowning-cyclops/vergate/internal/version"
)

const sampleConfig = `
gates:
  new-parser:
    min: "2.0.0"
    max: "3.0.0"
    description: strict segment parsing
  new-ui:
    min: "2.5.0"
  legacy-export:
    max: "1.9.0"
`

func TestParse(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	gates := cfg.All()
	require.Len(t, gates, 3)

	// Sorted by name.
	assert.Equal(t, "legacy-export", gates[0].Name)
	assert.Equal(t, "new-parser", gates[1].Name)
	assert.Equal(t, "new-ui", gates[2].Name)

	assert.Equal(t, "2.0.0", gates[1].Min)
	assert.Equal(t, "3.0.0", gates[1].Max)
	assert.Equal(t, "strict segment parsing", gates[1].Description)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty config", ""},
		{"no gates", "gates: {}"},
		{"bad yaml", ":\n  - not yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.content)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vergate.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.All(), 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"legacy-export", "new-parser", "new-ui"}},
		{"new-*", []string{"new-parser", "new-ui"}},
		{"legacy-export", []string{"legacy-export"}},
		{"nothing-*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			gates, err := cfg.Select(tt.pattern)
			require.NoError(t, err)

			var names []string
			for _, g := range gates {
				names = append(names, g.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSelect_BadPattern(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	_, err = cfg.Select("[")
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	decisions := Evaluate(version.MustParse("2.1.0"), cfg.All())
	require.Len(t, decisions, 3)

	byGate := map[string]version.RangeResult{}
	for _, d := range decisions {
		byGate[d.Gate] = d.Result
	}

	// legacy-export has no lower bound, so it can never decide.
	assert.Equal(t, version.RangeUnknown, byGate["legacy-export"])
	assert.Equal(t, version.RangeIn, byGate["new-parser"])
	assert.Equal(t, version.RangeOut, byGate["new-ui"])
}

func TestEvaluate_MalformedBoundIsInconclusive(t *testing.T) {
	gates := []Gate{{Name: "broken", Min: "not-a-version", Max: "2.0.0"}}

	decisions := Evaluate(version.MustParse("1.0.0"), gates)
	require.Len(t, decisions, 1)
	assert.Equal(t, version.RangeUnknown, decisions[0].Result)
}
