package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rebalance/config"
	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/filter"
)

const sample = `
resolution: 20
effective_time_mean: 20
effective_time_std: 3
supply_water_mark_ratio: 0.8
demand_water_mark_ratio: 0.001
action_scope:
  low: 0.1
  high: 0.9
  filters:
    - type: distance
      num: 20
    - type: trip_window
      num: 10
      windows: 6
filters:
  - type: requirements
    num: 5
extra_cost_mode: target_neighbors
seed: 7
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Resolution)
	assert.InDelta(t, 20.0, *cfg.EffectiveTimeMean, 1e-12)
	assert.InDelta(t, 3.0, *cfg.EffectiveTimeStd, 1e-12)
	assert.InDelta(t, 0.8, *cfg.SupplyWaterMarkRatio, 1e-12)
	assert.InDelta(t, 0.001, *cfg.DemandWaterMarkRatio, 1e-12)
	assert.InDelta(t, 0.1, *cfg.ActionScope.Low, 1e-12)
	assert.InDelta(t, 0.9, *cfg.ActionScope.High, 1e-12)
	assert.Equal(t, core.CostNeighbor, *cfg.ExtraCostMode)
	assert.Equal(t, uint64(7), cfg.Seed)

	assert.Equal(t, []filter.Spec{
		{Kind: filter.KindDistance, Num: 20},
		{Kind: filter.KindTripsWindow, Num: 10, Windows: 6},
		{Kind: filter.KindRequirements, Num: 5},
	}, cfg.FilterSpecs())
}

func TestParse_Alias(t *testing.T) {
	doc := `
resolution: 1
effective_time_mean: 0
effective_time_std: 0
supply_water_mark_ratio: 1
demand_water_mark_ratio: 0
action_scope: {low: 0, high: 1}
extra_cost_mode: neighbor
`
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, core.CostNeighbor, *cfg.ExtraCostMode)
	assert.Empty(t, cfg.FilterSpecs())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"unknown key":    sample + "colour: red\n",
		"unknown filter": replace(sample, "type: distance", "type: nearest"),
		"unknown mode":   replace(sample, "extra_cost_mode: target_neighbors", "extra_cost_mode: nobody"),
		"missing mode":   replace(sample, "extra_cost_mode: target_neighbors", ""),
		"missing low":    replace(sample, "  low: 0.1\n", ""),
		"ratio range":    replace(sample, "high: 0.9", "high: 1.5"),
		"mark range":     replace(sample, "supply_water_mark_ratio: 0.8", "supply_water_mark_ratio: -0.1"),
		"zero res":       replace(sample, "resolution: 20", "resolution: 0"),
		"negative std":   replace(sample, "effective_time_std: 3", "effective_time_std: -1"),
		"zero num":       replace(sample, "num: 20", "num: 0"),
		"no windows":     replace(sample, "      windows: 6\n", ""),
		"not yaml":       "resolution: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, core.ErrConfiguration)
		})
	}
}

func TestValidate_NamesField(t *testing.T) {
	cfg := config.Default()
	cfg.ActionScope.High = nil
	err := cfg.Validate()
	require.ErrorIs(t, err, core.ErrConfiguration)
	assert.Contains(t, err.Error(), "action_scope.high")
}

func TestValidate_EnumOutOfRange(t *testing.T) {
	cfg := config.Default()
	bad := core.CostMode(42)
	cfg.ExtraCostMode = &bad
	assert.ErrorIs(t, cfg.Validate(), core.ErrConfiguration)

	var nilCfg *config.Config
	assert.ErrorIs(t, nilCfg.Validate(), core.ErrConfiguration)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.CostSource, *cfg.ExtraCostMode)
	assert.Len(t, cfg.FilterSpecs(), 2)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rebalance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Resolution)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func replace(s, old, repl string) string {
	if !strings.Contains(s, old) {
		panic("replace: " + old + " not found")
	}
	return strings.Replace(s, old, repl, 1)
}
