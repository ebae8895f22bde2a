package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mcport/portfolio-simulator/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
initial_value: 750000
mean_return: 0.06
volatility: 0.16
years: 25
num_trials: 1000
inflation_rate: 0.025
withdrawal_rate: 0.04
dynamic_withdraw: true
seed: 99
`)

	params, err := NewParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 750000.0, params.InitialValue)
	assert.Equal(t, 0.06, params.MeanReturn)
	assert.Equal(t, 0.16, params.Volatility)
	assert.Equal(t, 25, params.Years)
	assert.Equal(t, 1000, params.NumTrials)
	assert.Equal(t, 0.025, params.InflationRate)
	assert.Equal(t, 0.04, params.WithdrawalRate)
	assert.True(t, params.DynamicWithdraw)
	assert.Equal(t, int64(99), params.Seed)
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	// Only override the horizon; everything else keeps the defaults.
	path := writeConfig(t, "years: 40\n")

	params, err := NewParser().LoadFromFile(path)
	require.NoError(t, err)

	want := Default()
	want.Years = 40
	assert.Equal(t, want, params)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	path := writeConfig(t, "initial_value: [not a number\n")
	_, err := NewParser().LoadFromFile(path)
	require.Error(t, err)
}

func TestLoadFromFileInvalidParameters(t *testing.T) {
	path := writeConfig(t, "num_trials: 0\n")

	_, err := NewParser().LoadFromFile(path)
	require.Error(t, err)

	var ipe *simulation.InvalidParameterError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "num_trials", ipe.Field)
}

func TestExampleYAMLRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, WriteExample(path))

	params, err := NewParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), params)
}
