package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSimulateCommand(t *testing.T) {
	out, err := runCLI(t,
		"simulate", "-p", "100000", "-y", "5", "-s", "50", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "Initial conditions")
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "Probability of portfolio depletion before 5 years")
}

func TestSimulateCommandJSONFormat(t *testing.T) {
	out, err := runCLI(t,
		"simulate", "-s", "20", "-y", "3", "--seed", "11", "-f", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "summary")
}

func TestSimulateCommandUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "simulate", "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSimulateCommandRejectsInvalidFlag(t *testing.T) {
	_, err := runCLI(t, "simulate", "-s", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_trials")
}

func TestSimulateCommandFlagOverridesConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("years: 40\ninitial_value: 250000\nnum_trials: 30\nseed: 5\n"), 0644))

	out, err := runCLI(t,
		"simulate", "-c", cfg, "-y", "10", "-f", "json")
	require.NoError(t, err)

	var decoded struct {
		Params struct {
			InitialValue float64 `json:"initial_value"`
			Years        int     `json:"years"`
			NumTrials    int     `json:"num_trials"`
		} `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	// The explicit flag wins; untouched fields come from the file.
	assert.Equal(t, 10, decoded.Params.Years)
	assert.Equal(t, 250000.0, decoded.Params.InitialValue)
	assert.Equal(t, 30, decoded.Params.NumTrials)
}

func TestSimulateCommandWritesCSVAndPlot(t *testing.T) {
	dir := t.TempDir()
	plotFile := filepath.Join(dir, "fan.png")

	_, err := runCLI(t,
		"simulate", "-s", "30", "-y", "4", "--seed", "3",
		"--csv-dir", dir, "--plot-file", plotFile, "--max-paths", "10")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "simulation_summary.csv"))
	assert.FileExists(t, filepath.Join(dir, "simulation_paths.csv"))
	assert.FileExists(t, plotFile)
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")

	out, err := runCLI(t, "init-config", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}
