package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mcport/portfolio-simulator/internal/config"
	"github.com/mcport/portfolio-simulator/internal/output"
	"github.com/mcport/portfolio-simulator/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPipeline drives the whole flow the CLI uses: parameter file ->
// engine -> summary -> result bundle.
func runPipeline(t *testing.T, yaml string) *output.Result {
	t.Helper()

	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	params, err := config.NewParser().LoadFromFile(path)
	require.NoError(t, err)

	sim, err := simulation.NewSimulator(params)
	require.NoError(t, err)

	matrix := sim.Run()
	summary, err := simulation.Summarize(matrix, params)
	require.NoError(t, err)

	return &output.Result{Params: params, Seed: sim.Seed(), Matrix: matrix, Summary: summary}
}

func TestEndToEndPipeline(t *testing.T) {
	res := runPipeline(t, `
initial_value: 500000
mean_return: 0.07
volatility: 0.15
years: 30
num_trials: 1000
inflation_rate: 0.039
withdrawal_rate: 0.03
seed: 20250829
`)

	assert.Equal(t, 1000, res.Matrix.NumTrials())
	assert.Equal(t, 30, res.Matrix.Years())
	assert.InDelta(t, 15000, res.Summary.FirstYearWithdrawal, 1e-9)
	assert.Greater(t, res.Summary.MeanFinal, res.Summary.MeanFinalReal)

	// Every registered formatter renders the same result without error.
	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f)
			data, err := f.Format(res)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestEndToEndDynamicWithdrawals(t *testing.T) {
	res := runPipeline(t, `
initial_value: 800000
years: 20
num_trials: 500
withdrawal_rate: 0.05
dynamic_withdraw: true
seed: 99
`)

	// Taking a fixed fraction of a positive balance never reaches the
	// zero floor, so no trial depletes.
	assert.Zero(t, res.Summary.DepletionProbability)
	assert.InDelta(t, 800000*1.07*0.05, res.Summary.FirstYearWithdrawal, 1e-6)
}

func TestEndToEndFileOutputs(t *testing.T) {
	res := runPipeline(t, `
years: 10
num_trials: 100
seed: 4
`)
	dir := t.TempDir()

	r := &output.CSVReport{Result: res}
	require.NoError(t, r.GenerateAllCSVReports(dir))

	plotFile := filepath.Join(dir, "paths.png")
	require.NoError(t, output.RenderPaths(res, output.PlotConfig{File: plotFile, MaxPaths: 50}))

	assert.FileExists(t, filepath.Join(dir, "simulation_summary.csv"))
	assert.FileExists(t, filepath.Join(dir, "simulation_paths.csv"))
	assert.FileExists(t, plotFile)
}
