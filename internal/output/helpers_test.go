package output

import (
	"testing"

	"github.com/mcport/portfolio-simulator/internal/simulation"
	"github.com/stretchr/testify/require"
)

// testResult runs a small but real simulation so formatter tests see a
// fully populated result.
func testResult(t *testing.T) *Result {
	t.Helper()
	p := simulation.ParameterSet{
		InitialValue:   100000,
		MeanReturn:     0.05,
		Volatility:     0.10,
		Years:          8,
		NumTrials:      40,
		InflationRate:  0.02,
		WithdrawalRate: 0.04,
		Seed:           42,
	}

	s, err := simulation.NewSimulator(p)
	require.NoError(t, err)

	m := s.Run()
	rec, err := simulation.Summarize(m, p)
	require.NoError(t, err)

	return &Result{Params: p, Seed: s.Seed(), Matrix: m, Summary: rec}
}
