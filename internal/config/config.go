package config

import (
	"fmt"
	"os"

	"github.com/mcport/portfolio-simulator/internal/simulation"
	"gopkg.in/yaml.v3"
)

// Parser loads simulation parameters from YAML files.
type Parser struct{}

// NewParser creates a new parameter file parser.
func NewParser() *Parser {
	return &Parser{}
}

// Default returns the reference parameter set: a conservative S&P 500
// assumption (7% mean, 15% volatility) with UK long-run inflation and a
// 3% constant withdrawal over 30 years.
func Default() simulation.ParameterSet {
	return simulation.ParameterSet{
		InitialValue:   500000,
		MeanReturn:     0.07,
		Volatility:     0.15,
		Years:          30,
		NumTrials:      3000,
		InflationRate:  0.039,
		WithdrawalRate: 0.03,
	}
}

// LoadFromFile reads a YAML parameter file, layers it over the defaults
// and validates the result. Fields omitted from the file keep their
// default values.
func (p *Parser) LoadFromFile(filename string) (simulation.ParameterSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return simulation.ParameterSet{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	params := Default()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return simulation.ParameterSet{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := params.Validate(); err != nil {
		return simulation.ParameterSet{}, fmt.Errorf("parameter validation failed: %w", err)
	}

	return params, nil
}

// ExampleYAML renders a commented parameter file with the default
// values, suitable for bootstrapping a new configuration.
func ExampleYAML() []byte {
	d := Default()
	return []byte(fmt.Sprintf(`# Monte Carlo portfolio simulation parameters.

# Starting portfolio balance.
initial_value: %g

# Expected annual nominal return (0.07 = 7%%).
mean_return: %g

# Standard deviation of the annual return.
volatility: %g

# Simulation horizon in years.
years: %d

# Number of independent trials.
num_trials: %d

# Assumed annual inflation rate.
inflation_rate: %g

# Fraction withdrawn per year: of the initial balance in constant mode,
# of the current balance when dynamic_withdraw is true.
withdrawal_rate: %g
dynamic_withdraw: false

# Master random seed; 0 picks one from the clock.
seed: 0
`,
		d.InitialValue, d.MeanReturn, d.Volatility, d.Years,
		d.NumTrials, d.InflationRate, d.WithdrawalRate))
}

// WriteExample writes the example parameter file to the given path.
func WriteExample(path string) error {
	if err := os.WriteFile(path, ExampleYAML(), 0644); err != nil {
		return fmt.Errorf("failed to write example config: %w", err)
	}
	return nil
}
