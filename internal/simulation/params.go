package simulation

import (
	"fmt"
	"math"
)

// ParameterSet describes a single simulation run. It is constructed once
// from validated input and passed by value through the pipeline; nothing
// downstream mutates it.
type ParameterSet struct {
	// InitialValue is the starting portfolio balance. Must be positive.
	InitialValue float64 `yaml:"initial_value" json:"initial_value"`
	// MeanReturn is the expected annual nominal return, fractional
	// (e.g. 0.07 for 7%).
	MeanReturn float64 `yaml:"mean_return" json:"mean_return"`
	// Volatility is the standard deviation of the annual return.
	Volatility float64 `yaml:"volatility" json:"volatility"`
	// Years is the simulation horizon.
	Years int `yaml:"years" json:"years"`
	// NumTrials is the number of independent paths to simulate.
	NumTrials int `yaml:"num_trials" json:"num_trials"`
	// InflationRate is the assumed annual inflation rate.
	InflationRate float64 `yaml:"inflation_rate" json:"inflation_rate"`
	// WithdrawalRate is the fraction withdrawn annually: of the initial
	// balance in constant mode, of the current balance in dynamic mode.
	WithdrawalRate float64 `yaml:"withdrawal_rate" json:"withdrawal_rate"`
	// DynamicWithdraw selects percentage-of-balance withdrawals instead
	// of the inflation-indexed constant withdrawal.
	DynamicWithdraw bool `yaml:"dynamic_withdraw" json:"dynamic_withdraw"`
	// Seed drives the random streams. Zero means "derive from the clock"
	// at simulator construction.
	Seed int64 `yaml:"seed" json:"seed"`
}

// InvalidParameterError reports a ParameterSet field that violates its
// constraint. It is returned at construction time only; once a
// ParameterSet validates, the engine never raises it mid-run.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

func invalidParam(field, reason string) error {
	return &InvalidParameterError{Field: field, Reason: reason}
}

// Validate checks every field constraint independently and returns an
// *InvalidParameterError naming the first offending field.
func (p ParameterSet) Validate() error {
	if math.IsNaN(p.InitialValue) || math.IsInf(p.InitialValue, 0) || p.InitialValue <= 0 {
		return invalidParam("initial_value", "must be a positive finite number")
	}
	if math.IsNaN(p.MeanReturn) || math.IsInf(p.MeanReturn, 0) {
		return invalidParam("mean_return", "must be a finite number")
	}
	if math.IsNaN(p.Volatility) || math.IsInf(p.Volatility, 0) || p.Volatility < 0 {
		return invalidParam("volatility", "must be a non-negative finite number")
	}
	if p.Years < 1 {
		return invalidParam("years", "must be at least 1")
	}
	if p.NumTrials < 1 {
		return invalidParam("num_trials", "must be at least 1")
	}
	// Inflation at or below -100% makes the real-terms deflator meaningless.
	if math.IsNaN(p.InflationRate) || math.IsInf(p.InflationRate, 0) || p.InflationRate <= -1 {
		return invalidParam("inflation_rate", "must be a finite number greater than -1")
	}
	if math.IsNaN(p.WithdrawalRate) || p.WithdrawalRate < 0 || p.WithdrawalRate >= 1 {
		return invalidParam("withdrawal_rate", "must be in the range [0, 1)")
	}
	return nil
}

// InflationFactor returns cumulative inflation over the full horizon,
// i.e. (1+InflationRate)^Years. Dividing a nominal final balance by it
// expresses the balance in year-0 purchasing power.
func (p ParameterSet) InflationFactor() float64 {
	return math.Pow(1+p.InflationRate, float64(p.Years))
}
