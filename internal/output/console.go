package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter renders the textual report. The results section
// keeps the reference field order existing consumers depend on:
// first-year withdrawal (in the initial-conditions echo), nominal mean
// twice, nominal std-dev, inflation-adjusted mean and std-dev,
// final-year withdrawal, then the depletion probability with two
// decimals. Extra figures are only ever appended after those.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(res *Result) ([]byte, error) {
	if res.Summary == nil {
		return nil, fmt.Errorf("console formatter: result has no summary")
	}
	p := res.Params
	s := res.Summary

	policy := "constant (inflation-indexed)"
	if p.DynamicWithdraw {
		policy = "dynamic (percentage of balance)"
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "Initial conditions")
	fmt.Fprintln(&buf, "==================")
	fmt.Fprintf(&buf, "     Portfolio initial value: %s\n", FormatCurrency(p.InitialValue))
	fmt.Fprintf(&buf, "              Inflation rate: %s\n", FormatPercent(p.InflationRate))
	fmt.Fprintf(&buf, "   Expected portfolio return: %s\n", FormatPercent(p.MeanReturn))
	fmt.Fprintf(&buf, "           Return volatility: %s\n", FormatPercent(p.Volatility))
	fmt.Fprintf(&buf, "  Withdrawal amount per year: %s\n", FormatCurrency(s.FirstYearWithdrawal))
	fmt.Fprintf(&buf, "      Annual withdrawal rate: %s\n", FormatRate(p.WithdrawalRate))
	fmt.Fprintf(&buf, "           Withdrawal policy: %s\n", policy)
	fmt.Fprintf(&buf, "Simulation duration in years: %d\n", p.Years)
	fmt.Fprintf(&buf, "        Number of simulations: %d\n", p.NumTrials)
	fmt.Fprintf(&buf, "                 Random seed: %d\n", res.Seed)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Results:")
	fmt.Fprintln(&buf, "========")
	fmt.Fprintf(&buf, "Mean final portfolio value: %s\n", FormatCurrency(s.MeanFinal))
	fmt.Fprintf(&buf, "Without inflation - Mean final portfolio value: %s\n", FormatCurrency(s.MeanFinal))
	fmt.Fprintf(&buf, "Without inflation  - SD final portfolio value: %s\n", FormatCurrency(s.StdDevFinal))
	fmt.Fprintf(&buf, "Inflation-adjusted mean final portfolio value: %s\n", FormatCurrency(s.MeanFinalReal))
	fmt.Fprintf(&buf, "Inflation-adjusted - SD final portfolio value: %s\n", FormatCurrency(s.StdDevFinalReal))
	fmt.Fprintf(&buf, "Withdrawal amount at final year: %s\n", FormatCurrency(s.FinalYearWithdrawal))
	fmt.Fprintf(&buf, "Probability of portfolio depletion before %d years: %s\n",
		p.Years, FormatPercent(s.DepletionProbability))

	fmt.Fprintf(&buf, "Median final portfolio value: %s (inflation-adjusted %s)\n",
		FormatCurrency(s.MedianFinal), FormatCurrency(s.MedianFinalReal))
	if s.Degenerate {
		fmt.Fprintln(&buf, "Note: fewer than 2 trials; standard deviations reported as 0.")
	}

	return buf.Bytes(), nil
}
