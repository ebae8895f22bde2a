package output

import (
	"github.com/mcport/portfolio-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a balance as currency with 2 decimals. Kept
// here so every formatter rounds report figures the same way.
func FormatCurrency(amount float64) string {
	return money.New(amount).Round().Format()
}

// FormatPercent formats a fraction (0.039) as a percentage with 2
// decimals ("3.90%").
func FormatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatRate formats a fractional rate as given, without the percent
// conversion ("0.03").
func FormatRate(fraction float64) string {
	return decimal.NewFromFloat(fraction).String()
}
