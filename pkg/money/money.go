package money

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount with financial-precision formatting.
// Simulation arithmetic stays in float64 for speed; report surfaces
// convert through Money so every printed figure is rounded the same
// way.
type Money struct {
	decimal.Decimal
}

// New creates a Money amount from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromString parses a Money amount from its string form.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Mul scales the amount by a factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides the amount by a factor.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// String returns the amount with two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format returns the amount as a currency string.
func (m Money) Format() string {
	return "£" + m.String()
}
