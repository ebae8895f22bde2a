package simulation

import (
	"math"
	"math/rand"
)

// generatePath fills dst with one trial's year-end balances. dst must
// have length p.Years+1; dst[0] is set to the initial balance. The rng
// is owned by the caller and consumed one standard-normal draw per
// simulated year until the trial depletes.
//
// Per-year update: draw r = MeanReturn + Volatility*Z, grow the balance
// by (1+r), then subtract the year's withdrawal, flooring at zero. Zero
// is absorbing: a depleted trial stays at zero for every later year and
// consumes no further draws.
func generatePath(p ParameterSet, rng *rand.Rand, dst []float64) {
	dst[0] = p.InitialValue
	balance := p.InitialValue
	for year := 1; year <= p.Years; year++ {
		if balance == 0 {
			dst[year] = 0
			continue
		}
		r := p.MeanReturn + p.Volatility*rng.NormFloat64()
		balance *= 1 + r
		balance -= withdrawal(p, year, balance)
		if balance <= 0 {
			balance = 0
		}
		dst[year] = balance
	}
}

// withdrawal returns the amount taken at the end of the given year
// (1-based) for a live trial. balance is the post-growth balance, which
// only dynamic mode looks at.
func withdrawal(p ParameterSet, year int, balance float64) float64 {
	if p.DynamicWithdraw {
		return balance * p.WithdrawalRate
	}
	// Constant mode: fixed in real terms, so the nominal amount is
	// indexed to inflation from the first year's InitialValue*rate.
	return p.InitialValue * p.WithdrawalRate * math.Pow(1+p.InflationRate, float64(year-1))
}

// WithdrawalAt reports the nominal withdrawal amount for the given year
// (1-based) independent of any simulated path, for use in summaries. In
// constant mode this is the exact per-trial amount. In dynamic mode the
// actual amount is path-dependent, so the figure is the withdrawal along
// the zero-volatility expected trajectory: each year the balance grows
// by MeanReturn and sheds WithdrawalRate of itself.
func WithdrawalAt(p ParameterSet, year int) float64 {
	if !p.DynamicWithdraw {
		return withdrawal(p, year, 0)
	}
	balance := p.InitialValue
	for t := 1; t < year; t++ {
		balance *= (1 + p.MeanReturn) * (1 - p.WithdrawalRate)
	}
	return balance * (1 + p.MeanReturn) * p.WithdrawalRate
}
