package simulation

import (
	"fmt"
	"math"
	"sort"
)

// SummaryRecord is the read-only reduction of a TrialMatrix. It is
// computed once per run and never mutated.
//
// Standard deviations are population standard deviations (divide by N,
// not N-1). Inflation-adjusted figures divide each trial's final
// balance by (1+InflationRate)^Years before aggregating, so the
// reported adjusted mean is the mean of per-trial adjusted values.
type SummaryRecord struct {
	MeanFinal   float64 `json:"mean_final"`
	MedianFinal float64 `json:"median_final"`
	StdDevFinal float64 `json:"stddev_final"`

	MeanFinalReal   float64 `json:"mean_final_real"`
	MedianFinalReal float64 `json:"median_final_real"`
	StdDevFinalReal float64 `json:"stddev_final_real"`

	// FirstYearWithdrawal and FinalYearWithdrawal come from the nominal
	// withdrawal formula, never from the matrix, so a trial that
	// depleted early does not distort them.
	FirstYearWithdrawal float64 `json:"first_year_withdrawal"`
	FinalYearWithdrawal float64 `json:"final_year_withdrawal"`

	// DepletionProbability is the fraction of trials (in [0,1]) whose
	// balance reached the absorbing zero state at or before the horizon.
	DepletionProbability float64 `json:"depletion_probability"`

	// Degenerate is set when fewer than 2 trials were run: a standard
	// deviation is not meaningful, so both std-dev fields are reported
	// as zero.
	Degenerate bool `json:"degenerate"`

	NumTrials int `json:"num_trials"`
	Years     int `json:"years"`
}

// ConfidenceBands holds per-year percentile trajectories across trials:
// the 2.5th and 97.5th percentiles (a 95% interval) and the median.
// Each slice has Years+1 entries and every column is computed
// independently.
type ConfidenceBands struct {
	Lower  []float64
	Median []float64
	Upper  []float64
}

// Summarize reduces a completed TrialMatrix into a SummaryRecord.
func Summarize(m *TrialMatrix, p ParameterSet) (*SummaryRecord, error) {
	if m == nil {
		return nil, fmt.Errorf("summarize: nil trial matrix")
	}
	if m.NumTrials() != p.NumTrials || m.Years() != p.Years {
		return nil, fmt.Errorf("summarize: matrix shape %dx%d does not match parameters (%d trials, %d years)",
			m.NumTrials(), m.Years()+1, p.NumTrials, p.Years)
	}

	finals := m.FinalColumn()
	factor := p.InflationFactor()
	reals := make([]float64, len(finals))
	for i, v := range finals {
		reals[i] = v / factor
	}

	rec := &SummaryRecord{
		MeanFinal:           mean(finals),
		MedianFinal:         median(finals),
		MeanFinalReal:       mean(reals),
		MedianFinalReal:     median(reals),
		FirstYearWithdrawal: WithdrawalAt(p, 1),
		FinalYearWithdrawal: WithdrawalAt(p, p.Years),
		NumTrials:           m.NumTrials(),
		Years:               m.Years(),
	}

	if m.NumTrials() < 2 {
		rec.Degenerate = true
	} else {
		rec.StdDevFinal = stdDev(finals, rec.MeanFinal)
		rec.StdDevFinalReal = stdDev(reals, rec.MeanFinalReal)
	}

	depleted := 0
	for i := 0; i < m.NumTrials(); i++ {
		if isDepleted(m.Row(i)) {
			depleted++
		}
	}
	rec.DepletionProbability = float64(depleted) / float64(m.NumTrials())

	return rec, nil
}

// Bands computes the per-year confidence trajectories. It is separate
// from Summarize because only plotting consumers need it and it sorts
// every column.
func Bands(m *TrialMatrix) *ConfidenceBands {
	cb := &ConfidenceBands{
		Lower:  make([]float64, m.Years()+1),
		Median: make([]float64, m.Years()+1),
		Upper:  make([]float64, m.Years()+1),
	}
	for t := 0; t <= m.Years(); t++ {
		col := m.Column(t)
		sort.Float64s(col)
		cb.Lower[t] = percentile(col, 0.025)
		cb.Median[t] = percentile(col, 0.5)
		cb.Upper[t] = percentile(col, 0.975)
	}
	return cb
}

// isDepleted reports whether a trial's path touched the absorbing zero
// state. Since zero is absorbing, this is equivalent to checking the
// final cell, but the scan keeps the definition literal.
func isDepleted(path []float64) bool {
	for _, v := range path {
		if v == 0 {
			return true
		}
	}
	return false
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation around a precomputed
// mean.
func stdDev(xs []float64, mu float64) float64 {
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return percentile(s, 0.5)
}

// percentile computes the q-th quantile (q in [0,1]) of an ascending
// sorted slice using linear interpolation between closest ranks.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
