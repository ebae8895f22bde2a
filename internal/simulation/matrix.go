package simulation

// TrialMatrix holds the portfolio balance of every trial at every year.
// It has NumTrials rows and Years+1 columns; column 0 is the initial
// balance for every row and column t is the balance at the end of year
// t. The whole matrix is one contiguous allocation: each cell is written
// exactly once by the engine and the matrix is read-only afterwards.
type TrialMatrix struct {
	trials int
	years  int
	data   []float64
}

func newTrialMatrix(trials, years int) *TrialMatrix {
	return &TrialMatrix{
		trials: trials,
		years:  years,
		data:   make([]float64, trials*(years+1)),
	}
}

// NumTrials returns the number of rows.
func (m *TrialMatrix) NumTrials() int { return m.trials }

// Years returns the simulation horizon; the matrix has Years+1 columns.
func (m *TrialMatrix) Years() int { return m.years }

// At returns the balance of trial i at the end of year t (t=0 is the
// initial balance).
func (m *TrialMatrix) At(i, t int) float64 {
	return m.data[i*(m.years+1)+t]
}

// Row returns trial i's full path as a slice into the backing array.
// Callers must treat it as read-only.
func (m *TrialMatrix) Row(i int) []float64 {
	w := m.years + 1
	return m.data[i*w : (i+1)*w : (i+1)*w]
}

// Column copies the balances of every trial at year t into a fresh
// slice.
func (m *TrialMatrix) Column(t int) []float64 {
	col := make([]float64, m.trials)
	for i := range col {
		col[i] = m.At(i, t)
	}
	return col
}

// FinalColumn copies every trial's balance at the horizon.
func (m *TrialMatrix) FinalColumn() []float64 {
	return m.Column(m.years)
}
