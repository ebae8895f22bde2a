package output

import (
	"github.com/mcport/portfolio-simulator/internal/simulation"
)

// Result bundles everything the presentation layer may render: the
// validated parameters, the effective master seed, the raw trial matrix
// and the summary record. Formatters treat all of it as read-only.
type Result struct {
	Params  simulation.ParameterSet
	Seed    int64
	Matrix  *simulation.TrialMatrix
	Summary *simulation.SummaryRecord
}
