package output

import (
	"encoding/json"
	"fmt"

	"github.com/mcport/portfolio-simulator/internal/simulation"
)

// JSONFormatter serializes the parameters, seed and summary record as
// pretty-printed JSON. The trial matrix is deliberately excluded; it is
// exported through the paths CSV instead.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonReport struct {
	Params  simulation.ParameterSet   `json:"parameters"`
	Seed    int64                     `json:"seed"`
	Summary *simulation.SummaryRecord `json:"summary"`
}

func (j JSONFormatter) Format(res *Result) ([]byte, error) {
	if res.Summary == nil {
		return nil, fmt.Errorf("json formatter: result has no summary")
	}
	return json.MarshalIndent(jsonReport{
		Params:  res.Params,
		Seed:    res.Seed,
		Summary: res.Summary,
	}, "", "  ")
}
