package simulation

import (
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// trialSeedStride decorrelates per-trial seeds derived from the master
// seed (Knuth's multiplicative hash constant).
const trialSeedStride = 2654435761

// Simulator runs NumTrials independent portfolio paths and assembles
// them into a TrialMatrix. Trials are embarrassingly parallel: each
// worker owns a disjoint range of rows and every trial draws from its
// own seeded random source, so a run is bit-identical for a fixed seed
// regardless of the worker count or schedule.
type Simulator struct {
	params  ParameterSet
	seed    int64
	workers int
	logger  Logger
}

// NewSimulator validates the parameter set and builds a simulator. A
// zero Seed is resolved from the clock here, so the effective seed can
// be recorded and the run reproduced.
func NewSimulator(params ParameterSet) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		params:  params,
		seed:    seed,
		workers: runtime.NumCPU(),
		logger:  NopLogger{},
	}, nil
}

// SetLogger replaces the default no-op logger.
func (s *Simulator) SetLogger(l Logger) {
	if l != nil {
		s.logger = l
	}
}

// SetWorkers overrides the worker count (default runtime.NumCPU).
// Values below 1 are ignored.
func (s *Simulator) SetWorkers(n int) {
	if n >= 1 {
		s.workers = n
	}
}

// Seed returns the effective master seed for this run.
func (s *Simulator) Seed() int64 { return s.seed }

// Params returns the validated parameter set.
func (s *Simulator) Params() ParameterSet { return s.params }

// Run executes every trial and returns the completed matrix. Degenerate
// inputs that drive balances toward infinity are not special-cased; they
// propagate as extreme finite-precision values, bounded below by the
// depletion floor.
func (s *Simulator) Run() *TrialMatrix {
	p := s.params
	matrix := newTrialMatrix(p.NumTrials, p.Years)

	workers := s.workers
	if workers > p.NumTrials {
		workers = p.NumTrials
	}
	chunk := (p.NumTrials + workers - 1) / workers

	s.logger.Debugf("running %d trials over %d years on %d workers (seed %d)",
		p.NumTrials, p.Years, workers, s.seed)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > p.NumTrials {
			hi = p.NumTrials
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				rng := rand.New(rand.NewSource(trialSeed(s.seed, i)))
				generatePath(p, rng, matrix.Row(i))
			}
		}(lo, hi)
	}
	wg.Wait()

	return matrix
}

// trialSeed derives trial i's stream seed from the master seed. Each
// trial owns its own source, so no stream is shared across goroutines
// and outcomes do not depend on execution order.
func trialSeed(master int64, trial int) int64 {
	return master + int64(trial+1)*trialSeedStride
}
