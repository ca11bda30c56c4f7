// Package compare runs several route solvers against one request and
// collects their outcomes side by side.
//
// Solvers execute concurrently on a bounded worker pool. A solver failure
// never aborts the run; it is recorded as an explicit failed Outcome so a
// report always has one entry per solver.
package compare

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
)

var (
	// ErrNoSolvers means Run was given an empty solver list.
	ErrNoSolvers = errors.New("compare: no solvers to run")
	// ErrDuplicateSolver means two solvers report the same Name().
	ErrDuplicateSolver = errors.New("compare: duplicate solver name")
)

// DefaultParallelism bounds the worker pool when no option overrides it.
const DefaultParallelism = 4

// Outcome records one solver's run: either a found path with its fitness, or
// the error that stopped it. Duration covers the whole Solve call.
type Outcome struct {
	Path     core.Path
	Fitness  fitness.Result
	Trace    []float64
	Duration time.Duration
	Err      error
}

// Failed reports whether the solver returned an error instead of a path.
func (o Outcome) Failed() bool { return o.Err != nil }

// Report is the aggregated result of one comparison run.
type Report struct {
	// RunID uniquely identifies this run in logs and exported tables.
	RunID string

	// Outcomes maps solver name to its outcome. Every solver passed to Run
	// has an entry, failed ones included.
	Outcomes map[string]Outcome
}

// Best returns the name of the successful solver with the lowest scalar
// fitness, and false when every solver failed.
func (r Report) Best() (string, bool) {
	var (
		bestName string
		found    bool
	)
	for name, o := range r.Outcomes {
		if o.Failed() {
			continue
		}
		best := r.Outcomes[bestName]
		switch {
		case !found,
			o.Fitness.Scalar < best.Fitness.Scalar,
			o.Fitness.Scalar == best.Fitness.Scalar && name < bestName:
			bestName, found = name, true
		}
	}

	return bestName, found
}

// Option adjusts Run behavior.
type Option func(*options)

type options struct {
	parallelism int
	logger      *logrus.Logger
}

func defaultRunOptions() options {
	return options{parallelism: DefaultParallelism}
}

// WithParallelism caps how many solvers run concurrently. Values below one
// fall back to DefaultParallelism.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallelism = n
		}
	}
}

// WithLogger enables per-solver telemetry on l. The default is silent.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}
