// Package sa searches for low-cost routes with simulated annealing.
//
// A single candidate path is perturbed by re-routing a random sub-segment.
// Worse candidates are accepted with the Metropolis probability
// exp(-Δ/T), and the temperature decays geometrically each iteration.
// The solver returns the best path encountered across the whole run, not
// the final accepted state.
package sa

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qospath/route"
	"github.com/katalvlaran/qospath/topology"
)

var (
	// ErrBadTemperature means InitialTemp is not strictly positive.
	ErrBadTemperature = errors.New("sa: initial temperature must be > 0")
	// ErrBadCoolingRate means CoolingRate is outside (0,1).
	ErrBadCoolingRate = errors.New("sa: cooling rate must be in (0,1)")
	// ErrBadIterations means Iterations is not strictly positive.
	ErrBadIterations = errors.New("sa: iterations must be > 0")
)

// Default annealing schedule.
const (
	DefaultInitialTemp = 1000.0
	DefaultCoolingRate = 0.95
	DefaultIterations  = 500
)

// Options configures the annealing schedule and neighbourhood move.
type Options struct {
	// InitialTemp is the starting temperature T₀. Must be > 0.
	InitialTemp float64
	// CoolingRate multiplies the temperature each iteration. Must be in (0,1).
	CoolingRate float64
	// Iterations is the number of perturbation steps. Must be > 0.
	Iterations int
	// MaxWalkLen caps the node count of repair walks.
	// Zero selects route.DefaultMaxWalkLen.
	MaxWalkLen int
	// Seed drives all stochastic decisions; zero selects topology.DefaultSeed.
	Seed int64
	// Progress, when non-nil, receives (iteration, bestScalar) each step.
	Progress func(iteration int, best float64)
	// Logger, when non-nil, receives periodic telemetry at Debug level.
	Logger *logrus.Logger
}

// DefaultOptions returns the standard annealing schedule.
func DefaultOptions() Options {
	return Options{
		InitialTemp: DefaultInitialTemp,
		CoolingRate: DefaultCoolingRate,
		Iterations:  DefaultIterations,
		MaxWalkLen:  route.DefaultMaxWalkLen,
		Seed:        topology.DefaultSeed,
	}
}

// Validate reports the first sentinel violated by o.
func (o Options) Validate() error {
	if o.InitialTemp <= 0 {
		return ErrBadTemperature
	}
	if o.CoolingRate <= 0 || o.CoolingRate >= 1 {
		return ErrBadCoolingRate
	}
	if o.Iterations <= 0 {
		return ErrBadIterations
	}

	return nil
}
