// Package pso implements particle swarm optimization over path-construction
// priority vectors.
//
// Each particle holds one continuous priority per node; decoding walks
// greedily from the source toward the highest-priority unvisited neighbor
// (route.DecodePriorities). Velocities follow the standard rule
//
//	v ← w·v + c1·r1·(pbest − x) + c2·r2·(gbest − x)
//	x ← x + v
//
// with r1, r2 drawn independently per dimension per iteration. Particles
// whose position decodes to no feasible path carry +Inf fitness, so they can
// never displace a feasible global best.
//
// Errors:
//
//	ErrBadSwarmSize / ErrBadIterations / ErrBadInertia / ErrBadCoefficient
//	  - configuration outside its valid range (reported by New).
//	route.ErrNoFeasiblePath
//	  - no particle ever decoded to a feasible path.
package pso

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadSwarmSize indicates a non-positive swarm size.
	ErrBadSwarmSize = errors.New("pso: swarm size must be positive")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("pso: iterations must be positive")

	// ErrBadInertia indicates an inertia weight outside [0,1].
	ErrBadInertia = errors.New("pso: inertia weight must be in [0,1]")

	// ErrBadCoefficient indicates a negative cognitive/social coefficient.
	ErrBadCoefficient = errors.New("pso: acceleration coefficients must be non-negative")
)

// Default hyperparameters.
const (
	DefaultSwarmSize  = 30
	DefaultIterations = 50
	DefaultInertia    = 0.7
	DefaultCognitive  = 1.5
	DefaultSocial     = 2.0
)

// Position bounds: priorities are clamped into [PositionMin, PositionMax]
// after every velocity step so decoding comparisons stay well-conditioned.
const (
	PositionMin = 0.001
	PositionMax = 1.0

	// velocityInit bounds the uniform initial velocity draw.
	velocityInit = 0.1
)

// Options is the PSO configuration. Immutable once a run starts.
type Options struct {
	// SwarmSize is the number of particles.
	SwarmSize int

	// Iterations is the number of swarm update rounds.
	Iterations int

	// W is the inertia weight in [0,1].
	W float64

	// C1 and C2 are the cognitive and social acceleration coefficients.
	C1 float64
	C2 float64

	// Seed drives the solver's private RNG stream (0 ⇒ deterministic default).
	Seed int64

	// Progress, when non-nil, receives (iteration, bestScalarSoFar).
	Progress func(iteration int, best float64)

	// Logger receives periodic telemetry; nil disables logging.
	Logger *logrus.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		SwarmSize:  DefaultSwarmSize,
		Iterations: DefaultIterations,
		W:          DefaultInertia,
		C1:         DefaultCognitive,
		C2:         DefaultSocial,
	}
}

// Validate checks every hyperparameter range.
func (o Options) Validate() error {
	if o.SwarmSize <= 0 {
		return ErrBadSwarmSize
	}
	if o.Iterations <= 0 {
		return ErrBadIterations
	}
	if o.W < 0 || o.W > 1 {
		return ErrBadInertia
	}
	if o.C1 < 0 || o.C2 < 0 {
		return ErrBadCoefficient
	}

	return nil
}
