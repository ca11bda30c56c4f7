// Package ga implements a genetic algorithm over path-native encodings.
//
// Individuals are simple paths, seeded by randomized depth-first walks.
// Selection is k-tournament; crossover splices two parents at a randomly
// chosen common intermediate node when one exists, otherwise it falls back to
// a raw index cut on the first parent followed by a randomized repair walk to
// the destination. Mutation replaces a contiguous sub-segment with an
// alternative detour between the same endpoints. The best individual is
// always carried unchanged into the next generation (elitism), so the
// best-found fitness never worsens across generations.
//
// Operator failures (a child that cannot be made feasible) fall back to
// copying the fitter parent, so the population always contains feasible
// paths — the GA side of the uniform reject-at-decode policy documented in
// package route.
//
// Errors:
//
//	ErrInitialPopulation
//	  - zero feasible individuals after seeding; relax the bandwidth demand
//	    or enlarge/densify the graph.
//	ErrBadPopulation / ErrBadGenerations / ErrBadRate / ErrBadElite / ErrBadTournament
//	  - configuration outside its valid range (reported by New).
package ga

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors.
var (
	// ErrInitialPopulation indicates that no feasible individual could be
	// seeded. Documented remedy: relax DemandMbps or raise edge probability.
	ErrInitialPopulation = errors.New("ga: initial population has no feasible individual")

	// ErrBadPopulation indicates a non-positive population size.
	ErrBadPopulation = errors.New("ga: population must be positive")

	// ErrBadGenerations indicates a non-positive generation count.
	ErrBadGenerations = errors.New("ga: generations must be positive")

	// ErrBadRate indicates a crossover/mutation rate outside [0,1].
	ErrBadRate = errors.New("ga: rates must be in [0,1]")

	// ErrBadElite indicates an elite count that is negative or ≥ population.
	ErrBadElite = errors.New("ga: elite count must be in [0, population)")

	// ErrBadTournament indicates a tournament size below 1.
	ErrBadTournament = errors.New("ga: tournament size must be positive")
)

// Default hyperparameters.
const (
	DefaultPopulation    = 50
	DefaultGenerations   = 200
	DefaultCrossoverRate = 0.8
	DefaultMutationRate  = 0.08
	DefaultElite         = 2
	DefaultTournamentK   = 3

	// seedAttemptsPerSlot bounds initial-population sampling: population × this
	// many randomized walks before giving up on filling every slot.
	seedAttemptsPerSlot = 20
)

// Options is the GA configuration. Immutable once a run starts.
type Options struct {
	// Population is the number of individuals per generation.
	Population int

	// Generations is the number of evolution rounds.
	Generations int

	// CrossoverRate is the probability a child is produced by crossover
	// rather than copied from the fitter parent.
	CrossoverRate float64

	// MutationRate is the per-child probability of a detour mutation.
	MutationRate float64

	// Elite individuals are carried unchanged into the next generation.
	Elite int

	// TournamentK is the tournament selection size.
	TournamentK int

	// MaxWalkLen caps randomized walk length (0 ⇒ route.DefaultMaxWalkLen).
	MaxWalkLen int

	// Seed drives the solver's private RNG stream (0 ⇒ deterministic default).
	Seed int64

	// Progress, when non-nil, receives (generation, bestScalarSoFar).
	Progress func(generation int, best float64)

	// Logger receives periodic telemetry; nil disables logging.
	Logger *logrus.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Population:    DefaultPopulation,
		Generations:   DefaultGenerations,
		CrossoverRate: DefaultCrossoverRate,
		MutationRate:  DefaultMutationRate,
		Elite:         DefaultElite,
		TournamentK:   DefaultTournamentK,
	}
}

// Validate checks every hyperparameter range.
func (o Options) Validate() error {
	if o.Population <= 0 {
		return ErrBadPopulation
	}
	if o.Generations <= 0 {
		return ErrBadGenerations
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 || o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrBadRate
	}
	if o.Elite < 0 || o.Elite >= o.Population {
		return ErrBadElite
	}
	if o.TournamentK <= 0 {
		return ErrBadTournament
	}

	return nil
}
