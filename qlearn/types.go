// Package qlearn implements tabular Q-Learning routing.
//
// State = current node; action = choice of an incident link. The Q-table
// stores the expected cumulative scalar cost of taking an action, so action
// selection MINIMIZES Q. Per step the walker accrues the traversed link's
// contribution to the scalar fitness (the negated reward of the classical
// formulation) and applies the temporal-difference update
//
//	Q(s,a) ← Q(s,a) + α·(cost + γ·min_a' Q(s',a') − Q(s,a))
//
// with learning rate α and discount γ. Exploration follows an epsilon-greedy
// policy whose epsilon decays linearly from EpsilonStart to EpsilonEnd over
// the configured episodes; the final answer is the pure-greedy walk over the
// learned table.
//
// Errors:
//
//	ErrBadAlpha / ErrBadGamma / ErrBadEpsilon / ErrBadEpisodes / ErrBadMaxSteps
//	  - configuration outside its valid range (reported by New).
//	route.ErrNoFeasiblePath
//	  - the greedy walk dead-ends or exceeds the step cap.
package qlearn

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadAlpha indicates a learning rate outside (0,1].
	ErrBadAlpha = errors.New("qlearn: alpha must be in (0,1]")

	// ErrBadGamma indicates a discount factor outside [0,1].
	ErrBadGamma = errors.New("qlearn: gamma must be in [0,1]")

	// ErrBadEpsilon indicates epsilon bounds outside [0,1] or Start < End.
	ErrBadEpsilon = errors.New("qlearn: epsilon bounds must satisfy 0 ≤ end ≤ start ≤ 1")

	// ErrBadEpisodes indicates a non-positive episode count.
	ErrBadEpisodes = errors.New("qlearn: episodes must be positive")

	// ErrBadMaxSteps indicates a non-positive per-episode step cap.
	ErrBadMaxSteps = errors.New("qlearn: max steps must be positive")
)

// Default hyperparameters.
const (
	DefaultAlpha        = 0.1
	DefaultGamma        = 0.9
	DefaultEpsilonStart = 0.9
	DefaultEpsilonEnd   = 0.05
	DefaultEpisodes     = 500
	DefaultMaxSteps     = 100
)

// Options is the Q-Learning configuration. Immutable once a run starts.
//
// Seed==0 maps to the package-wide deterministic default seed, so results
// are reproducible unless the caller explicitly varies the seed.
type Options struct {
	// Alpha is the learning rate in (0,1].
	Alpha float64

	// Gamma is the discount factor in [0,1].
	Gamma float64

	// EpsilonStart/EpsilonEnd bound the linearly decaying exploration rate.
	EpsilonStart float64
	EpsilonEnd   float64

	// Episodes is the number of training episodes.
	Episodes int

	// MaxSteps caps steps per episode to bound cycles.
	MaxSteps int

	// Seed drives the solver's private RNG stream.
	Seed int64

	// Progress, when non-nil, receives (episode, bestScalarSoFar) after each
	// episode. Advisory; must be fast and non-blocking.
	Progress func(episode int, best float64)

	// Logger receives periodic training telemetry; nil disables logging.
	Logger *logrus.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Alpha:        DefaultAlpha,
		Gamma:        DefaultGamma,
		EpsilonStart: DefaultEpsilonStart,
		EpsilonEnd:   DefaultEpsilonEnd,
		Episodes:     DefaultEpisodes,
		MaxSteps:     DefaultMaxSteps,
	}
}

// Validate checks every hyperparameter range.
func (o Options) Validate() error {
	if o.Alpha <= 0 || o.Alpha > 1 {
		return ErrBadAlpha
	}
	if o.Gamma < 0 || o.Gamma > 1 {
		return ErrBadGamma
	}
	if o.EpsilonEnd < 0 || o.EpsilonStart > 1 || o.EpsilonEnd > o.EpsilonStart {
		return ErrBadEpsilon
	}
	if o.Episodes <= 0 {
		return ErrBadEpisodes
	}
	if o.MaxSteps <= 0 {
		return ErrBadMaxSteps
	}

	return nil
}
