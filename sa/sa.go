// sa.go — Metropolis acceptance loop over detour-based neighbour moves.
package sa

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
	"github.com/katalvlaran/qospath/route"
	"github.com/katalvlaran/qospath/topology"
)

// SolverName identifies the algorithm in comparison tables.
const SolverName = "sa"

// progressLogEvery throttles logger output to one line per N iterations.
const progressLogEvery = 100

// Solver runs simulated annealing with a validated configuration.
type Solver struct {
	opts Options
}

// New validates opts and returns a Solver.
func New(opts Options) (*Solver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Solver{opts: opts}, nil
}

// Name implements route.Solver.
func (*Solver) Name() string { return SolverName }

// Solve anneals from a randomized initial walk. Each iteration proposes one
// detour of the current path; improvements are always accepted and regressions
// with probability exp(-Δ/T). The returned path is the best one encountered,
// which may differ from the final accepted state. Cancellation between
// iterations returns the best-so-far.
//
// Complexity: O(Iterations · walk cost) time, O(V) space.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, req route.Request) (route.Result, error) {
	if err := req.Validate(g); err != nil {
		return route.Result{}, err
	}

	rng := topology.RNGFromSeed(s.opts.Seed)

	current, err := route.RandomWalk(g, req.Source, req.Destination, req.DemandMbps, rng, s.opts.MaxWalkLen)
	if err != nil {
		return route.Result{}, err
	}
	currentScore := s.score(g, req, current)

	var (
		best      = current.Clone()
		bestScore = currentScore
		temp      = s.opts.InitialTemp
		trace     = make([]float64, 0, s.opts.Iterations)
		iter      int
	)
	for iter = 0; iter < s.opts.Iterations; iter++ {
		if ctx.Err() != nil {
			break // cooperative cancellation: report best-so-far
		}

		if candidate, ok := s.neighbour(g, req, current, rng); ok {
			candidateScore := s.score(g, req, candidate)
			if accept(candidateScore-currentScore, temp, rng) {
				current, currentScore = candidate, candidateScore
			}
			if currentScore < bestScore {
				best, bestScore = current.Clone(), currentScore
			}
		}

		temp *= s.opts.CoolingRate
		trace = append(trace, bestScore)

		if s.opts.Progress != nil {
			s.opts.Progress(iter, bestScore)
		}
		if s.opts.Logger != nil && (iter+1)%progressLogEvery == 0 {
			s.opts.Logger.WithField("iteration", iter+1).
				WithField("temperature", temp).
				WithField("best", bestScore).Debug("sa annealing")
		}
	}

	fit, err := fitness.Evaluate(g, best, req.Weights)
	if err != nil {
		return route.Result{}, err
	}

	return route.Result{Path: best, Fitness: fit, Trace: trace}, nil
}

// neighbour proposes one perturbation: a detour replacing the segment between
// two random positions. Paths of two nodes have no interior to perturb, so
// the whole path is re-walked instead.
func (s *Solver) neighbour(g *core.Graph, req route.Request, path core.Path, rng *rand.Rand) (core.Path, bool) {
	if len(path) < 3 {
		fresh, err := route.RandomWalk(g, req.Source, req.Destination, req.DemandMbps, rng, s.opts.MaxWalkLen)
		if err != nil {
			return nil, false
		}

		return fresh, true
	}

	i := rng.Intn(len(path) - 1)
	j := i + 1 + rng.Intn(len(path)-i-1)

	candidate, err := route.Detour(g, path, i, j, req.DemandMbps, rng, s.opts.MaxWalkLen)
	if err != nil {
		return nil, false
	}

	return candidate, true
}

// score evaluates one path; infeasible maps to +Inf so it is never accepted.
func (s *Solver) score(g *core.Graph, req route.Request, path core.Path) float64 {
	fit, err := fitness.Evaluate(g, path, req.Weights)
	if err != nil {
		return math.Inf(1)
	}

	return fit.Scalar
}

// accept implements the Metropolis criterion for a cost delta at temperature t.
func accept(delta, t float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if t <= 0 {
		return false
	}

	return rng.Float64() < math.Exp(-delta/t)
}
