// pso.go — swarm state and the iterate/decode/update loop.
package pso

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
	"github.com/katalvlaran/qospath/route"
	"github.com/katalvlaran/qospath/topology"
)

// SolverName identifies the algorithm in comparison tables.
const SolverName = "pso"

// progressLogEvery throttles logger output to one line per N iterations.
const progressLogEvery = 10

// Solver runs particle swarm optimization with a validated configuration.
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

// particle is one candidate: a priority per node plus personal-best memory.
type particle struct {
	pos       []float64
	vel       []float64
	bestPos   []float64
	bestScore float64
}

// Solve runs Iterations rounds over SwarmSize particles and returns the
// global-best decoded path. Cancellation between iterations returns the
// best-so-far; route.ErrNoFeasiblePath is returned only when no particle
// ever decoded to a feasible path.
//
// Complexity: O(Iterations · SwarmSize · V · max degree) time, O(SwarmSize · V) space.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, req route.Request) (route.Result, error) {
	if err := req.Validate(g); err != nil {
		return route.Result{}, err
	}

	rng := topology.RNGFromSeed(s.opts.Seed)
	n := g.NodeCount()

	swarm := make([]*particle, s.opts.SwarmSize)
	for i := range swarm {
		swarm[i] = newParticle(n, rng)
	}

	var (
		gbestScore = math.Inf(1)
		gbestPos   = append([]float64(nil), swarm[0].pos...) // placeholder until a feasible decode appears
		gbestPath  core.Path
		trace      = make([]float64, 0, s.opts.Iterations)
		iter       int
	)

	for iter = 0; iter < s.opts.Iterations; iter++ {
		if ctx.Err() != nil {
			break // cooperative cancellation: report best-so-far
		}

		for _, p := range swarm {
			score, path := s.score(g, req, p.pos)

			if score < p.bestScore {
				p.bestScore = score
				copy(p.bestPos, p.pos)
			}
			if score < gbestScore {
				gbestScore = score
				gbestPath = path
				gbestPos = append(gbestPos[:0:0], p.pos...)
			}
		}

		for _, p := range swarm {
			s.move(p, gbestPos, rng)
		}

		trace = append(trace, gbestScore)
		if s.opts.Progress != nil {
			s.opts.Progress(iter, gbestScore)
		}
		if s.opts.Logger != nil && (iter+1)%progressLogEvery == 0 {
			s.opts.Logger.WithField("iteration", iter+1).
				WithField("best", gbestScore).Debug("pso search")
		}
	}

	if gbestPath == nil {
		return route.Result{}, fmt.Errorf("%d particles, %d iterations: %w",
			s.opts.SwarmSize, iter, route.ErrNoFeasiblePath)
	}

	fit, err := fitness.Evaluate(g, gbestPath, req.Weights)
	if err != nil {
		return route.Result{}, err
	}

	return route.Result{Path: gbestPath, Fitness: fit, Trace: trace}, nil
}

// score decodes pos and evaluates the resulting path. Infeasible decodes get
// the +Inf penalty so they never win while a feasible candidate exists.
func (s *Solver) score(g *core.Graph, req route.Request, pos []float64) (float64, core.Path) {
	path, err := route.DecodePriorities(g, req.Source, req.Destination, pos, req.DemandMbps)
	if err != nil {
		return math.Inf(1), nil
	}

	fit, err := fitness.Evaluate(g, path, req.Weights)
	if err != nil {
		return math.Inf(1), nil
	}

	return fit.Scalar, path
}

// move applies the velocity/position update with per-dimension r1, r2 draws
// and clamps positions into [PositionMin, PositionMax].
func (s *Solver) move(p *particle, gbestPos []float64, rng *rand.Rand) {
	var (
		d      int
		r1, r2 float64
	)
	for d = range p.pos {
		r1, r2 = rng.Float64(), rng.Float64()

		p.vel[d] = s.opts.W*p.vel[d] +
			s.opts.C1*r1*(p.bestPos[d]-p.pos[d]) +
			s.opts.C2*r2*(gbestPos[d]-p.pos[d])

		p.pos[d] = clamp(p.pos[d]+p.vel[d], PositionMin, PositionMax)
	}
}

// newParticle draws a uniform position in [0,1) per node and a small uniform
// initial velocity in [-velocityInit, velocityInit).
func newParticle(n int, rng *rand.Rand) *particle {
	p := &particle{
		pos:       make([]float64, n),
		vel:       make([]float64, n),
		bestPos:   make([]float64, n),
		bestScore: math.Inf(1),
	}
	for d := 0; d < n; d++ {
		p.pos[d] = rng.Float64()
		p.vel[d] = -velocityInit + 2*velocityInit*rng.Float64()
	}
	copy(p.bestPos, p.pos)

	return p
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
