// qlearn.go — training loop, epsilon-greedy policy, and the final greedy walk.
package qlearn

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
const SolverName = "qlearn"

// progressLogEvery throttles logger output to one line per N episodes.
const progressLogEvery = 100

// Solver runs tabular Q-Learning with a validated, immutable configuration.
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

// Solve trains the Q-table over opts.Episodes episodes and returns the path
// produced by the final greedy walk. Episodes never revisit a node (cycles
// are additionally bounded by MaxSteps); exploration decays linearly.
//
// Cancellation stops training between episodes; the greedy walk then runs on
// whatever the table has learned so far.
//
// Complexity: O(Episodes · MaxSteps · max degree) time, O(V + E) space.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, req route.Request) (route.Result, error) {
	if err := req.Validate(g); err != nil {
		return route.Result{}, err
	}
	norm, _ := req.Weights.Normalize() // validated above

	rng := topology.RNGFromSeed(s.opts.Seed)
	n := g.NodeCount()

	// q[u][k] is the estimated cost-to-go of leaving u via its k-th neighbor.
	// Zero-initialized per the tabular method's contract.
	q := make([][]float64, n)
	var u int
	for u = 0; u < n; u++ {
		nbs, _ := g.Neighbors(u)
		q[u] = make([]float64, len(nbs))
	}

	var (
		trace   = make([]float64, 0, s.opts.Episodes)
		best    = math.Inf(1)
		epsilon float64
		decay   = (s.opts.EpsilonStart - s.opts.EpsilonEnd) / float64(s.opts.Episodes)
		ep      int
	)

	for ep = 0; ep < s.opts.Episodes; ep++ {
		if ctx.Err() != nil {
			break // cooperative cancellation: exploit what was learned
		}

		epsilon = math.Max(s.opts.EpsilonEnd, s.opts.EpsilonStart-float64(ep)*decay)

		path, reached := s.episode(g, req, norm, q, rng, epsilon)
		if reached {
			if fit, err := fitness.Evaluate(g, path, req.Weights); err == nil && fit.Scalar < best {
				best = fit.Scalar
			}
		}

		trace = append(trace, best)
		if s.opts.Progress != nil {
			s.opts.Progress(ep, best)
		}
		if s.opts.Logger != nil && (ep+1)%progressLogEvery == 0 {
			s.opts.Logger.WithFields(logFields(ep+1, epsilon, best)).Debug("qlearn training")
		}
	}

	// The learned policy IS the answer: a pure-greedy walk over the table.
	path, err := s.greedyWalk(g, req, q)
	if err != nil {
		return route.Result{}, err
	}

	fit, err := fitness.Evaluate(g, path, req.Weights)
	if err != nil {
		return route.Result{}, err
	}

	return route.Result{Path: path, Fitness: fit, Trace: trace}, nil
}

// episode runs one training walk from source, updating q in place. Returns
// the visited path and whether the destination was reached.
func (s *Solver) episode(g *core.Graph, req route.Request, norm fitness.Weights,
	q [][]float64, rng *rand.Rand, epsilon float64) (core.Path, bool) {
	visited := make([]bool, g.NodeCount())
	visited[req.Source] = true

	path := core.Path{req.Source}
	current := req.Source

	var step int
	for step = 0; step < s.opts.MaxSteps; step++ {
		if current == req.Destination {
			return path, true
		}

		nbs, _ := g.Neighbors(current)
		k := s.chooseAction(nbs, q[current], visited, req.DemandMbps, rng, epsilon)
		if k < 0 {
			return path, false // dead end: every usable neighbor already visited
		}

		next := nbs[k].To
		cost := fitness.LinkCost(nbs[k].Link, norm)

		// TD target: immediate cost plus discounted best cost-to-go of the
		// successor (zero at the destination, which is terminal).
		target := cost
		if next != req.Destination {
			target += s.opts.Gamma * minCostToGo(g, q, next, req.DemandMbps)
		}
		q[current][k] += s.opts.Alpha * (target - q[current][k])

		visited[next] = true
		path = append(path, next)
		current = next
	}

	return path, current == req.Destination
}

// chooseAction applies the epsilon-greedy policy over unvisited, demand-
// satisfying neighbors. Returns the adjacency index, or -1 at a dead end.
func (s *Solver) chooseAction(nbs []core.Neighbor, qRow []float64, visited []bool,
	demand float64, rng *rand.Rand, epsilon float64) int {
	candidates := make([]int, 0, len(nbs))
	for k, nb := range nbs {
		if !visited[nb.To] && route.Usable(nb.Link, demand) {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		return -1
	}

	if rng.Float64() < epsilon {
		return candidates[rng.Intn(len(candidates))]
	}

	best := candidates[0]
	for _, k := range candidates[1:] {
		if qRow[k] < qRow[best] {
			best = k
		}
	}

	return best
}

// minCostToGo returns min_a Q(state, a) over usable actions, or 0 when the
// state has none (matching the zero-initialized table).
func minCostToGo(g *core.Graph, q [][]float64, state int, demand float64) float64 {
	nbs, _ := g.Neighbors(state)

	found := false
	m := 0.0
	for k, nb := range nbs {
		if !route.Usable(nb.Link, demand) {
			continue
		}
		if !found || q[state][k] < m {
			m = q[state][k]
			found = true
		}
	}

	return m
}

// greedyWalk follows argmin-Q actions from source, never revisiting a node.
// A dead end or the step cap yields route.ErrNoFeasiblePath.
func (s *Solver) greedyWalk(g *core.Graph, req route.Request, q [][]float64) (core.Path, error) {
	visited := make([]bool, g.NodeCount())
	visited[req.Source] = true

	path := core.Path{req.Source}
	current := req.Source

	var step int
	for step = 0; step < s.opts.MaxSteps; step++ {
		if current == req.Destination {
			return path, nil
		}

		nbs, _ := g.Neighbors(current)
		best := -1
		for k, nb := range nbs {
			if visited[nb.To] || !route.Usable(nb.Link, req.DemandMbps) {
				continue
			}
			if best < 0 || q[current][k] < q[current][best] {
				best = k
			}
		}
		if best < 0 {
			return nil, fmt.Errorf("greedy walk dead-ends at node %d: %w", current, route.ErrNoFeasiblePath)
		}

		current = nbs[best].To
		visited[current] = true
		path = append(path, current)
	}

	if current == req.Destination {
		return path, nil
	}

	return nil, fmt.Errorf("greedy walk exceeded %d steps: %w", s.opts.MaxSteps, route.ErrNoFeasiblePath)
}

// logFields builds the telemetry fields for one training log line.
func logFields(episode int, epsilon, best float64) map[string]interface{} {
	return map[string]interface{}{
		"episode": episode,
		"epsilon": epsilon,
		"best":    best,
	}
}
