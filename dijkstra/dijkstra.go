// Package dijkstra implements the deterministic baseline solver: Dijkstra's
// algorithm over the scalarized per-link QoS cost.
//
// Every link weight is fitness.LinkCost(link, weights) — the exact quantity
// the metaheuristics minimize — so the returned path is the true optimum of
// the shared objective (restricted to link costs) and anchors comparison
// tables. Links below the request's bandwidth demand are skipped entirely.
//
// Implementation notes:
//
//   - Min-heap with the “lazy decrease-key” strategy: improved distances are
//     pushed as duplicates and stale entries are skipped when popped.
//   - Per-link costs are non-negative by construction (delay ≥ 0,
//     reliability ∈ (0,1] ⇒ −ln(r) ≥ 0, bandwidth > 0), so no negative-weight
//     pre-scan is needed.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
	"github.com/katalvlaran/qospath/route"
)

// SolverName identifies the baseline in comparison tables.
const SolverName = "dijkstra"

// Solver is the stateless Dijkstra baseline. The zero value is ready to use.
type Solver struct{}

// New returns a baseline solver.
func New() *Solver { return &Solver{} }

// Name implements route.Solver.
func (*Solver) Name() string { return SolverName }

// Solve computes the minimum-scalar-cost path for req. It is deterministic
// (no RNG) and ignores ctx beyond an initial check, since a single Dijkstra
// pass is not a long-running loop.
//
// Returns route.ErrNoFeasiblePath when the destination is unreachable under
// the bandwidth demand.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, req route.Request) (route.Result, error) {
	if err := req.Validate(g); err != nil {
		return route.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return route.Result{}, err
	}

	norm, _ := req.Weights.Normalize() // validated above

	const unreached = -1
	n := g.NodeCount()
	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = infinity
		prev[i] = unreached
	}
	dist[req.Source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: req.Source, dist: 0})

	var (
		u       int
		newDist float64
	)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u = item.id
		if done[u] {
			continue // stale lazy-decrease-key entry
		}
		done[u] = true

		if u == req.Destination {
			break
		}

		nbs, err := g.Neighbors(u)
		if err != nil {
			return route.Result{}, err
		}
		for _, nb := range nbs {
			if done[nb.To] || !route.Usable(nb.Link, req.DemandMbps) {
				continue
			}
			newDist = dist[u] + fitness.LinkCost(nb.Link, norm)
			if newDist >= dist[nb.To] {
				continue
			}
			dist[nb.To] = newDist
			prev[nb.To] = u
			heap.Push(&pq, &nodeItem{id: nb.To, dist: newDist})
		}
	}

	if !done[req.Destination] {
		return route.Result{}, fmt.Errorf("%d→%d (demand=%g): %w",
			req.Source, req.Destination, req.DemandMbps, route.ErrNoFeasiblePath)
	}

	// Reconstruct source→destination order by walking predecessors backwards.
	path := core.Path{}
	for at := req.Destination; at != unreached; at = prev[at] {
		path = append(path, at)
	}
	reverseInPlace(path)

	fit, err := fitness.Evaluate(g, path, req.Weights)
	if err != nil {
		return route.Result{}, err
	}

	return route.Result{
		Path:    path,
		Fitness: fit,
		Trace:   []float64{fit.Scalar}, // exact solver: one-point trace
	}, nil
}

func reverseInPlace(p core.Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
