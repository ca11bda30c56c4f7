// evaluate.go — Evaluate and the per-link scalar cost shared with solvers
// that accrue cost edge by edge (Q-Learning, the Dijkstra baseline).
package fitness

import (
	"math"

	"github.com/katalvlaran/qospath/core"
)

// Option configures Evaluate.
type Option func(*config)

type config struct {
	nodeCosts bool
}

// WithNodeCosts includes per-node contributions in the result: processing
// delay of intermediate nodes (endpoints excluded) and the reliability
// log-cost of every node on the path. Off by default, keeping the evaluator
// a pure link-sum.
func WithNodeCosts() Option {
	return func(c *config) { c.nodeCosts = true }
}

// Evaluate scores path on graph g under weights w.
//
// Preconditions and validation (in order):
//  1. w must be non-negative with a positive sum (ErrInvalidWeight);
//     it is normalized to sum to 1 before weighting.
//  2. path must be a simple path of existing links (core.ErrInvalidPath).
//
// Reliability draws are constrained to (0,1] at generation/build time, so
// the log-cost is always finite here.
//
// Complexity: O(len(path) · max degree) time, O(1) extra space.
func Evaluate(g *core.Graph, path core.Path, w Weights, opts ...Option) (Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	norm, err := w.Normalize()
	if err != nil {
		return Result{}, err
	}

	links, err := g.PathLinks(path)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, l := range links {
		res.TotalDelayMs += l.DelayMs
		res.ReliabilityCost += -math.Log(l.Reliability)
		res.ResourceCost += ResourceNumerator / l.BandwidthMbps
	}

	if cfg.nodeCosts {
		var (
			nd core.Node
			i  int
		)
		for i = range path {
			nd, _ = g.Node(path[i])
			res.ReliabilityCost += -math.Log(nd.Reliability)
			if i > 0 && i < len(path)-1 {
				res.TotalDelayMs += nd.ProcDelayMs
			}
		}
	}

	res.Scalar = scalarize(res, norm)

	return res, nil
}

// LinkCost returns one link's contribution to the scalar fitness under the
// already-normalized weight vector. Summing LinkCost over a path's links
// equals that path's Scalar (without node costs), which is what lets
// edge-accruing solvers optimize the same objective as Evaluate.
func LinkCost(l core.Link, norm Weights) float64 {
	return norm.Delay*l.DelayMs +
		norm.Reliability*(-math.Log(l.Reliability))*ReliabilityScale +
		norm.Resource*(ResourceNumerator/l.BandwidthMbps)
}

// scalarize applies the documented scale policy to the raw terms.
func scalarize(r Result, norm Weights) float64 {
	return norm.Delay*r.TotalDelayMs +
		norm.Reliability*r.ReliabilityCost*ReliabilityScale +
		norm.Resource*r.ResourceCost
}

// expNeg is exp(−x), split out to keep math imports local to this file.
func expNeg(x float64) float64 { return math.Exp(-x) }
