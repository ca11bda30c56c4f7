// SPDX-License-Identifier: MIT
// Package: qospath/route
//
// types.go — Request/Result records, the Solver interface, sentinel errors.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
)

// Sentinel errors shared by solvers.
var (
	// ErrNoFeasiblePath indicates the search/decoding never reached a valid
	// source→destination path.
	ErrNoFeasiblePath = errors.New("route: no feasible path from source to destination")

	// ErrBadEndpoint indicates a source or destination outside the graph.
	ErrBadEndpoint = errors.New("route: endpoint not in graph")

	// ErrSameEndpoints indicates source == destination; a path needs at
	// least two distinct nodes.
	ErrSameEndpoints = errors.New("route: source equals destination")
)

// Request describes one routing demand: find a simple Source→Destination
// path minimizing the scalarized QoS cost under Weights, using only links
// with at least DemandMbps of capacity (0 = unconstrained).
type Request struct {
	Source      int
	Destination int
	Weights     fitness.Weights
	DemandMbps  float64
}

// Validate checks endpoints against g and the weight vector against the
// normalization rules. Solvers call this before touching their RNG so that
// invalid requests fail identically across algorithms.
func (r Request) Validate(g *core.Graph) error {
	if !g.HasNode(r.Source) {
		return fmt.Errorf("source=%d: %w", r.Source, ErrBadEndpoint)
	}
	if !g.HasNode(r.Destination) {
		return fmt.Errorf("destination=%d: %w", r.Destination, ErrBadEndpoint)
	}
	if r.Source == r.Destination {
		return fmt.Errorf("node %d: %w", r.Source, ErrSameEndpoints)
	}
	if _, err := r.Weights.Normalize(); err != nil {
		return err
	}

	return nil
}

// Result is the uniform outcome record of one solver invocation.
type Result struct {
	// Path is the best-found simple path.
	Path core.Path

	// Fitness holds the QoS terms and scalar of Path.
	Fitness fitness.Result

	// Trace is the convergence history: best scalar fitness found so far,
	// one entry per iteration/episode/generation. Advisory telemetry.
	Trace []float64
}

// Solver is implemented by every path-search algorithm. Solve must treat g
// as read-only, honor ctx cooperatively between iterations (returning the
// best-found-so-far result on cancellation), and keep all randomness inside
// its own seeded stream.
type Solver interface {
	// Name identifies the algorithm in comparison tables.
	Name() string

	// Solve searches g for the best path satisfying req.
	Solve(ctx context.Context, g *core.Graph, req Request) (Result, error)
}

// Usable reports whether l satisfies the request's bandwidth demand.
func Usable(l core.Link, demandMbps float64) bool {
	return l.BandwidthMbps >= demandMbps
}
