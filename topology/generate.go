// SPDX-License-Identifier: MIT
// Package: qospath/topology
//
// generate.go - implementation of Generate(nodeCount, edgeProbability, ...).
//
// Contract:
//   - nodeCount ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ edgeProbability ≤ 1 (else ErrInvalidProbability).
//   - Fixed stream order (see package doc) ⇒ deterministic outcomes per seed.
//   - Sampled graph must be connected (else ErrDisconnectedTopology).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) node draws + O(n²) Bernoulli trials + O(V+E) connectivity.
//   - Space: O(V + E).
package topology

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qospath/core"
)

// Generate samples an Erdős–Rényi topology over nodeCount nodes with
// independent link probability edgeProbability, assigns trade-off-correlated
// QoS attributes per link, verifies connectivity, and computes a
// deterministic presentation layout from an independent substream.
func Generate(nodeCount int, edgeProbability float64, opts ...Option) (*core.Graph, Layout, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate parameters early (fail fast, zero side effects on invalid input).
	if nodeCount < minNodes {
		return nil, nil, fmt.Errorf("nodeCount=%d < min=%d: %w", nodeCount, minNodes, ErrTooFewNodes)
	}
	if edgeProbability < 0 || edgeProbability > 1 {
		return nil, nil, fmt.Errorf("p=%.6f not in [0,1]: %w", edgeProbability, ErrInvalidProbability)
	}

	mixSum := cfg.TypeMix[0] + cfg.TypeMix[1] + cfg.TypeMix[2]
	if cfg.TypeMix[0] < 0 || cfg.TypeMix[1] < 0 || cfg.TypeMix[2] < 0 || mixSum <= 0 {
		return nil, nil, fmt.Errorf("mix=%v: %w", cfg.TypeMix, ErrBadTypeMix)
	}

	// 2) Resolve the seed. Unseeded requests get a one-off stream.
	seed := cfg.Seed
	if !cfg.seeded {
		seed = ephemeralSeed()
	}
	rng := RNGFromSeed(seed)

	// 3) Node attributes first: two uniform draws per node, i ascending.
	nodes := make([]core.Node, nodeCount)
	var i int
	for i = 0; i < nodeCount; i++ {
		nodes[i] = core.Node{
			ID:          i,
			ProcDelayMs: uniform(rng, NodeProcDelayMin, NodeProcDelayMax),
			Reliability: uniform(rng, NodeRelMin, NodeRelMax),
		}
	}

	// 4) Link trials: unordered pairs {i,j}, i asc then j asc with j>i.
	//    One Bernoulli draw per pair keeps the stream position independent of
	//    earlier outcomes; attribute draws happen only for included pairs.
	var (
		links []core.Link
		j     int
	)
	for i = 0; i < nodeCount; i++ {
		for j = i + 1; j < nodeCount; j++ {
			if rng.Float64() >= edgeProbability {
				continue
			}
			links = append(links, sampleLink(rng, i, j, cfg.TypeMix, mixSum))
		}
	}

	g, err := core.Build(nodes, links)
	if err != nil {
		// Unreachable with in-range constants; surfaced for defense in depth.
		return nil, nil, fmt.Errorf("topology: assemble: %w", err)
	}

	// 5) Connectivity is a hard invariant: fail, never repair (see package doc).
	if reached := reachableFrom(g, 0); reached != nodeCount {
		return nil, nil, fmt.Errorf("reached %d of %d nodes (p=%.3f): %w",
			reached, nodeCount, edgeProbability, ErrDisconnectedTopology)
	}

	// 6) Layout from an independent substream: solver inputs stay untouched.
	pos := springLayout(g, RNGFromSeed(DeriveSeed(seed, streamLayout)), cfg.LayoutIterations)

	return g, pos, nil
}

// sampleLink draws the medium type by mix weight, then bandwidth, delay, and
// reliability uniformly within the type's range — in that fixed order.
func sampleLink(rng *rand.Rand, u, v int, mix [3]float64, mixSum float64) core.Link {
	t := drawType(rng, mix, mixSum)
	r := rangesFor(t)

	return core.Link{
		From:          u,
		To:            v,
		Type:          t,
		BandwidthMbps: uniform(rng, r.bwMin, r.bwMax),
		DelayMs:       uniform(rng, r.delMin, r.delMax),
		Reliability:   uniform(rng, r.relMin, r.relMax),
	}
}

// drawType picks a LinkType proportionally to mix weights with one draw.
func drawType(rng *rand.Rand, mix [3]float64, mixSum float64) core.LinkType {
	x := rng.Float64() * mixSum
	if x < mix[0] {
		return core.Fiber
	}
	if x < mix[0]+mix[1] {
		return core.Microwave
	}

	return core.Satellite
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// reachableFrom counts nodes reachable from start by breadth-first search.
func reachableFrom(g *core.Graph, start int) int {
	n := g.NodeCount()
	visited := make([]bool, n)
	visited[start] = true

	queue := make([]int, 0, n)
	queue = append(queue, start)
	count := 1

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		nbs, _ := g.Neighbors(u)
		for _, nb := range nbs {
			if visited[nb.To] {
				continue
			}
			visited[nb.To] = true
			count++
			queue = append(queue, nb.To)
		}
	}

	return count
}
