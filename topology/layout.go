// SPDX-License-Identifier: MIT
// Package: qospath/topology
//
// layout.go - deterministic force-directed node placement.
//
// Fruchterman–Reingold over the unit square: repulsion between every node
// pair, attraction along links, displacement capped by a cooling schedule.
// Purely presentational; consumes its own RNG so graph semantics are immune
// to layout changes.
package topology

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/qospath/core"
)

const (
	defaultLayoutIterations = 50

	// layoutEps avoids division by zero for coincident points.
	layoutEps = 1e-9
)

// springLayout computes positions in [0,1]² with iters relaxation rounds.
//
// Complexity: O(iters · V²) time, O(V) space.
func springLayout(g *core.Graph, rng *rand.Rand, iters int) Layout {
	n := g.NodeCount()
	pos := make(Layout, n)

	var i int
	for i = 0; i < n; i++ {
		pos[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	if n == 1 {
		return pos
	}

	// Ideal pairwise distance for unit area.
	k := math.Sqrt(1.0 / float64(n))
	disp := make([][2]float64, n)
	temp := 0.1 // max displacement per round, cooled linearly

	var (
		round, j int
		dx, dy   float64
		dist     float64
		force    float64
	)
	for round = 0; round < iters; round++ {
		for i = 0; i < n; i++ {
			disp[i] = [2]float64{}
		}

		// Repulsive forces: k²/d for every pair.
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				dx = pos[i][0] - pos[j][0]
				dy = pos[i][1] - pos[j][1]
				dist = math.Hypot(dx, dy) + layoutEps
				force = k * k / dist

				disp[i][0] += dx / dist * force
				disp[i][1] += dy / dist * force
				disp[j][0] -= dx / dist * force
				disp[j][1] -= dy / dist * force
			}
		}

		// Attractive forces along links: d²/k.
		for _, l := range g.Links() {
			dx = pos[l.From][0] - pos[l.To][0]
			dy = pos[l.From][1] - pos[l.To][1]
			dist = math.Hypot(dx, dy) + layoutEps
			force = dist * dist / k

			disp[l.From][0] -= dx / dist * force
			disp[l.From][1] -= dy / dist * force
			disp[l.To][0] += dx / dist * force
			disp[l.To][1] += dy / dist * force
		}

		// Apply displacements, capped at the current temperature.
		limit := temp * (1 - float64(round)/float64(iters))
		for i = 0; i < n; i++ {
			dx, dy = disp[i][0], disp[i][1]
			dist = math.Hypot(dx, dy)
			if dist > limit {
				dx = dx / dist * limit
				dy = dy / dist * limit
			}
			pos[i][0] = clamp01(pos[i][0] + dx)
			pos[i][1] = clamp01(pos[i][1] + dy)
		}
	}

	return pos
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
