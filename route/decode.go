// SPDX-License-Identifier: MIT
// Package: qospath/route
//
// decode.go — priority-vector decoding for swarm/evolutionary candidates.
//
// A candidate position assigns one continuous priority per node. Decoding
// walks greedily from the source: at every step it moves to the unvisited,
// demand-satisfying neighbor with the highest priority. A dead end before
// the destination means the candidate does not encode a feasible path.
//
// Complexity: O(V · max degree) time, O(V) space.
package route

import (
	"fmt"

	"github.com/katalvlaran/qospath/core"
)

// DecodePriorities converts a node-priority vector into a simple path from
// src to dst. len(prio) must equal g.NodeCount(); priorities are compared
// with plain > so ties resolve to the lowest adjacency index, keeping the
// decode deterministic for a fixed vector.
//
// Returns ErrNoFeasiblePath when the greedy walk dead-ends.
func DecodePriorities(g *core.Graph, src, dst int, prio []float64, demandMbps float64) (core.Path, error) {
	if len(prio) != g.NodeCount() {
		return nil, fmt.Errorf("priority length %d != %d nodes: %w",
			len(prio), g.NodeCount(), core.ErrInvalidPath)
	}

	visited := make([]bool, g.NodeCount())
	visited[src] = true

	path := core.Path{src}
	current := src

	for current != dst {
		nbs, err := g.Neighbors(current)
		if err != nil {
			return nil, err
		}

		next := -1
		best := 0.0
		for _, nb := range nbs {
			if visited[nb.To] || !Usable(nb.Link, demandMbps) {
				continue
			}
			if next == -1 || prio[nb.To] > best {
				next = nb.To
				best = prio[nb.To]
			}
		}

		if next == -1 {
			return nil, fmt.Errorf("dead end at node %d after %d hops: %w",
				current, len(path)-1, ErrNoFeasiblePath)
		}

		visited[next] = true
		path = append(path, next)
		current = next
	}

	return path, nil
}
