// SPDX-License-Identifier: MIT
// Package: qospath/route
//
// walk.go — seeded randomized path construction and segment repair.
//
// RandomWalk is a randomized depth-first search: neighbors are shuffled per
// expansion, nodes are never revisited, and branches longer than maxLen are
// pruned. It either finds some simple src→dst path or proves none exists
// under the current demand within the length bound.
//
// Detour replaces a contiguous sub-segment of an existing path with an
// alternative sub-path between the same two endpoint nodes, found by the
// same randomized search with the rest of the path marked forbidden so the
// result stays a simple path. GA mutation and the SA neighborhood both use
// it, keeping the repair policy uniform across solvers.
package route

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qospath/core"
)

// DefaultMaxWalkLen caps randomized walk length when callers pass 0.
const DefaultMaxWalkLen = 30

// RandomWalk returns a random simple path from src to dst using only links
// that satisfy demandMbps, with at most maxLen nodes (0 ⇒ DefaultMaxWalkLen).
// rng must be non-nil; determinism follows from the rng's seed.
//
// Complexity: O(V · max degree) typical; worst case explores the stack fully.
func RandomWalk(g *core.Graph, src, dst int, demandMbps float64, rng *rand.Rand, maxLen int) (core.Path, error) {
	return walkAvoiding(g, src, dst, demandMbps, rng, maxLen, nil)
}

// Detour rebuilds path between positions i and j (0 ≤ i < j < len(path)) by
// searching an alternative sub-path from path[i] to path[j] that avoids every
// other node of path. The surviving prefix and suffix are reattached around
// the new segment. Returns ErrNoFeasiblePath when no alternative exists.
func Detour(g *core.Graph, path core.Path, i, j int, demandMbps float64, rng *rand.Rand, maxLen int) (core.Path, error) {
	if i < 0 || j >= len(path) || i >= j {
		return nil, fmt.Errorf("segment [%d,%d] of %d: %w", i, j, len(path), core.ErrInvalidPath)
	}

	// Forbid the prefix before i and the suffix after j; the replaced segment
	// interior is fair game again.
	forbidden := make(map[int]struct{}, len(path))
	for k := 0; k < i; k++ {
		forbidden[path[k]] = struct{}{}
	}
	for k := j + 1; k < len(path); k++ {
		forbidden[path[k]] = struct{}{}
	}

	segment, err := walkAvoiding(g, path[i], path[j], demandMbps, rng, maxLen, forbidden)
	if err != nil {
		return nil, err
	}

	out := make(core.Path, 0, i+len(segment)+(len(path)-j-1))
	out = append(out, path[:i]...)
	out = append(out, segment...)
	out = append(out, path[j+1:]...)

	return out, nil
}

// walkAvoiding is the shared randomized DFS. forbidden nodes are treated as
// absent from the graph (nil means no restriction).
func walkAvoiding(g *core.Graph, src, dst int, demandMbps float64, rng *rand.Rand,
	maxLen int, forbidden map[int]struct{}) (core.Path, error) {
	if !g.HasNode(src) || !g.HasNode(dst) {
		return nil, fmt.Errorf("walk %d→%d: %w", src, dst, ErrBadEndpoint)
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxWalkLen
	}

	type frame struct {
		node int
		path core.Path
	}
	stack := []frame{{node: src, path: core.Path{src}}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node == dst {
			return top.path, nil
		}
		if len(top.path) >= maxLen {
			continue
		}

		nbs, err := g.Neighbors(top.node)
		if err != nil {
			return nil, err
		}

		// Shuffle candidate order so repeated walks diversify; the shuffle is
		// the only stochastic element, so a fixed rng seed reproduces the walk.
		candidates := make([]core.Neighbor, 0, len(nbs))
		for _, nb := range nbs {
			if !Usable(nb.Link, demandMbps) {
				continue
			}
			if _, bad := forbidden[nb.To]; bad {
				continue
			}
			if containsNode(top.path, nb.To) {
				continue
			}
			candidates = append(candidates, nb)
		}
		rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})

		for _, nb := range candidates {
			next := make(core.Path, len(top.path), len(top.path)+1)
			copy(next, top.path)
			stack = append(stack, frame{node: nb.To, path: append(next, nb.To)})
		}
	}

	return nil, fmt.Errorf("walk %d→%d (demand=%g): %w", src, dst, demandMbps, ErrNoFeasiblePath)
}

// containsNode reports whether p already visits id. Paths are short (≤
// DefaultMaxWalkLen), so a linear scan beats allocating a set per frame.
func containsNode(p core.Path, id int) bool {
	for _, v := range p {
		if v == id {
			return true
		}
	}

	return false
}
