// Package qospath finds QoS-optimal routes in randomly generated multi-link
// network topologies, and compares the search algorithms that find them.
//
// 🚀 What is qospath?
//
//	A deterministic, seed-reproducible toolkit that brings together:
//		• Topology generation: Erdős–Rényi graphs with trade-off-correlated
//		  link attributes (fiber, microwave, satellite)
//		• A composite fitness function scalarizing delay, reliability and
//		  resource consumption under tunable weights
//		• Five path searchers: Dijkstra (exact baseline), Q-Learning, PSO,
//		  a genetic algorithm, and simulated annealing
//		• A comparison harness running solvers side by side on a worker
//		  pool, with TOML benchmark scenarios
//
// ✨ Why choose qospath?
//
//   - Reproducible – every stochastic component is seeded; identical seeds
//     yield identical topologies and identical search trajectories
//   - Uniform contract – every solver implements the same route.Solver
//     interface and the same failure semantics
//   - Honest comparisons – all solvers score candidates with the exact same
//     fitness evaluation, so reported numbers are directly comparable
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/     — immutable Graph, Node, Link, Path primitives and validation
//	topology/ — seeded random topology generation + spring layout
//	fitness/  — weight normalization and composite path evaluation
//	route/    — the shared solver contract, priority decoding, random walks
//	dijkstra/ — exact shortest path under the composite link cost
//	qlearn/   — tabular Q-Learning over (node, next-hop) actions
//	pso/      — particle swarm over node-priority vectors
//	ga/       — path-native genetic algorithm (splice crossover, detours)
//	sa/       — simulated annealing with Metropolis acceptance
//	compare/  — concurrent multi-solver runs and TOML scenarios
//
// Quick ASCII example:
//
//	    0═══1        ═ fiber       (high bw, low delay)
//	    │   ║        ─ microwave   (moderate everything)
//	    2┄┄┄3        ┄ satellite   (low bw, high delay, high reliability)
//
//	Four candidate routes 0→3 trade delay against reliability against
//	bandwidth headroom; the weight vector decides which one wins.
//
//	go get github.com/katalvlaran/qospath
package qospath
