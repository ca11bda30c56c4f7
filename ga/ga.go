// ga.go — population seeding, evolution loop, and the path-native operators.
package ga

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
	"github.com/katalvlaran/qospath/route"
	"github.com/katalvlaran/qospath/topology"
)

// SolverName identifies the algorithm in comparison tables.
const SolverName = "ga"

// progressLogEvery throttles logger output to one line per N generations.
const progressLogEvery = 50

// Solver runs the genetic algorithm with a validated configuration.
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

// individual pairs a feasible path with its cached scalar fitness.
type individual struct {
	path  core.Path
	score float64
}

// Solve evolves the population for opts.Generations rounds and returns the
// best individual ever seen. Elitism makes the per-generation best trace
// non-increasing. Cancellation between generations returns the best-so-far.
//
// Complexity: O(Generations · Population · (V + walk cost)) time.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, req route.Request) (route.Result, error) {
	if err := req.Validate(g); err != nil {
		return route.Result{}, err
	}

	rng := topology.RNGFromSeed(s.opts.Seed)

	pop, err := s.seedPopulation(g, req, rng)
	if err != nil {
		return route.Result{}, err
	}
	s.scoreAll(g, req, pop)
	sortByScore(pop)

	best := clone(pop[0])
	trace := make([]float64, 0, s.opts.Generations)

	var gen int
	for gen = 0; gen < s.opts.Generations; gen++ {
		if ctx.Err() != nil {
			break // cooperative cancellation: report best-so-far
		}

		pop = s.nextGeneration(g, req, pop, rng)
		sortByScore(pop)

		if pop[0].score < best.score {
			best = clone(pop[0])
		}

		trace = append(trace, best.score)
		if s.opts.Progress != nil {
			s.opts.Progress(gen, best.score)
		}
		if s.opts.Logger != nil && (gen+1)%progressLogEvery == 0 {
			s.opts.Logger.WithField("generation", gen+1).
				WithField("best", best.score).Debug("ga evolution")
		}
	}

	fit, err := fitness.Evaluate(g, best.path, req.Weights)
	if err != nil {
		return route.Result{}, err
	}

	return route.Result{Path: best.path, Fitness: fit, Trace: trace}, nil
}

// seedPopulation fills the initial population with unique randomized walks.
// Fewer than Population unique paths is tolerated; zero is ErrInitialPopulation.
func (s *Solver) seedPopulation(g *core.Graph, req route.Request, rng *rand.Rand) ([]individual, error) {
	var (
		pop      []individual
		attempts = s.opts.Population * seedAttemptsPerSlot
		a        int
	)
	for a = 0; a < attempts && len(pop) < s.opts.Population; a++ {
		path, err := route.RandomWalk(g, req.Source, req.Destination, req.DemandMbps, rng, s.opts.MaxWalkLen)
		if err != nil {
			continue
		}
		if containsPath(pop, path) {
			continue
		}
		pop = append(pop, individual{path: path})
	}

	if len(pop) == 0 {
		return nil, fmt.Errorf("%d seeding attempts (demand=%g): %w",
			attempts, req.DemandMbps, ErrInitialPopulation)
	}

	return pop, nil
}

// nextGeneration applies elitism, tournament selection, crossover, and
// mutation to produce a same-size population of feasible individuals.
func (s *Solver) nextGeneration(g *core.Graph, req route.Request, pop []individual, rng *rand.Rand) []individual {
	next := make([]individual, 0, s.opts.Population)

	// Elitism first: the best survivors are copied verbatim.
	elite := s.opts.Elite
	if elite > len(pop) {
		elite = len(pop)
	}
	for i := 0; i < elite; i++ {
		next = append(next, clone(pop[i]))
	}

	for len(next) < s.opts.Population {
		p1 := s.tournament(pop, rng)
		p2 := s.tournament(pop, rng)

		child := s.offspring(g, req, p1, p2, rng)

		if rng.Float64() < s.opts.MutationRate {
			if mutated, ok := s.mutate(g, req, child.path, rng); ok {
				child = individual{path: mutated, score: s.score(g, req, mutated)}
			}
		}

		next = append(next, child)
	}

	return next
}

// offspring produces one child: crossover with probability CrossoverRate,
// otherwise a copy of the fitter parent. Any infeasible crossover outcome
// also falls back to the fitter parent.
func (s *Solver) offspring(g *core.Graph, req route.Request, p1, p2 individual, rng *rand.Rand) individual {
	fitter := p1
	if p2.score < p1.score {
		fitter = p2
	}
	if rng.Float64() >= s.opts.CrossoverRate {
		return clone(fitter)
	}

	child, ok := s.crossover(g, req, p1.path, p2.path, rng)
	if !ok {
		return clone(fitter)
	}

	return individual{path: child, score: s.score(g, req, child)}
}

// crossover splices the parents at a random common intermediate node. The
// spliced sequence may revisit nodes, so cycles are cut before validation.
// Without a common node it falls back to a raw index cut on p1 repaired by a
// randomized walk to the destination.
func (s *Solver) crossover(g *core.Graph, req route.Request, p1, p2 core.Path, rng *rand.Rand) (core.Path, bool) {
	common := commonInterior(p1, p2)
	if len(common) > 0 {
		node := common[rng.Intn(len(common))]
		i1 := indexOf(p1, node)
		i2 := indexOf(p2, node)

		child := make(core.Path, 0, i1+1+len(p2)-i2-1)
		child = append(child, p1[:i1+1]...)
		child = append(child, p2[i2+1:]...)
		child = cutCycles(child)

		if g.ValidatePath(child) == nil {
			return child, true
		}
	}

	// Raw cut: keep a random p1 prefix, re-walk from its last node to the
	// destination avoiding the prefix.
	if len(p1) > 2 {
		cut := 1 + rng.Intn(len(p1)-2)
		if repaired, err := route.Detour(g, p1, cut, len(p1)-1, req.DemandMbps, rng, s.opts.MaxWalkLen); err == nil {
			return repaired, true
		}
	}

	return nil, false
}

// mutate replaces a random sub-segment of path with an alternative detour.
func (s *Solver) mutate(g *core.Graph, req route.Request, path core.Path, rng *rand.Rand) (core.Path, bool) {
	if len(path) < 3 {
		return nil, false
	}

	i := rng.Intn(len(path) - 1)
	j := i + 1 + rng.Intn(len(path)-i-1)

	mutated, err := route.Detour(g, path, i, j, req.DemandMbps, rng, s.opts.MaxWalkLen)
	if err != nil {
		return nil, false
	}

	return mutated, true
}

// tournament returns the fittest of TournamentK uniformly drawn individuals.
func (s *Solver) tournament(pop []individual, rng *rand.Rand) individual {
	best := pop[rng.Intn(len(pop))]

	var i int
	for i = 1; i < s.opts.TournamentK; i++ {
		c := pop[rng.Intn(len(pop))]
		if c.score < best.score {
			best = c
		}
	}

	return best
}

// score evaluates one path; infeasible (should not happen for GA-produced
// paths) maps to +Inf so it sorts last.
func (s *Solver) score(g *core.Graph, req route.Request, path core.Path) float64 {
	fit, err := fitness.Evaluate(g, path, req.Weights)
	if err != nil {
		return math.Inf(1)
	}

	return fit.Scalar
}

// scoreAll fills the cached score of every individual.
func (s *Solver) scoreAll(g *core.Graph, req route.Request, pop []individual) {
	for i := range pop {
		pop[i].score = s.score(g, req, pop[i].path)
	}
}

// sortByScore orders ascending by scalar fitness (best first), stably so
// equal-fitness individuals keep a deterministic order.
func sortByScore(pop []individual) {
	sort.SliceStable(pop, func(a, b int) bool { return pop[a].score < pop[b].score })
}

// cutCycles removes loops from a spliced sequence: whenever a node repeats,
// everything between its first occurrence and the repeat is dropped. The
// surviving consecutive pairs all existed in the input sequence, so edge
// validity is preserved.
func cutCycles(p core.Path) core.Path {
	pos := make(map[int]int, len(p))
	out := make(core.Path, 0, len(p))

	for _, node := range p {
		if at, seen := pos[node]; seen {
			// Drop the loop: rewind to the first occurrence.
			for _, cut := range out[at+1:] {
				delete(pos, cut)
			}
			out = out[:at+1]

			continue
		}
		pos[node] = len(out)
		out = append(out, node)
	}

	return out
}

// commonInterior lists nodes shared by both paths' interiors (endpoints excluded).
func commonInterior(p1, p2 core.Path) []int {
	if len(p1) < 3 || len(p2) < 3 {
		return nil
	}

	in2 := make(map[int]struct{}, len(p2)-2)
	for _, n := range p2[1 : len(p2)-1] {
		in2[n] = struct{}{}
	}

	var out []int
	for _, n := range p1[1 : len(p1)-1] {
		if _, ok := in2[n]; ok {
			out = append(out, n)
		}
	}

	return out
}

// indexOf returns the position of node in p, or -1.
func indexOf(p core.Path, node int) int {
	for i, v := range p {
		if v == node {
			return i
		}
	}

	return -1
}

// containsPath reports whether pop already holds an identical path.
func containsPath(pop []individual, path core.Path) bool {
	for _, ind := range pop {
		if equalPaths(ind.path, path) {
			return true
		}
	}

	return false
}

func equalPaths(a, b core.Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// clone deep-copies an individual so elitism never aliases live paths.
func clone(ind individual) individual {
	return individual{path: ind.path.Clone(), score: ind.score}
}
