// Package ga_test verifies option validation, population seeding failures,
// elitist convergence, determinism, and the feasibility of every returned
// individual.
package ga_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
	"github.com/katalvlaran/qospath/ga"
	"github.com/katalvlaran/qospath/route"
)

// web builds a six-node graph with several 0→5 routes of distinct cost so
// crossover and mutation have material to work with.
func web(t *testing.T) *core.Graph {
	t.Helper()

	nodes := make([]core.Node, 6)
	for i := range nodes {
		nodes[i] = core.Node{ID: i, ProcDelayMs: 1, Reliability: 0.99}
	}
	mk := func(u, v int, delay, bw float64) core.Link {
		return core.Link{From: u, To: v, Type: core.Microwave, BandwidthMbps: bw, DelayMs: delay, Reliability: 0.96}
	}
	links := []core.Link{
		mk(0, 1, 3, 500),
		mk(1, 5, 3, 500), // cheap: 0→1→5, delay 6
		mk(0, 2, 5, 400),
		mk(2, 3, 5, 400),
		mk(3, 5, 5, 400), // mid: 0→2→3→5, delay 15
		mk(0, 4, 20, 50),
		mk(4, 5, 20, 50), // dear: 0→4→5, delay 40
		mk(1, 3, 4, 300), // cross-links create common intermediate nodes
		mk(2, 4, 6, 300),
	}

	g, err := core.Build(nodes, links)
	require.NoError(t, err)

	return g
}

func delayRequest() route.Request {
	return route.Request{Source: 0, Destination: 5, Weights: fitness.Weights{Delay: 1}}
}

func TestNew_OptionValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ga.Options)
		want   error
	}{
		{"population zero", func(o *ga.Options) { o.Population = 0 }, ga.ErrBadPopulation},
		{"generations zero", func(o *ga.Options) { o.Generations = 0 }, ga.ErrBadGenerations},
		{"crossover above one", func(o *ga.Options) { o.CrossoverRate = 1.1 }, ga.ErrBadRate},
		{"negative mutation", func(o *ga.Options) { o.MutationRate = -0.1 }, ga.ErrBadRate},
		{"elite equals population", func(o *ga.Options) { o.Elite = o.Population }, ga.ErrBadElite},
		{"tournament zero", func(o *ga.Options) { o.TournamentK = 0 }, ga.ErrBadTournament},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := ga.DefaultOptions()
			tc.mutate(&opts)
			_, err := ga.New(opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_FindsCheapRoute(t *testing.T) {
	g := web(t)
	opts := ga.DefaultOptions()
	opts.Seed = 42

	s, err := ga.New(opts)
	require.NoError(t, err)

	res, err := s.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	require.NoError(t, g.ValidatePath(res.Path))
	require.Equal(t, 0, res.Path[0])
	require.Equal(t, 5, res.Path[len(res.Path)-1])
	require.Equal(t, core.Path{0, 1, 5}, res.Path,
		"200 elitist generations on a 6-node graph must find the optimum")
}

func TestSolve_TraceNonIncreasing(t *testing.T) {
	g := web(t)
	opts := ga.DefaultOptions()
	opts.Seed = 7

	s, err := ga.New(opts)
	require.NoError(t, err)

	res, err := s.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	require.Len(t, res.Trace, opts.Generations)
	for i := 1; i < len(res.Trace); i++ {
		require.LessOrEqual(t, res.Trace[i], res.Trace[i-1], "elitism forbids regressions")
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g := web(t)
	opts := ga.DefaultOptions()
	opts.Seed = 13

	s1, err := ga.New(opts)
	require.NoError(t, err)
	s2, err := ga.New(opts)
	require.NoError(t, err)

	r1, err := s1.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	r2, err := s2.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)

	require.Equal(t, r1.Path, r2.Path)
	require.Equal(t, r1.Trace, r2.Trace)
}

func TestSolve_SeedingFailsUnderImpossibleDemand(t *testing.T) {
	g := web(t)
	s, err := ga.New(ga.DefaultOptions())
	require.NoError(t, err)

	req := delayRequest()
	req.DemandMbps = 5000

	_, err = s.Solve(context.Background(), g, req)
	require.ErrorIs(t, err, ga.ErrInitialPopulation)
}

// TestSolve_DemandConstrainsEvolution: a 450 Mbps demand admits only the
// 0→1→5 links, so every individual (and the answer) must use that route.
func TestSolve_DemandConstrainsEvolution(t *testing.T) {
	g := web(t)
	opts := ga.DefaultOptions()
	opts.Seed = 3
	opts.Generations = 40

	s, err := ga.New(opts)
	require.NoError(t, err)

	req := delayRequest()
	req.DemandMbps = 450

	res, err := s.Solve(context.Background(), g, req)
	require.NoError(t, err)
	require.Equal(t, core.Path{0, 1, 5}, res.Path)
}

func TestSolve_CancelledBeforeEvolution(t *testing.T) {
	g := web(t)
	s, err := ga.New(ga.DefaultOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Seeding still happens; the best seeded individual comes back unevolved.
	res, err := s.Solve(ctx, g, delayRequest())
	require.NoError(t, err)
	require.Empty(t, res.Trace)
	require.NoError(t, g.ValidatePath(res.Path))
}

func TestSolve_ProgressCallback(t *testing.T) {
	g := web(t)
	opts := ga.DefaultOptions()
	opts.Generations = 15

	var calls int
	opts.Progress = func(generation int, best float64) { calls++ }

	s, err := ga.New(opts)
	require.NoError(t, err)

	_, err = s.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	require.Equal(t, 15, calls)
}
