// Package sa_test verifies option validation, improvement over the initial
// walk, determinism, Metropolis bookkeeping (best never regresses), and
// failure semantics when no initial walk exists.
package sa_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/fitness"
	"github.com/katalvlaran/qospath/route"
	"github.com/katalvlaran/qospath/sa"
)

// web builds a six-node graph with several 0→5 routes of distinct cost.
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
		mk(1, 5, 3, 500),
		mk(0, 2, 5, 400),
		mk(2, 3, 5, 400),
		mk(3, 5, 5, 400),
		mk(0, 4, 20, 50),
		mk(4, 5, 20, 50),
		mk(1, 3, 4, 300),
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
		mutate func(*sa.Options)
		want   error
	}{
		{"temperature zero", func(o *sa.Options) { o.InitialTemp = 0 }, sa.ErrBadTemperature},
		{"cooling zero", func(o *sa.Options) { o.CoolingRate = 0 }, sa.ErrBadCoolingRate},
		{"cooling one", func(o *sa.Options) { o.CoolingRate = 1 }, sa.ErrBadCoolingRate},
		{"iterations zero", func(o *sa.Options) { o.Iterations = 0 }, sa.ErrBadIterations},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := sa.DefaultOptions()
			tc.mutate(&opts)
			_, err := sa.New(opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_FindsValidRoute(t *testing.T) {
	g := web(t)
	opts := sa.DefaultOptions()
	opts.Seed = 42

	s, err := sa.New(opts)
	require.NoError(t, err)

	res, err := s.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	require.NoError(t, g.ValidatePath(res.Path))
	require.Equal(t, 0, res.Path[0])
	require.Equal(t, 5, res.Path[len(res.Path)-1])
	require.Len(t, res.Trace, opts.Iterations)
}

// TestSolve_ReturnsBestEncountered: the best-so-far trace never rises, and
// the reported fitness equals its final value even if late iterations
// accepted worse states.
func TestSolve_ReturnsBestEncountered(t *testing.T) {
	g := web(t)
	opts := sa.DefaultOptions()
	opts.Seed = 7

	s, err := sa.New(opts)
	require.NoError(t, err)

	res, err := s.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	for i := 1; i < len(res.Trace); i++ {
		require.LessOrEqual(t, res.Trace[i], res.Trace[i-1])
	}
	require.InDelta(t, res.Trace[len(res.Trace)-1], res.Fitness.Scalar, 1e-9)
}

func TestSolve_Deterministic(t *testing.T) {
	g := web(t)
	opts := sa.DefaultOptions()
	opts.Seed = 19

	s1, err := sa.New(opts)
	require.NoError(t, err)
	s2, err := sa.New(opts)
	require.NoError(t, err)

	r1, err := s1.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	r2, err := s2.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)

	require.Equal(t, r1.Path, r2.Path)
	require.Equal(t, r1.Trace, r2.Trace)
}

func TestSolve_InfeasibleDemand(t *testing.T) {
	g := web(t)
	s, err := sa.New(sa.DefaultOptions())
	require.NoError(t, err)

	req := delayRequest()
	req.DemandMbps = 5000

	_, err = s.Solve(context.Background(), g, req)
	require.ErrorIs(t, err, route.ErrNoFeasiblePath)
}

func TestSolve_CancelledBeforeAnnealing(t *testing.T) {
	g := web(t)
	s, err := sa.New(sa.DefaultOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The initial walk still runs; it comes back unimproved.
	res, err := s.Solve(ctx, g, delayRequest())
	require.NoError(t, err)
	require.Empty(t, res.Trace)
	require.NoError(t, g.ValidatePath(res.Path))
}

func TestSolve_ProgressCallback(t *testing.T) {
	g := web(t)
	opts := sa.DefaultOptions()
	opts.Iterations = 21

	var calls int
	opts.Progress = func(iteration int, best float64) { calls++ }

	s, err := sa.New(opts)
	require.NoError(t, err)

	_, err = s.Solve(context.Background(), g, delayRequest())
	require.NoError(t, err)
	require.Equal(t, 21, calls)
}
