// Package topology_test verifies parameter validation, seed reproducibility,
// the per-type attribute trade-off, the connectivity invariant, and the
// layout contract.
package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/topology"
)

func TestGenerate_ParameterValidation(t *testing.T) {
	_, _, err := topology.Generate(0, 0.5)
	require.ErrorIs(t, err, topology.ErrTooFewNodes)

	_, _, err = topology.Generate(5, -0.1)
	require.ErrorIs(t, err, topology.ErrInvalidProbability)

	_, _, err = topology.Generate(5, 1.1)
	require.ErrorIs(t, err, topology.ErrInvalidProbability)

	_, _, err = topology.Generate(5, 0.5, topology.WithTypeMix(-1, 1, 1))
	require.ErrorIs(t, err, topology.ErrBadTypeMix)

	_, _, err = topology.Generate(5, 0.5, topology.WithTypeMix(0, 0, 0))
	require.ErrorIs(t, err, topology.ErrBadTypeMix)
}

func TestGenerate_SeedReproducibility(t *testing.T) {
	g1, l1, err := topology.Generate(12, 1.0, topology.WithSeed(42))
	require.NoError(t, err)
	g2, l2, err := topology.Generate(12, 1.0, topology.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, g1.Links(), g2.Links(), "same seed must yield identical links")
	require.Equal(t, g1.Nodes(), g2.Nodes(), "same seed must yield identical node attributes")
	require.Equal(t, l1, l2, "same seed must yield identical layouts")

	g3, _, err := topology.Generate(12, 1.0, topology.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, g1.Links(), g3.Links(), "different seeds should diverge")
}

func TestGenerate_DisconnectedFails(t *testing.T) {
	// p=0 over two nodes cannot produce any link, so generation must refuse
	// the draw instead of repairing it.
	_, _, err := topology.Generate(2, 0, topology.WithSeed(1))
	require.ErrorIs(t, err, topology.ErrDisconnectedTopology)
}

func TestGenerate_CompleteGraphConnected(t *testing.T) {
	g, _, err := topology.Generate(10, 1.0, topology.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 10, g.NodeCount())
	require.Equal(t, 45, g.LinkCount(), "p=1 over 10 nodes is the complete graph")
}

// TestGenerate_TradeOffRanges checks that every sampled attribute lands in
// the range dictated by its link type, which is what encodes the
// speed/reliability trade-off.
func TestGenerate_TradeOffRanges(t *testing.T) {
	g, _, err := topology.Generate(20, 1.0, topology.WithSeed(11))
	require.NoError(t, err)

	for _, l := range g.Links() {
		switch l.Type {
		case core.Fiber:
			require.GreaterOrEqual(t, l.BandwidthMbps, topology.FiberBandwidthMin)
			require.Less(t, l.BandwidthMbps, topology.FiberBandwidthMax)
			require.GreaterOrEqual(t, l.DelayMs, topology.FiberDelayMin)
			require.Less(t, l.DelayMs, topology.FiberDelayMax)
			require.GreaterOrEqual(t, l.Reliability, topology.FiberRelMin)
			require.Less(t, l.Reliability, topology.FiberRelMax)
		case core.Microwave:
			require.GreaterOrEqual(t, l.BandwidthMbps, topology.MicrowaveBandwidthMin)
			require.Less(t, l.BandwidthMbps, topology.MicrowaveBandwidthMax)
			require.GreaterOrEqual(t, l.DelayMs, topology.MicrowaveDelayMin)
			require.Less(t, l.DelayMs, topology.MicrowaveDelayMax)
			require.GreaterOrEqual(t, l.Reliability, topology.MicrowaveRelMin)
			require.Less(t, l.Reliability, topology.MicrowaveRelMax)
		case core.Satellite:
			require.GreaterOrEqual(t, l.BandwidthMbps, topology.SatelliteBandwidthMin)
			require.Less(t, l.BandwidthMbps, topology.SatelliteBandwidthMax)
			require.GreaterOrEqual(t, l.DelayMs, topology.SatelliteDelayMin)
			require.Less(t, l.DelayMs, topology.SatelliteDelayMax)
			require.GreaterOrEqual(t, l.Reliability, topology.SatelliteRelMin)
			require.Less(t, l.Reliability, topology.SatelliteRelMax)
		default:
			t.Fatalf("unexpected link type %v", l.Type)
		}
	}
}

func TestGenerate_NodeAttributeRanges(t *testing.T) {
	g, _, err := topology.Generate(20, 1.0, topology.WithSeed(11))
	require.NoError(t, err)

	for _, n := range g.Nodes() {
		require.GreaterOrEqual(t, n.ProcDelayMs, topology.NodeProcDelayMin)
		require.Less(t, n.ProcDelayMs, topology.NodeProcDelayMax)
		require.GreaterOrEqual(t, n.Reliability, topology.NodeRelMin)
		require.Less(t, n.Reliability, topology.NodeRelMax)
	}
}

func TestGenerate_TypeMixForcesSingleType(t *testing.T) {
	g, _, err := topology.Generate(8, 1.0, topology.WithSeed(3), topology.WithTypeMix(0, 0, 1))
	require.NoError(t, err)

	for _, l := range g.Links() {
		require.Equal(t, core.Satellite, l.Type)
	}
}

func TestGenerate_LayoutContract(t *testing.T) {
	g, layout, err := topology.Generate(9, 1.0, topology.WithSeed(5), topology.WithLayoutIterations(20))
	require.NoError(t, err)
	require.Len(t, layout, g.NodeCount())

	for _, pos := range layout {
		require.GreaterOrEqual(t, pos[0], 0.0)
		require.LessOrEqual(t, pos[0], 1.0)
		require.GreaterOrEqual(t, pos[1], 0.0)
		require.LessOrEqual(t, pos[1], 1.0)
	}
}

func TestRNGFromSeed_ZeroMapsToDefault(t *testing.T) {
	a := topology.RNGFromSeed(0)
	b := topology.RNGFromSeed(topology.DefaultSeed)
	require.Equal(t, a.Float64(), b.Float64(), "seed 0 must alias DefaultSeed")
}

func TestDeriveSeed_IndependentStreams(t *testing.T) {
	s1 := topology.DeriveSeed(42, 1)
	s2 := topology.DeriveSeed(42, 2)
	require.NotEqual(t, s1, s2)
	require.NotEqual(t, int64(42), s1, "substream must not alias the parent")
	require.Equal(t, s1, topology.DeriveSeed(42, 1), "derivation is deterministic")
}
