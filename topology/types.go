// SPDX-License-Identifier: MIT
// Package: qospath/topology
//
// types.go — sentinel errors, per-type QoS sampling ranges, Options and
// functional option constructors.
//
// Error policy: only package-level sentinels; callers branch with errors.Is.
// Option constructors panic on programmer error (invalid option values);
// Generate itself never panics.
package topology

import (
	"errors"

	"github.com/katalvlaran/qospath/core"
)

// Sentinel errors returned by Generate.
var (
	// ErrTooFewNodes indicates nodeCount below the allowed minimum.
	ErrTooFewNodes = errors.New("topology: node count too small")

	// ErrInvalidProbability indicates edgeProbability outside [0,1].
	ErrInvalidProbability = errors.New("topology: edge probability out of range")

	// ErrDisconnectedTopology indicates the sampled graph has more than one
	// connected component. Raise edgeProbability or change the seed.
	ErrDisconnectedTopology = errors.New("topology: generated graph is disconnected")

	// ErrBadTypeMix indicates link-type mix weights that are negative or all zero.
	ErrBadTypeMix = errors.New("topology: invalid link-type mix")
)

// Per-type QoS sampling ranges. The bounds are chosen so that type ranges
// never overlap against the speed/reliability trade-off ordering.
const (
	FiberBandwidthMin = 800.0
	FiberBandwidthMax = 1000.0
	FiberDelayMin     = 1.0
	FiberDelayMax     = 5.0
	FiberRelMin       = 0.90
	FiberRelMax       = 0.95

	MicrowaveBandwidthMin = 300.0
	MicrowaveBandwidthMax = 600.0
	MicrowaveDelayMin     = 5.0
	MicrowaveDelayMax     = 10.0
	MicrowaveRelMin       = 0.95
	MicrowaveRelMax       = 0.98

	SatelliteBandwidthMin = 10.0
	SatelliteBandwidthMax = 100.0
	SatelliteDelayMin     = 20.0
	SatelliteDelayMax     = 50.0
	SatelliteRelMin       = 0.99
	SatelliteRelMax       = 0.9999
)

// Per-node attribute ranges (processing delay and node reliability).
const (
	NodeProcDelayMin = 0.5
	NodeProcDelayMax = 2.0
	NodeRelMin       = 0.95
	NodeRelMax       = 0.999
)

const minNodes = 1

// Options configures Generate.
//
// Seed    – RNG seed for the whole generation stream. Zero (the default)
//           means "non-reproducible": Generate derives a one-off seed.
// TypeMix – relative weights for drawing fiber/microwave/satellite link
//           types, indexed by core.LinkType. Defaults to a uniform mix.
// LayoutIterations – force-directed placement rounds (visual quality knob;
//           never affects the graph itself).
type Options struct {
	Seed             int64
	seeded           bool
	TypeMix          [3]float64
	LayoutIterations int
}

// Option is a functional option for Generate.
type Option func(*Options)

// WithSeed fixes the generation seed, making the topology bit-reproducible
// across runs and platforms for identical (nodeCount, edgeProbability, seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seeded = true
	}
}

// WithTypeMix sets relative draw weights for the three link types, in
// core.LinkType order (fiber, microwave, satellite). Weights must be
// non-negative with a positive sum; violations surface as ErrBadTypeMix.
func WithTypeMix(fiber, microwave, satellite float64) Option {
	return func(o *Options) {
		o.TypeMix = [3]float64{fiber, microwave, satellite}
	}
}

// WithLayoutIterations overrides the number of force-directed layout rounds.
// Panics on non-positive values (programmer error, per option policy).
func WithLayoutIterations(n int) Option {
	if n <= 0 {
		panic("topology: layout iterations must be positive")
	}

	return func(o *Options) { o.LayoutIterations = n }
}

// DefaultOptions returns deterministic defaults: unseeded (non-reproducible),
// uniform type mix, 50 layout rounds.
func DefaultOptions() Options {
	return Options{
		TypeMix:          [3]float64{1, 1, 1},
		LayoutIterations: defaultLayoutIterations,
	}
}

// Layout holds a 2D coordinate per node, indexed by node ID. Presentation
// only — solvers never read it.
type Layout [][2]float64

// typeRanges bundles the sampling bounds of one link type.
type typeRanges struct {
	bwMin, bwMax   float64
	delMin, delMax float64
	relMin, relMax float64
}

// rangesFor returns the sampling bounds for t.
func rangesFor(t core.LinkType) typeRanges {
	switch t {
	case core.Fiber:
		return typeRanges{FiberBandwidthMin, FiberBandwidthMax, FiberDelayMin, FiberDelayMax, FiberRelMin, FiberRelMax}
	case core.Microwave:
		return typeRanges{MicrowaveBandwidthMin, MicrowaveBandwidthMax, MicrowaveDelayMin, MicrowaveDelayMax, MicrowaveRelMin, MicrowaveRelMax}
	default:
		return typeRanges{SatelliteBandwidthMin, SatelliteBandwidthMax, SatelliteDelayMin, SatelliteDelayMax, SatelliteRelMin, SatelliteRelMax}
	}
}
