// Package fitness scores candidate paths against the three QoS criteria
// under a caller-supplied weight vector.
//
// Scalarization (Weighted Sum Method): every solver minimizes
//
//	scalar = wDelay·totalDelay + wRel·reliabilityCost·ReliabilityScale + wRes·resourceCost
//
// where totalDelay is the additive link delay in ms, reliabilityCost is the
// additive log-cost Σ −ln(r) (so the multiplicative reliability metric
// composes linearly), and resourceCost is Σ ResourceNumerator/bandwidth.
//
// Scale policy (fixed, documented): per-link delay sits in 1–50 ms and
// resource cost in ~1–100, while Σ −ln(r) per link is only ~0.0001–0.1.
// ReliabilityScale = 100 lifts the reliability term into the same numeric
// range as the other two, so the weight vector keeps its intended meaning.
// Result fields always store the UNSCALED raw terms; the scale is applied
// only inside Scalar.
//
// Errors:
//
//	ErrInvalidWeight - negative weight, or all three weights zero.
//	core.ErrInvalidPath - malformed path handed to Evaluate.
package fitness

import (
	"errors"
	"fmt"
)

// Scale constants of the scalarization (see package doc).
const (
	// ReliabilityScale lifts the log-reliability cost into the numeric range
	// of the delay and resource terms.
	ReliabilityScale = 100.0

	// ResourceNumerator defines per-link resource cost as Numerator/bandwidthMbps.
	ResourceNumerator = 1000.0
)

// ErrInvalidWeight indicates a negative QoS weight or an all-zero weight
// vector. Normalization cannot repair either, so Evaluate fails instead of
// silently clamping.
var ErrInvalidWeight = errors.New("fitness: invalid QoS weight vector")

// Weights is the QoS trade-off vector. Components must be non-negative with
// at least one positive entry; Normalize rescales them to sum to exactly 1.
type Weights struct {
	Delay       float64
	Reliability float64
	Resource    float64
}

// Normalize validates w and returns a copy scaled so the components sum to 1.
// Negative components and all-zero vectors return ErrInvalidWeight.
func (w Weights) Normalize() (Weights, error) {
	if w.Delay < 0 || w.Reliability < 0 || w.Resource < 0 {
		return Weights{}, fmt.Errorf("negative component in (%g, %g, %g): %w",
			w.Delay, w.Reliability, w.Resource, ErrInvalidWeight)
	}

	sum := w.Delay + w.Reliability + w.Resource
	if sum == 0 {
		return Weights{}, fmt.Errorf("all components zero: %w", ErrInvalidWeight)
	}

	return Weights{
		Delay:       w.Delay / sum,
		Reliability: w.Reliability / sum,
		Resource:    w.Resource / sum,
	}, nil
}

// Result holds the three raw QoS terms of a path plus their weighted scalar.
// Derived data: never mutated after Evaluate returns it.
type Result struct {
	// TotalDelayMs is the sum of link delays (plus node processing delays
	// when node costs are enabled).
	TotalDelayMs float64

	// ReliabilityCost is the unscaled additive log-cost Σ −ln(r).
	ReliabilityCost float64

	// ResourceCost is Σ ResourceNumerator/bandwidthMbps over path links.
	ResourceCost float64

	// Scalar is the weighted sum minimized by every solver. Lower is better.
	Scalar float64
}

// PathReliability converts the log-cost back to the multiplicative metric:
// exp(−ReliabilityCost) ∈ (0,1].
func (r Result) PathReliability() float64 {
	return expNeg(r.ReliabilityCost)
}
