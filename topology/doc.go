// SPDX-License-Identifier: MIT
// Package: qospath/topology
//
// Package topology generates reproducible random network topologies whose
// links carry trade-off-correlated QoS attributes.
//
// Model: Erdős–Rényi — every unordered node pair {i,j} with i<j is included
// independently with probability p. Each included link is assigned a medium
// type (fiber / microwave / satellite) and per-type uniform draws for
// bandwidth, delay, and reliability. The per-type ranges never overlap in the
// wrong direction, so across types the trade-off ordering always holds:
//
//	delay:       fiber < microwave < satellite
//	reliability: fiber ≤ microwave ≤ satellite
//	bandwidth:   fiber > microwave > satellite
//
// Determinism: a fixed (nodeCount, edgeProbability, seed) triple yields a
// bit-identical graph. The seeded stream is consumed in one documented order:
// first the two node attributes for i=0..n-1, then per pair {i<j} one
// Bernoulli trial and — for included pairs only — type, bandwidth, delay,
// reliability in that order. Layout positions come from an independent
// substream, so visualization can never perturb solver inputs.
//
// Connectivity policy: generation FAILS with ErrDisconnectedTopology when the
// sampled graph is not connected. Silent bridge-edge injection would keep the
// advertised edge-probability semantics only approximately and would make the
// edge set depend on the repair heuristic; the documented remedy is to raise
// edgeProbability (or change the seed).
package topology
