// Package core defines the central Graph, Node, Link, and Path types used by
// every routing solver in qospath.
//
// A Graph is built once — either by the topology generator or from externally
// imported node/link records — and is read-only afterwards. All solvers share
// one Graph instance across goroutines without synchronization because no
// method mutates it after Build returns.
//
// Node identifiers are dense integers 0..N-1, which lets adjacency, Q-tables,
// and particle priority vectors use plain slices instead of maps.
//
// Links are undirected and carry the three QoS attributes the solvers trade
// off against each other: delay (ms), reliability (0,1], and bandwidth (Mbps).
// Each link belongs to a LinkType (Fiber, Microwave, Satellite) that encodes
// the speed/reliability trade-off of the transmission medium.
//
// Errors:
//
//	ErrNoNodes        - graph needs at least one node.
//	ErrNodeOrder      - node records are not a dense 0..N-1 sequence.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrLinkEndpoint   - link references a node outside 0..N-1.
//	ErrSelfLoop       - link connects a node to itself.
//	ErrDuplicateLink  - a node pair appears more than once.
//	ErrBadReliability - reliability outside (0,1].
//	ErrBadBandwidth   - bandwidth is zero or negative.
//	ErrBadDelay       - delay is negative.
//	ErrInvalidPath    - path is too short, repeats a node, or uses a non-link pair.
package core
