// This file declares the Node, Link, LinkType, Graph, and Path types,
// sentinel errors, and the Build constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and path validation.
var (
	// ErrNoNodes indicates that Build was called with an empty node set.
	ErrNoNodes = errors.New("core: graph needs at least one node")

	// ErrNodeOrder indicates node records whose IDs are not exactly 0..N-1 in order.
	ErrNodeOrder = errors.New("core: node IDs must be a dense 0..N-1 sequence")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkEndpoint indicates a link endpoint outside the node ID range.
	ErrLinkEndpoint = errors.New("core: link endpoint out of range")

	// ErrSelfLoop indicates a link from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateLink indicates two links over the same unordered node pair.
	ErrDuplicateLink = errors.New("core: duplicate link")

	// ErrBadReliability indicates a reliability value outside (0,1].
	ErrBadReliability = errors.New("core: reliability must be in (0,1]")

	// ErrBadBandwidth indicates a non-positive bandwidth.
	ErrBadBandwidth = errors.New("core: bandwidth must be positive")

	// ErrBadDelay indicates a negative delay.
	ErrBadDelay = errors.New("core: delay must be non-negative")

	// ErrInvalidPath indicates a malformed path: fewer than two nodes, a
	// repeated node, or a consecutive pair that is not an existing link.
	ErrInvalidPath = errors.New("core: invalid path")
)

// LinkType categorizes the transmission medium of a Link. The type fixes the
// sampling ranges of the link's QoS attributes and encodes the inherent
// trade-off: faster media are less reliable.
type LinkType int

const (
	// Fiber: highest bandwidth, lowest delay, lowest reliability.
	Fiber LinkType = iota

	// Microwave: mid-range bandwidth, delay, and reliability.
	Microwave

	// Satellite: lowest bandwidth, highest delay, highest reliability.
	Satellite

	numLinkTypes = 3
)

// String returns the lowercase medium name, or "unknown" for out-of-range values.
func (t LinkType) String() string {
	switch t {
	case Fiber:
		return "fiber"
	case Microwave:
		return "microwave"
	case Satellite:
		return "satellite"
	default:
		return "unknown"
	}
}

// Node is a network vertex. ProcDelayMs and Reliability describe the node's
// own processing cost; they participate in fitness only when the evaluator is
// configured to include node costs.
type Node struct {
	// ID is the dense integer identifier, 0..N-1.
	ID int

	// ProcDelayMs is the per-hop processing delay contributed by this node.
	ProcDelayMs float64

	// Reliability of the node itself, in (0,1].
	Reliability float64
}

// Link is an undirected edge between two nodes with QoS attributes drawn from
// its LinkType's range.
type Link struct {
	// From and To are the endpoint node IDs. Order carries no meaning.
	From int
	To   int

	// Type is the transmission medium category.
	Type LinkType

	// BandwidthMbps is the link capacity.
	BandwidthMbps float64

	// DelayMs is the propagation delay.
	DelayMs float64

	// Reliability is the probability the link works, in (0,1].
	Reliability float64
}

// Neighbor pairs an adjacent node ID with the connecting link.
type Neighbor struct {
	// To is the adjacent node ID.
	To int

	// Link is the connecting link (a copy; Graph stays immutable).
	Link Link
}

// Path is an ordered sequence of distinct node IDs. A valid path has at least
// two nodes and an existing link between every consecutive pair.
type Path []int

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	c := make(Path, len(p))
	copy(c, p)

	return c
}

// Graph is the immutable in-memory network topology.
type Graph struct {
	nodes []Node
	links []Link

	// adj[u] lists the neighbors of u; built once in Build, read-only after.
	adj [][]Neighbor
}

// Build validates node and link records and assembles an immutable Graph.
// Records may come from the topology generator or from an external importer;
// both enter through this single constructor.
//
// Validation order: node set shape, per-node attributes, then per-link
// endpoints, self-loops, duplicates, and attribute ranges. The first
// violation is returned wrapped with the offending record's identity.
//
// Complexity: O(V + E) time and space.
func Build(nodes []Node, links []Link) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	n := len(nodes)
	for i, nd := range nodes {
		if nd.ID != i {
			return nil, fmt.Errorf("record %d has ID %d: %w", i, nd.ID, ErrNodeOrder)
		}
		if nd.Reliability <= 0 || nd.Reliability > 1 {
			return nil, fmt.Errorf("node %d reliability=%g: %w", i, nd.Reliability, ErrBadReliability)
		}
		if nd.ProcDelayMs < 0 {
			return nil, fmt.Errorf("node %d procDelay=%g: %w", i, nd.ProcDelayMs, ErrBadDelay)
		}
	}

	g := &Graph{
		nodes: make([]Node, n),
		links: make([]Link, 0, len(links)),
		adj:   make([][]Neighbor, n),
	}
	copy(g.nodes, nodes)

	// seen tracks unordered pairs to reject parallel links.
	seen := make(map[[2]int]struct{}, len(links))

	var l Link
	for _, l = range links {
		if l.From < 0 || l.From >= n || l.To < 0 || l.To >= n {
			return nil, fmt.Errorf("link %d—%d: %w", l.From, l.To, ErrLinkEndpoint)
		}
		if l.From == l.To {
			return nil, fmt.Errorf("link %d—%d: %w", l.From, l.To, ErrSelfLoop)
		}

		key := orderedPair(l.From, l.To)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("link %d—%d: %w", l.From, l.To, ErrDuplicateLink)
		}
		seen[key] = struct{}{}

		if l.Reliability <= 0 || l.Reliability > 1 {
			return nil, fmt.Errorf("link %d—%d reliability=%g: %w", l.From, l.To, l.Reliability, ErrBadReliability)
		}
		if l.BandwidthMbps <= 0 {
			return nil, fmt.Errorf("link %d—%d bandwidth=%g: %w", l.From, l.To, l.BandwidthMbps, ErrBadBandwidth)
		}
		if l.DelayMs < 0 {
			return nil, fmt.Errorf("link %d—%d delay=%g: %w", l.From, l.To, l.DelayMs, ErrBadDelay)
		}

		g.links = append(g.links, l)
		g.adj[l.From] = append(g.adj[l.From], Neighbor{To: l.To, Link: l})
		g.adj[l.To] = append(g.adj[l.To], Neighbor{To: l.From, Link: l})
	}

	return g, nil
}

// orderedPair returns the unordered pair {u,v} in canonical (min,max) order.
func orderedPair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
