// Read-side accessors of Graph. None of these mutate state; the shared-slice
// returns are documented as read-only views so hot solver loops avoid copies.
package core

import "fmt"

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of links.
// Complexity: O(1)
func (g *Graph) LinkCount() int { return len(g.links) }

// HasNode reports whether id is a valid node identifier.
// Complexity: O(1)
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < len(g.nodes) }

// Node returns the node record for id.
// Complexity: O(1)
func (g *Graph) Node(id int) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("id=%d: %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// Nodes returns a copy of all node records in ID order.
// Complexity: O(V)
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Links returns a copy of all link records in insertion order.
// Complexity: O(E)
func (g *Graph) Links() []Link {
	out := make([]Link, len(g.links))
	copy(out, g.links)

	return out
}

// Neighbors returns the adjacency list of id as a shared read-only view.
// Callers MUST NOT modify the returned slice; it is the Graph's internal
// storage, exposed without copying because solver inner loops call this for
// every step of every episode/iteration.
// Complexity: O(1)
func (g *Graph) Neighbors(id int) ([]Neighbor, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("id=%d: %w", id, ErrNodeNotFound)
	}

	return g.adj[id], nil
}

// Degree returns the number of links incident to id.
// Complexity: O(1)
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("id=%d: %w", id, ErrNodeNotFound)
	}

	return len(g.adj[id]), nil
}

// LinkBetween returns the link connecting u and v, if one exists.
// Complexity: O(deg(u))
func (g *Graph) LinkBetween(u, v int) (Link, bool) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return Link{}, false
	}
	for _, nb := range g.adj[u] {
		if nb.To == v {
			return nb.Link, true
		}
	}

	return Link{}, false
}

// ValidatePath checks that p is a simple source→destination path: at least
// two nodes, all nodes distinct and present, and every consecutive pair an
// existing link. Violations return ErrInvalidPath wrapped with the reason.
// Complexity: O(len(p) · max degree)
func (g *Graph) ValidatePath(p Path) error {
	if len(p) < 2 {
		return fmt.Errorf("length %d < 2: %w", len(p), ErrInvalidPath)
	}

	visited := make(map[int]struct{}, len(p))
	for i, id := range p {
		if !g.HasNode(id) {
			return fmt.Errorf("node %d not in graph: %w", id, ErrInvalidPath)
		}
		if _, dup := visited[id]; dup {
			return fmt.Errorf("node %d repeats: %w", id, ErrInvalidPath)
		}
		visited[id] = struct{}{}

		if i == 0 {
			continue
		}
		if _, ok := g.LinkBetween(p[i-1], id); !ok {
			return fmt.Errorf("no link %d—%d: %w", p[i-1], id, ErrInvalidPath)
		}
	}

	return nil
}

// PathLinks resolves p into its ordered link sequence. The path is validated
// first; a malformed path returns ErrInvalidPath.
// Complexity: O(len(p) · max degree)
func (g *Graph) PathLinks(p Path) ([]Link, error) {
	if err := g.ValidatePath(p); err != nil {
		return nil, err
	}

	out := make([]Link, 0, len(p)-1)
	var i int
	for i = 1; i < len(p); i++ {
		l, _ := g.LinkBetween(p[i-1], p[i])
		out = append(out, l)
	}

	return out, nil
}
