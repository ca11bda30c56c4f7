// Package core_test contains unit tests for graph construction and path
// validation. These tests cover constructor error cases, accessor semantics,
// and the path validity rules every solver relies on.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qospath/core"
)

// fourNodes returns valid node records 0..3.
func fourNodes() []core.Node {
	return []core.Node{
		{ID: 0, ProcDelayMs: 1.0, Reliability: 0.99},
		{ID: 1, ProcDelayMs: 0.5, Reliability: 0.98},
		{ID: 2, ProcDelayMs: 2.0, Reliability: 0.97},
		{ID: 3, ProcDelayMs: 1.5, Reliability: 0.96},
	}
}

// squareLinks returns links forming a 0-1-3-2-0 cycle.
func squareLinks() []core.Link {
	return []core.Link{
		{From: 0, To: 1, Type: core.Fiber, BandwidthMbps: 900, DelayMs: 2, Reliability: 0.92},
		{From: 1, To: 3, Type: core.Microwave, BandwidthMbps: 400, DelayMs: 7, Reliability: 0.96},
		{From: 3, To: 2, Type: core.Satellite, BandwidthMbps: 50, DelayMs: 30, Reliability: 0.999},
		{From: 2, To: 0, Type: core.Microwave, BandwidthMbps: 500, DelayMs: 6, Reliability: 0.97},
	}
}

// ------------------------------------------------------------------------
// 1. Build validation: every malformed input maps to its sentinel.
// ------------------------------------------------------------------------

func TestBuild_NoNodes(t *testing.T) {
	_, err := core.Build(nil, nil)
	if !errors.Is(err, core.ErrNoNodes) {
		t.Fatalf("expected ErrNoNodes, got %v", err)
	}
}

func TestBuild_NodeOrder(t *testing.T) {
	nodes := fourNodes()
	nodes[2].ID = 7 // breaks the dense 0..N-1 sequence
	_, err := core.Build(nodes, nil)
	if !errors.Is(err, core.ErrNodeOrder) {
		t.Fatalf("expected ErrNodeOrder, got %v", err)
	}
}

func TestBuild_NodeAttributes(t *testing.T) {
	bad := fourNodes()
	bad[1].Reliability = 0
	if _, err := core.Build(bad, nil); !errors.Is(err, core.ErrBadReliability) {
		t.Fatalf("expected ErrBadReliability for zero node reliability, got %v", err)
	}

	bad = fourNodes()
	bad[1].ProcDelayMs = -1
	if _, err := core.Build(bad, nil); !errors.Is(err, core.ErrBadDelay) {
		t.Fatalf("expected ErrBadDelay for negative processing delay, got %v", err)
	}
}

func TestBuild_LinkValidation(t *testing.T) {
	cases := []struct {
		name string
		link core.Link
		want error
	}{
		{"endpoint out of range", core.Link{From: 0, To: 9, BandwidthMbps: 100, Reliability: 0.9}, core.ErrLinkEndpoint},
		{"self loop", core.Link{From: 2, To: 2, BandwidthMbps: 100, Reliability: 0.9}, core.ErrSelfLoop},
		{"zero bandwidth", core.Link{From: 0, To: 1, BandwidthMbps: 0, Reliability: 0.9}, core.ErrBadBandwidth},
		{"bad reliability", core.Link{From: 0, To: 1, BandwidthMbps: 100, Reliability: 1.5}, core.ErrBadReliability},
		{"negative delay", core.Link{From: 0, To: 1, BandwidthMbps: 100, DelayMs: -3, Reliability: 0.9}, core.ErrBadDelay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.Build(fourNodes(), []core.Link{tc.link})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBuild_DuplicateLink(t *testing.T) {
	links := squareLinks()
	// Same unordered pair as links[0], declared in reverse.
	links = append(links, core.Link{From: 1, To: 0, BandwidthMbps: 100, Reliability: 0.9})
	_, err := core.Build(fourNodes(), links)
	if !errors.Is(err, core.ErrDuplicateLink) {
		t.Fatalf("expected ErrDuplicateLink, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Accessors: adjacency is symmetric, lookups are order-insensitive.
// ------------------------------------------------------------------------

func TestGraph_Accessors(t *testing.T) {
	g, err := core.Build(fourNodes(), squareLinks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g.NodeCount() != 4 || g.LinkCount() != 4 {
		t.Fatalf("expected 4 nodes / 4 links, got %d / %d", g.NodeCount(), g.LinkCount())
	}

	deg, err := g.Degree(0)
	if err != nil || deg != 2 {
		t.Fatalf("Degree(0) = %d, %v; expected 2", deg, err)
	}

	// LinkBetween is symmetric in its arguments.
	fwd, ok1 := g.LinkBetween(1, 3)
	rev, ok2 := g.LinkBetween(3, 1)
	if !ok1 || !ok2 || fwd != rev {
		t.Fatalf("LinkBetween should be order-insensitive: %v/%v vs %v/%v", fwd, ok1, rev, ok2)
	}
	if _, ok := g.LinkBetween(0, 3); ok {
		t.Fatal("LinkBetween reported a link that does not exist")
	}

	if _, err = g.Node(99); !errors.Is(err, core.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
	if _, err = g.Neighbors(-1); !errors.Is(err, core.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestGraph_NeighborsSymmetric(t *testing.T) {
	g, err := core.Build(fourNodes(), squareLinks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	nbs, err := g.Neighbors(3)
	if err != nil {
		t.Fatalf("Neighbors(3): %v", err)
	}
	got := map[int]bool{}
	for _, nb := range nbs {
		got[nb.To] = true
	}
	if !got[1] || !got[2] || len(got) != 2 {
		t.Fatalf("Neighbors(3) = %v, expected exactly {1, 2}", got)
	}
}

// ------------------------------------------------------------------------
// 3. Path rules: what counts as a valid route.
// ------------------------------------------------------------------------

func TestValidatePath(t *testing.T) {
	g, err := core.Build(fourNodes(), squareLinks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if err = g.ValidatePath(core.Path{0, 1, 3, 2}); err != nil {
		t.Fatalf("valid path rejected: %v", err)
	}

	invalid := []core.Path{
		{0},          // too short
		{0, 1, 0},    // repeated node
		{0, 3},       // no such link
		{0, 1, 3, 9}, // unknown node
	}
	for _, p := range invalid {
		if err = g.ValidatePath(p); !errors.Is(err, core.ErrInvalidPath) {
			t.Fatalf("path %v: expected ErrInvalidPath, got %v", p, err)
		}
	}
}

func TestPathLinks_Order(t *testing.T) {
	g, err := core.Build(fourNodes(), squareLinks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	links, err := g.PathLinks(core.Path{0, 1, 3})
	if err != nil {
		t.Fatalf("PathLinks: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Type != core.Fiber || links[1].Type != core.Microwave {
		t.Fatalf("links out of hop order: %v", links)
	}
}

func TestPath_Clone(t *testing.T) {
	p := core.Path{0, 1, 2}
	c := p.Clone()
	c[0] = 9
	if p[0] != 0 {
		t.Fatal("Clone must not alias the original backing array")
	}
	if core.Path(nil).Clone() != nil {
		t.Fatal("nil path should clone to nil")
	}
}

func TestLinkType_String(t *testing.T) {
	if core.Fiber.String() != "fiber" ||
		core.Microwave.String() != "microwave" ||
		core.Satellite.String() != "satellite" ||
		core.LinkType(42).String() != "unknown" {
		t.Fatal("LinkType labels changed")
	}
}
