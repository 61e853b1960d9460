package flowgraph

import (
	"math"
	"testing"
)

func testNodes() []Node {
	return []Node{
		{Name: "Pit A", Column: 0},
		{Name: "Pit B", Column: 0},
		{Name: "Crusher", Column: 1},
		{Name: "Stockpile", Column: 2},
		{Name: "Waste Dump", Column: 2},
	}
}

func testLinks() []Link {
	return []Link{
		{Source: "Pit A", Target: "Crusher", Material: "ore", Tonnes: 100, Loads: 12},
		{Source: "Pit B", Target: "Crusher", Material: "ore", Tonnes: 50, Loads: 6},
		{Source: "Pit A", Target: "Waste Dump", Material: "waste", Tonnes: 80, Loads: 10},
		{Source: "Crusher", Target: "Stockpile", Material: "ore", Tonnes: 150, Loads: 18},
	}
}

func TestComputeTonnageSums(t *testing.T) {
	layout := Compute(testNodes(), testLinks(), MaterialAll, DefaultConfig())

	byName := make(map[string]PositionedNode)
	for _, n := range layout.Nodes {
		byName[n.Name] = n
	}

	pitA := byName["Pit A"]
	if pitA.Outflow != 180 {
		t.Errorf("Pit A outflow = %v, want 180", pitA.Outflow)
	}
	if pitA.Inflow != 0 {
		t.Errorf("Pit A inflow = %v, want 0", pitA.Inflow)
	}

	crusher := byName["Crusher"]
	if crusher.Inflow != 150 || crusher.Outflow != 150 {
		t.Errorf("Crusher flow = in %v out %v, want 150/150", crusher.Inflow, crusher.Outflow)
	}

	if layout.MaxTonnes != 180 {
		t.Errorf("MaxTonnes = %v, want 180", layout.MaxTonnes)
	}
}

func TestComputeLinearThickness(t *testing.T) {
	nodes := []Node{
		{Name: "A", Column: 0},
		{Name: "B", Column: 1},
		{Name: "C", Column: 1},
	}
	links := []Link{
		{Source: "A", Target: "B", Material: "ore", Tonnes: 100},
		{Source: "A", Target: "C", Material: "ore", Tonnes: 50},
	}

	layout := Compute(nodes, links, MaterialAll, DefaultConfig())

	if len(layout.Links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(layout.Links))
	}
	thick := layout.Links[0].Thickness
	thin := layout.Links[1].Thickness
	if math.Abs(thick-2*thin) > 1e-10 {
		t.Errorf("thickness should be linear in tonnes: %v vs %v", thick, thin)
	}

	byName := make(map[string]PositionedNode)
	for _, n := range layout.Nodes {
		byName[n.Name] = n
	}
	if byName["A"].Outflow != 150 {
		t.Errorf("node A outflow = %v, want 150", byName["A"].Outflow)
	}
}

func TestComputeMaterialFilter(t *testing.T) {
	layout := Compute(testNodes(), testLinks(), "waste", DefaultConfig())

	if len(layout.Links) != 1 {
		t.Fatalf("expected 1 waste link, got %d", len(layout.Links))
	}
	if layout.Links[0].Material != "waste" {
		t.Errorf("filtered link material = %q", layout.Links[0].Material)
	}

	// Sums cover the filtered set only.
	for _, n := range layout.Nodes {
		if n.Name == "Crusher" && (n.Inflow != 0 || n.Outflow != 0) {
			t.Errorf("Crusher should have no waste flow, got in %v out %v", n.Inflow, n.Outflow)
		}
	}
}

func TestComputeDropsDanglingLinks(t *testing.T) {
	nodes := []Node{{Name: "A", Column: 0}}
	links := []Link{
		{Source: "A", Target: "Ghost", Material: "ore", Tonnes: 10},
		{Source: "Ghost", Target: "A", Material: "ore", Tonnes: 10},
	}

	layout := Compute(nodes, links, MaterialAll, DefaultConfig())

	if len(layout.Links) != 0 {
		t.Errorf("links with missing endpoints must be dropped, got %d", len(layout.Links))
	}
}

func TestComputeColumnStacking(t *testing.T) {
	cfg := DefaultConfig()
	layout := Compute(testNodes(), testLinks(), MaterialAll, cfg)

	byName := make(map[string]PositionedNode)
	for _, n := range layout.Nodes {
		byName[n.Name] = n
	}

	// Columns at fixed horizontal spacing.
	if byName["Crusher"].X-byName["Pit A"].X != cfg.ColumnSpacing {
		t.Errorf("column spacing failed: %v vs %v", byName["Pit A"].X, byName["Crusher"].X)
	}

	// Nodes within a column stack in input order at a fixed pitch.
	if byName["Pit B"].Y-byName["Pit A"].Y != cfg.NodePitch {
		t.Errorf("node pitch failed: %v vs %v", byName["Pit A"].Y, byName["Pit B"].Y)
	}
	if byName["Waste Dump"].Y-byName["Stockpile"].Y != cfg.NodePitch {
		t.Errorf("node pitch failed in column 2")
	}
}

func TestComputeNodeHeightClamped(t *testing.T) {
	cfg := DefaultConfig()
	layout := Compute(testNodes(), testLinks(), MaterialAll, cfg)

	for _, n := range layout.Nodes {
		if n.Height < cfg.MinNodeHeight || n.Height > cfg.MaxNodeHeight {
			t.Errorf("node %s height %v outside [%v, %v]", n.Name, n.Height, cfg.MinNodeHeight, cfg.MaxNodeHeight)
		}
	}

	byName := make(map[string]PositionedNode)
	for _, n := range layout.Nodes {
		byName[n.Name] = n
	}
	// The largest flow gets the full height.
	if byName["Pit A"].Height != cfg.MaxNodeHeight {
		t.Errorf("max-flow node height = %v, want %v", byName["Pit A"].Height, cfg.MaxNodeHeight)
	}
}

func TestLinkPathEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	layout := Compute(testNodes(), testLinks(), MaterialAll, cfg)

	byName := make(map[string]PositionedNode)
	for _, n := range layout.Nodes {
		byName[n.Name] = n
	}

	for _, l := range layout.Links {
		src := byName[l.Source]
		dst := byName[l.Target]

		x0, y0 := l.Path.PointAt(0)
		if x0 != src.X+src.Width || y0 != src.Y+src.Height/2 {
			t.Errorf("link %s->%s should start at source right edge", l.Source, l.Target)
		}

		x1, y1 := l.Path.PointAt(1)
		if x1 != dst.X || y1 != dst.Y+dst.Height/2 {
			t.Errorf("link %s->%s should end at target left edge", l.Source, l.Target)
		}
	}
}
