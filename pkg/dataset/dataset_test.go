package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/minevis/pkg/blockmodel"
)

const sampleJSON = `{
  "surfaces": [
    {
      "name": "topo 2026-08",
      "surface_type": "topographic survey",
      "vertices": [[0, 0, 0], [10, 0, 0], [0, 10, 10]],
      "triangles": [[0, 1, 2]]
    }
  ],
  "blocks": [
    {"i": 0, "j": 0, "k": 0, "x": 100, "y": 200, "z": 50, "value": 1.4, "block_id": "b0"},
    {"i": 1, "j": 0, "k": 0, "x": 110, "y": 200, "z": 50, "value": 2.1, "block_id": "b1"}
  ],
  "grid_definition": {"count_x": 20, "count_y": 15, "count_z": 8},
  "profiles": [
    {"name": "haul road", "points": [{"distance": 0, "z": 120}, {"distance": 250, "z": 132}]}
  ],
  "flow": {
    "nodes": [
      {"name": "Pit A", "column": 0},
      {"name": "Crusher", "column": 1}
    ],
    "links": [
      {"source": "Pit A", "target": "Crusher", "material": "ore", "tonnes": 100, "loads": 12}
    ]
  }
}`

func TestParseDataset(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(ds.Surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d", len(ds.Surfaces))
	}
	s := ds.Surfaces[0]
	if s.Type != "topographic survey" || len(s.Vertices) != 3 || len(s.Triangles) != 1 {
		t.Errorf("surface decoded wrong: %+v", s)
	}
	if s.Vertices[2].Z != 10 {
		t.Errorf("vertex array decoding failed: %+v", s.Vertices[2])
	}

	if len(ds.Blocks) != 2 || ds.Blocks[1].I != 1 || ds.Blocks[1].ID != "b1" {
		t.Errorf("blocks decoded wrong: %+v", ds.Blocks)
	}
	if ds.GridDefinition == nil || ds.GridDefinition.CountX != 20 {
		t.Errorf("grid definition decoded wrong: %+v", ds.GridDefinition)
	}

	if len(ds.Profiles) != 1 || len(ds.Profiles[0].Points) != 2 {
		t.Errorf("profiles decoded wrong: %+v", ds.Profiles)
	}

	if ds.Flow == nil || len(ds.Flow.Nodes) != 2 || len(ds.Flow.Links) != 1 {
		t.Fatalf("flow decoded wrong: %+v", ds.Flow)
	}
	if ds.Flow.Links[0].Tonnes != 100 {
		t.Errorf("link tonnes = %v, want 100", ds.Flow.Links[0].Tonnes)
	}
}

func TestLoadDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	levels := blockmodel.MaxLevels(ds.Blocks, ds.GridDefinition)
	if levels.X != 20 || levels.Y != 15 || levels.Z != 8 {
		t.Errorf("levels from definition = %+v", levels)
	}

	if ds.SurfaceByName("topo 2026-08") == nil {
		t.Error("SurfaceByName should find the surface")
	}
	if ds.SurfaceByName("missing") != nil {
		t.Error("SurfaceByName should return nil for unknown names")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/pit.json"); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse(strings.NewReader("{not json")); err == nil {
		t.Error("invalid JSON should fail to parse")
	}
}
