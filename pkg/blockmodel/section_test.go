package blockmodel

import (
	"math"
	"testing"

	"github.com/philipparndt/minevis/pkg/geometry"
)

func testBlocks() []Block {
	return []Block{
		{I: 0, J: 0, K: 0, X: 100, Y: 200, Z: 50, Value: 1.2, ID: "b0"},
		{I: 1, J: 0, K: 0, X: 110, Y: 200, Z: 50, Value: 2.4, ID: "b1"},
		{I: 2, J: 1, K: 0, X: 120, Y: 210, Z: 50, Value: 0.8, ID: "b2"},
		{I: 2, J: 1, K: 1, X: 120, Y: 210, Z: 60, Value: 3.1, ID: "b3"},
		{I: 3, J: 2, K: 1, X: 130, Y: 220, Z: 60, Value: 1.9, ID: "b4"},
	}
}

func TestOffsetIsExtentMidpoint(t *testing.T) {
	offset := Offset(testBlocks(), true)

	expected := geometry.NewVector3(115, 210, 55)
	if offset != expected {
		t.Errorf("Offset failed: expected %v, got %v", expected, offset)
	}
}

func TestOffsetDisabledOrEmpty(t *testing.T) {
	if off := Offset(testBlocks(), false); off != (geometry.Vector3{}) {
		t.Errorf("disabled auto-center should return zero offset, got %v", off)
	}
	if off := Offset(nil, true); off != (geometry.Vector3{}) {
		t.Errorf("empty block set should return zero offset, got %v", off)
	}
}

func TestMaxLevelsDerivedFromData(t *testing.T) {
	levels := MaxLevels(testBlocks(), nil)

	if levels.X != 4 || levels.Y != 3 || levels.Z != 2 {
		t.Errorf("MaxLevels failed: got %+v, want {X:4 Y:3 Z:2}", levels)
	}
}

func TestMaxLevelsDefinitionTakesPrecedence(t *testing.T) {
	def := &GridDefinition{CountX: 10, CountY: 0, CountZ: 5}
	levels := MaxLevels(testBlocks(), def)

	if levels.X != 10 {
		t.Errorf("defined X count should win: got %d", levels.X)
	}
	if levels.Y != 3 {
		t.Errorf("unset Y count should fall back to data: got %d", levels.Y)
	}
	if levels.Z != 5 {
		t.Errorf("defined Z count should win: got %d", levels.Z)
	}
}

func TestFilterBySection(t *testing.T) {
	blocks := testBlocks()
	filter := SectionFilter{Axis: AxisX, Level: 2}

	filtered := FilterBySection(blocks, filter)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 blocks at i==2, got %d", len(filtered))
	}
	for _, b := range filtered {
		if b.I != 2 {
			t.Errorf("block %s has i=%d, want 2", b.ID, b.I)
		}
	}

	// Input must not be mutated
	if len(blocks) != 5 {
		t.Errorf("input slice was mutated: len=%d", len(blocks))
	}
}

func TestFilterBySectionIdempotent(t *testing.T) {
	filter := SectionFilter{Axis: AxisZ, Level: 1}

	once := FilterBySection(testBlocks(), filter)
	twice := FilterBySection(once, filter)

	if len(once) != len(twice) {
		t.Fatalf("idempotence failed: %d vs %d blocks", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("idempotence failed at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilterBySectionNoAxis(t *testing.T) {
	blocks := testBlocks()
	filtered := FilterBySection(blocks, SectionFilter{Axis: AxisNone})

	if len(filtered) != len(blocks) {
		t.Errorf("no-axis filter should pass all blocks: got %d, want %d", len(filtered), len(blocks))
	}
}

func TestParseAxisRoundTrip(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if got := ParseAxis(axis.String()); got != axis {
			t.Errorf("ParseAxis(%q) = %v, want %v", axis.String(), got, axis)
		}
	}
	if got := ParseAxis("w"); got != AxisNone {
		t.Errorf("unknown axis name should parse to AxisNone, got %v", got)
	}
}

func TestOffsetCentersWorldCoordinates(t *testing.T) {
	blocks := testBlocks()
	offset := Offset(blocks, true)

	// Re-centered extents must straddle the origin symmetrically.
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	for _, b := range blocks {
		x := b.X - offset.X
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	if math.Abs(minX+maxX) > 1e-10 {
		t.Errorf("re-centered X extents not symmetric: [%v, %v]", minX, maxX)
	}
}
