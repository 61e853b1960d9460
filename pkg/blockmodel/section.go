package blockmodel

import "github.com/philipparndt/minevis/pkg/geometry"

// Offset returns the midpoint of the block set's world-space extents,
// used to re-center coordinates near the origin for numerical stability
// in downstream rendering. It returns the zero vector when autoCenter
// is disabled or the set is empty.
func Offset(blocks []Block, autoCenter bool) geometry.Vector3 {
	if !autoCenter || len(blocks) == 0 {
		return geometry.Vector3{}
	}

	bbox := geometry.NewBoundingBox()
	for _, b := range blocks {
		bbox.Extend(geometry.NewVector3(b.X, b.Y, b.Z))
	}
	return bbox.Center()
}

// MaxLevels returns one past the maximum grid index observed on each
// axis. A configured grid definition takes precedence per axis when it
// supplies a positive count.
func MaxLevels(blocks []Block, def *GridDefinition) Levels {
	var levels Levels
	for _, b := range blocks {
		if b.I+1 > levels.X {
			levels.X = b.I + 1
		}
		if b.J+1 > levels.Y {
			levels.Y = b.J + 1
		}
		if b.K+1 > levels.Z {
			levels.Z = b.K + 1
		}
	}

	if def != nil {
		if def.CountX > 0 {
			levels.X = def.CountX
		}
		if def.CountY > 0 {
			levels.Y = def.CountY
		}
		if def.CountZ > 0 {
			levels.Z = def.CountZ
		}
	}
	return levels
}

// FilterBySection returns the blocks whose grid index on the filter
// axis equals the filter level. A filter with AxisNone returns all
// blocks. The input slice is never mutated, and filtering an already
// filtered result by the same filter is a no-op.
func FilterBySection(blocks []Block, filter SectionFilter) []Block {
	if filter.Axis == AxisNone {
		return blocks
	}

	filtered := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Index(filter.Axis) == filter.Level {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
