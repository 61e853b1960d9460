package surface

import (
	"github.com/philipparndt/minevis/pkg/colorramp"
	"github.com/philipparndt/minevis/pkg/geometry"
)

// Build constructs the renderable mesh for a surface. It returns nil
// when the surface has no vertices or no triangles, which is a
// legitimate nothing-to-draw state rather than an error.
//
// Triangles referencing out-of-range vertex indices are skipped so one
// malformed record cannot abort the whole mesh. Degenerate triangles
// get a zero normal instead of a NaN and are counted for diagnostics.
func Build(s *Surface, field ColorField) *RenderableMesh {
	if s == nil || len(s.Vertices) == 0 || len(s.Triangles) == 0 {
		return nil
	}

	ramp := field.Ramp
	if ramp == "" {
		ramp = ResolveScheme(s.Type).RampID()
	}

	// The color range is computed once and shared by every face.
	values := field.Values
	var minV, maxV float64
	if values != nil {
		minV, maxV = valueRange(values)
	} else {
		minV, maxV = s.ElevationRange()
	}

	mesh := &RenderableMesh{
		Positions: make([]float32, 0, len(s.Triangles)*9),
		Normals:   make([]float32, 0, len(s.Triangles)*9),
		Colors:    make([]float32, 0, len(s.Triangles)*9),
	}

	vertexCount := len(s.Vertices)
	for _, tri := range s.Triangles {
		i, j, k := tri[0], tri[1], tri[2]
		if i < 0 || i >= vertexCount || j < 0 || j >= vertexCount || k < 0 || k >= vertexCount {
			mesh.SkippedCount++
			continue
		}

		v0, v1, v2 := s.Vertices[i], s.Vertices[j], s.Vertices[k]

		cross := v1.Sub(v0).Cross(v2.Sub(v0))
		if cross.Length() == 0 {
			mesh.DegenerateCount++
		}
		// Normalize returns the zero vector for zero-length input, so a
		// collinear triangle renders with undefined lighting, not NaN.
		normal := cross.Normalize()

		for idx, v := range [3]geometry.Vector3{v0, v1, v2} {
			mesh.Positions = append(mesh.Positions,
				float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Normals = append(mesh.Normals,
				float32(normal.X), float32(normal.Y), float32(normal.Z))

			value := v.Z
			if values != nil {
				value = vertexValue(values, tri[idx])
			}
			color := colorramp.ColorAt(value, minV, maxV, ramp)
			mesh.Colors = append(mesh.Colors,
				float32(color.R), float32(color.G), float32(color.B))
		}
		mesh.FaceCount++
	}

	return mesh
}

func valueRange(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// vertexValue returns the quality value for a vertex index, tolerating
// value slices shorter than the vertex list.
func vertexValue(values []float64, index int) float64 {
	if index < len(values) {
		return values[index]
	}
	return 0
}
