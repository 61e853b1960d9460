// Package surface builds renderable triangle meshes from triangulated
// survey surfaces: flat per-face normals, per-vertex ramp colors and an
// unindexed vertex layout suitable for GPU upload.
package surface

import "github.com/philipparndt/minevis/pkg/geometry"

// Triangle is an ordered triple of vertex indices. Counter-clockwise
// winding faces outward.
type Triangle [3]int

// Surface is a triangulated irregular network over survey points. It is
// treated as immutable once built; the mesh builder only derives
// geometry from it.
type Surface struct {
	Name      string             `json:"name"`
	Type      string             `json:"surface_type"`
	Vertices  []geometry.Vector3 `json:"vertices"`
	Triangles []Triangle         `json:"triangles"`
}

// BoundingBox returns the axis-aligned bounds of all vertices.
func (s *Surface) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range s.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// ElevationRange returns the minimum and maximum vertex elevation.
func (s *Surface) ElevationRange() (minZ, maxZ float64) {
	if len(s.Vertices) == 0 {
		return 0, 0
	}
	minZ, maxZ = s.Vertices[0].Z, s.Vertices[0].Z
	for _, v := range s.Vertices[1:] {
		if v.Z < minZ {
			minZ = v.Z
		}
		if v.Z > maxZ {
			maxZ = v.Z
		}
	}
	return minZ, maxZ
}

// RenderableMesh is the unindexed output layout: three floats per
// vertex, three vertices per face, one flat normal and one ramp color
// per vertex. Slice lengths are always 9 × face count.
type RenderableMesh struct {
	Positions []float32
	Normals   []float32
	Colors    []float32

	// FaceCount is the number of triangles emitted.
	FaceCount int

	// SkippedCount is the number of triangles dropped for out-of-range
	// vertex indices.
	SkippedCount int

	// DegenerateCount is the number of emitted triangles whose collinear
	// vertices produced a zero-length normal.
	DegenerateCount int
}
