// Package profile implements the 2D section/profile view: data-to-screen
// mapping, adaptive grid-line generation and nearest-point probing.
package profile

// Point is one sample of an elevation profile: cumulative horizontal
// distance along the cut line and elevation at that distance.
type Point struct {
	Distance float64 `json:"distance"`
	Z        float64 `json:"z"`
}

// Profile is an ordered, non-empty sequence of points with a display name.
type Profile struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Bounds is the padded data-space rectangle covered by a set of profiles.
type Bounds struct {
	MinDistance float64
	MaxDistance float64
	MinZ        float64
	MaxZ        float64
}

// DistanceRange returns the horizontal extent of the bounds.
func (b Bounds) DistanceRange() float64 {
	return b.MaxDistance - b.MinDistance
}

// ZRange returns the vertical extent of the bounds.
func (b Bounds) ZRange() float64 {
	return b.MaxZ - b.MinZ
}

// Config holds the view tuning constants. The defaults mirror the
// values the rendering panels were calibrated with; they are settings,
// not hard-coded literals.
type Config struct {
	// Fractional padding applied to a non-zero data range.
	DistancePadFraction  float64 `yaml:"distance_pad_fraction"`
	ElevationPadFraction float64 `yaml:"elevation_pad_fraction"`

	// Fixed padding applied when the data range is zero, so single-point
	// or flat profiles still get a usable viewport.
	FallbackDistancePad  float64 `yaml:"fallback_distance_pad"`
	FallbackElevationPad float64 `yaml:"fallback_elevation_pad"`

	// PixelMargin is the fixed margin between the plot rectangle and the
	// viewport edge, in screen pixels.
	PixelMargin float64 `yaml:"pixel_margin"`

	// GridDivisor controls the grid interval: the interval is the largest
	// power of 10 not exceeding range/GridDivisor.
	GridDivisor float64 `yaml:"grid_divisor"`

	// SnapFraction is the nearest-point cutoff as a fraction of the
	// distance range. Cursors farther than this from any sample match
	// nothing.
	SnapFraction float64 `yaml:"snap_fraction"`

	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
}

// DefaultConfig returns the standard view tuning values.
func DefaultConfig() Config {
	return Config{
		DistancePadFraction:  0.05,
		ElevationPadFraction: 0.10,
		FallbackDistancePad:  10,
		FallbackElevationPad: 5,
		PixelMargin:          40,
		GridDivisor:          5,
		SnapFraction:         0.05,
		MinZoom:              0.5,
		MaxZoom:              10,
		ZoomStep:             1.5,
	}
}

// ComputeBounds returns the padded data-space bounds of the profiles.
// Zero-width ranges fall back to fixed padding so the viewport is never
// degenerate. An empty input yields bounds padded around the origin.
func ComputeBounds(profiles []Profile, cfg Config) Bounds {
	minD, maxD := 0.0, 0.0
	minZ, maxZ := 0.0, 0.0
	first := true

	for _, p := range profiles {
		for _, pt := range p.Points {
			if first {
				minD, maxD = pt.Distance, pt.Distance
				minZ, maxZ = pt.Z, pt.Z
				first = false
				continue
			}
			if pt.Distance < minD {
				minD = pt.Distance
			}
			if pt.Distance > maxD {
				maxD = pt.Distance
			}
			if pt.Z < minZ {
				minZ = pt.Z
			}
			if pt.Z > maxZ {
				maxZ = pt.Z
			}
		}
	}

	padD := (maxD - minD) * cfg.DistancePadFraction
	if padD == 0 {
		padD = cfg.FallbackDistancePad
	}
	padZ := (maxZ - minZ) * cfg.ElevationPadFraction
	if padZ == 0 {
		padZ = cfg.FallbackElevationPad
	}

	return Bounds{
		MinDistance: minD - padD,
		MaxDistance: maxD + padD,
		MinZ:        minZ - padZ,
		MaxZ:        maxZ + padZ,
	}
}
