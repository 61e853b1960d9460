package profile

import "math"

// PanOffset is the current pan translation in screen pixels.
type PanOffset struct {
	X float64
	Y float64
}

// View is an affine data-to-screen mapping over padded profile bounds,
// with independent per-axis scale factors multiplied by the zoom level
// and shifted by the pan offset. Screen Y grows downward; elevation
// grows upward.
type View struct {
	cfg    Config
	bounds Bounds
	width  float64
	height float64
	zoom   float64
	pan    PanOffset
}

// NewView creates a view over the given profiles and viewport size.
func NewView(profiles []Profile, width, height float64, cfg Config) *View {
	return &View{
		cfg:    cfg,
		bounds: ComputeBounds(profiles, cfg),
		width:  width,
		height: height,
		zoom:   1,
	}
}

// Bounds returns the padded data-space bounds the view maps.
func (v *View) Bounds() Bounds {
	return v.bounds
}

// Zoom returns the current zoom level.
func (v *View) Zoom() float64 {
	return v.zoom
}

// Pan returns the current pan offset.
func (v *View) Pan() PanOffset {
	return v.pan
}

// Resize updates the viewport dimensions.
func (v *View) Resize(width, height float64) {
	v.width = width
	v.height = height
}

func (v *View) scaleX() float64 {
	return (v.width - 2*v.cfg.PixelMargin) / v.bounds.DistanceRange() * v.zoom
}

func (v *View) scaleY() float64 {
	return (v.height - 2*v.cfg.PixelMargin) / v.bounds.ZRange() * v.zoom
}

// ToScreen maps a data-space point to screen pixels.
func (v *View) ToScreen(distance, z float64) (x, y float64) {
	x = v.cfg.PixelMargin + (distance-v.bounds.MinDistance)*v.scaleX() + v.pan.X
	y = v.height - v.cfg.PixelMargin - (z-v.bounds.MinZ)*v.scaleY() + v.pan.Y
	return x, y
}

// FromScreen is the exact inverse of ToScreen.
func (v *View) FromScreen(x, y float64) (distance, z float64) {
	distance = v.bounds.MinDistance + (x-v.cfg.PixelMargin-v.pan.X)/v.scaleX()
	z = v.bounds.MinZ + (v.height-v.cfg.PixelMargin-y+v.pan.Y)/v.scaleY()
	return distance, z
}

// SetZoom sets the zoom level, clamped to the configured range.
func (v *View) SetZoom(zoom float64) {
	if zoom < v.cfg.MinZoom {
		zoom = v.cfg.MinZoom
	}
	if zoom > v.cfg.MaxZoom {
		zoom = v.cfg.MaxZoom
	}
	v.zoom = zoom
}

// ZoomIn multiplies the zoom level by the configured step.
func (v *View) ZoomIn() {
	v.SetZoom(v.zoom * v.cfg.ZoomStep)
}

// ZoomOut divides the zoom level by the configured step.
func (v *View) ZoomOut() {
	v.SetZoom(v.zoom / v.cfg.ZoomStep)
}

// PanBy shifts the view by screen-pixel deltas.
func (v *View) PanBy(dx, dy float64) {
	v.pan.X += dx
	v.pan.Y += dy
}

// Reset restores zoom 1 and a zero pan offset.
func (v *View) Reset() {
	v.zoom = 1
	v.pan = PanOffset{}
}

// GridLine is one grid line at a data-space value. Major lines sit at
// multiples of five intervals and get a heavier stroke and a label.
type GridLine struct {
	Value float64
	Major bool
}

// GridLines holds the vertical (X, distance) and horizontal (Y,
// elevation) grid lines of a plot.
type GridLines struct {
	X []GridLine
	Y []GridLine
}

// GenerateGridLines emits "nice" grid lines for the given bounds. The
// interval per axis is the largest power of 10 not exceeding
// range/GridDivisor; lines outside the bounds are excluded.
func GenerateGridLines(b Bounds, cfg Config) GridLines {
	return GridLines{
		X: axisLines(b.MinDistance, b.MaxDistance, cfg.GridDivisor),
		Y: axisLines(b.MinZ, b.MaxZ, cfg.GridDivisor),
	}
}

// GridLines emits grid lines for the view's own bounds.
func (v *View) GridLines() GridLines {
	return GenerateGridLines(v.bounds, v.cfg)
}

func axisLines(min, max, divisor float64) []GridLine {
	rng := max - min
	if rng <= 0 || divisor <= 0 {
		return nil
	}

	interval := math.Pow(10, math.Floor(math.Log10(rng/divisor)))

	// Walk integer multiples of the interval so accumulated float error
	// cannot drift the line positions or the major flag.
	lo := int(math.Ceil(min/interval - 1e-9))
	hi := int(math.Floor(max/interval + 1e-9))
	if hi < lo {
		return nil
	}

	lines := make([]GridLine, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		lines = append(lines, GridLine{
			Value: float64(i) * interval,
			Major: i%5 == 0,
		})
	}
	return lines
}

// NearestPoint converts the cursor to data space and returns the profile
// point with the smallest horizontal distance to it, provided that
// distance is within the configured snap fraction of the distance range.
// Ties keep the first profile and the first point in input order.
func (v *View) NearestPoint(profiles []Profile, screenX, screenY float64) (Point, bool) {
	cursorD, _ := v.FromScreen(screenX, screenY)
	cutoff := v.cfg.SnapFraction * v.bounds.DistanceRange()

	var best Point
	bestDelta := math.MaxFloat64
	found := false

	for _, p := range profiles {
		for _, pt := range p.Points {
			delta := math.Abs(pt.Distance - cursorD)
			if delta < bestDelta {
				bestDelta = delta
				best = pt
				found = true
			}
		}
	}

	if !found || bestDelta > cutoff {
		return Point{}, false
	}
	return best, true
}
