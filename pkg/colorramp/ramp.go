// Package colorramp maps scalar values onto named piecewise-linear color ramps.
package colorramp

import "math"

// RGB is a color with components in the [0, 1] range.
type RGB struct {
	R, G, B float64
}

// Ramp is an ordered list of control colors interpolated linearly.
type Ramp struct {
	ID       string
	Controls []RGB
}

// DefaultRampID is used when an unknown ramp is requested.
const DefaultRampID = "terrain"

// ramps holds the built-in presets. Adding a ramp is a data change only.
var ramps = map[string]Ramp{
	// Perceptual multi-hue ramp for elevation surfaces
	"terrain": {
		ID: "terrain",
		Controls: []RGB{
			{0.15, 0.32, 0.62}, // deep blue (low)
			{0.18, 0.60, 0.48}, // teal green
			{0.55, 0.75, 0.35}, // olive
			{0.92, 0.82, 0.45}, // sand
			{0.75, 0.52, 0.35}, // earth brown
			{0.95, 0.95, 0.95}, // near-white (high)
		},
	},
	// Material-toned ramp for pit designs and as-built surfaces
	"copper": {
		ID: "copper",
		Controls: []RGB{
			{0.20, 0.12, 0.08},
			{0.45, 0.26, 0.15},
			{0.72, 0.45, 0.25},
			{0.90, 0.66, 0.45},
			{0.99, 0.85, 0.70},
		},
	},
	// Diverging thermal ramp for grade and quality fields
	"thermal": {
		ID: "thermal",
		Controls: []RGB{
			{0.12, 0.25, 0.70}, // cold blue
			{0.45, 0.65, 0.90},
			{0.95, 0.95, 0.92}, // neutral
			{0.95, 0.55, 0.30},
			{0.75, 0.10, 0.12}, // hot red
		},
	},
}

// Get returns the named ramp, falling back to the default preset when
// the ID is unknown.
func Get(id string) Ramp {
	if r, ok := ramps[id]; ok {
		return r
	}
	return ramps[DefaultRampID]
}

// IDs returns the names of all built-in ramps.
func IDs() []string {
	ids := make([]string, 0, len(ramps))
	for id := range ramps {
		ids = append(ids, id)
	}
	return ids
}

// At returns the ramp color for a normalized position t in [0, 1].
// Values outside the range are clamped.
func (r Ramp) At(t float64) RGB {
	n := len(r.Controls)
	if n == 0 {
		return RGB{}
	}
	if n == 1 {
		return r.Controls[0]
	}

	if t <= 0 {
		return r.Controls[0]
	}
	if t >= 1 {
		return r.Controls[n-1]
	}

	scaled := t * float64(n-1)
	idx := int(math.Floor(scaled))
	frac := scaled - float64(idx)

	c0 := r.Controls[idx]
	c1 := r.Controls[idx+1]
	return RGB{
		R: c0.R + frac*(c1.R-c0.R),
		G: c0.G + frac*(c1.G-c0.G),
		B: c0.B + frac*(c1.B-c0.B),
	}
}

// Midpoint returns the ramp's neutral middle color, used when a value
// range collapses to a single point.
func (r Ramp) Midpoint() RGB {
	return r.At(0.5)
}

// ColorAt normalizes value against [min, max] and maps it onto the named
// ramp. A zero-width range yields the ramp midpoint instead of dividing
// by zero.
func ColorAt(value, min, max float64, rampID string) RGB {
	ramp := Get(rampID)
	if max == min {
		return ramp.Midpoint()
	}

	t := (value - min) / (max - min)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return ramp.At(t)
}
