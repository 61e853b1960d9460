package surface

import (
	"strings"

	"github.com/philipparndt/minevis/pkg/colorramp"
)

// ColorScheme is the resolved coloring variant for a surface. It is
// derived once per build, not re-matched per vertex.
type ColorScheme int

const (
	SchemeTerrain ColorScheme = iota
	SchemeMaterial
	SchemeThermal
)

// String returns the scheme name.
func (s ColorScheme) String() string {
	switch s {
	case SchemeMaterial:
		return "material"
	case SchemeThermal:
		return "thermal"
	default:
		return "terrain"
	}
}

// RampID returns the color ramp preset backing the scheme.
func (s ColorScheme) RampID() string {
	switch s {
	case SchemeMaterial:
		return "copper"
	case SchemeThermal:
		return "thermal"
	default:
		return colorramp.DefaultRampID
	}
}

// schemeTokens maps surface-type substrings to schemes. First match in
// order wins; unmatched types fall back to the terrain scheme.
var schemeTokens = []struct {
	token  string
	scheme ColorScheme
}{
	{"grade", SchemeThermal},
	{"quality", SchemeThermal},
	{"ore", SchemeThermal},
	{"design", SchemeMaterial},
	{"pit", SchemeMaterial},
	{"asbuilt", SchemeMaterial},
	{"topo", SchemeTerrain},
	{"terrain", SchemeTerrain},
}

// ResolveScheme picks the coloring scheme for a surface type string.
func ResolveScheme(surfaceType string) ColorScheme {
	lowered := strings.ToLower(surfaceType)
	for _, entry := range schemeTokens {
		if strings.Contains(lowered, entry.token) {
			return entry.scheme
		}
	}
	return SchemeTerrain
}

// ColorField selects the scalar source and ramp for vertex coloring.
// The zero value colors by elevation with the ramp implied by the
// surface type.
type ColorField struct {
	// Values holds one quality value per vertex. When nil, vertices are
	// colored by elevation.
	Values []float64

	// Ramp overrides the ramp implied by the surface type when non-empty.
	Ramp string
}
