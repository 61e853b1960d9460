// Package blockmodel provides section slicing, bounds and centering
// computations over regular block-model grids.
package blockmodel

// Axis identifies one grid axis of the block model. The zero value
// AxisNone means "no axis", used by filters to show all blocks.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "none"
	}
}

// ParseAxis converts an axis name to an Axis. Unknown names map to AxisNone.
func ParseAxis(s string) Axis {
	switch s {
	case "x", "X":
		return AxisX
	case "y", "Y":
		return AxisY
	case "z", "Z":
		return AxisZ
	default:
		return AxisNone
	}
}

// Block is one cell of a regular block model: integer grid indices plus
// a world-space centroid and an estimated value or quality vector.
type Block struct {
	I int `json:"i"`
	J int `json:"j"`
	K int `json:"k"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	Value     float64            `json:"value"`
	Qualities map[string]float64 `json:"qualities,omitempty"`

	ID string `json:"block_id"`
}

// Index returns the block's grid index on the given axis.
func (b Block) Index(axis Axis) int {
	switch axis {
	case AxisX:
		return b.I
	case AxisY:
		return b.J
	case AxisZ:
		return b.K
	default:
		return 0
	}
}

// SectionFilter selects a single-index cross-cut through the grid.
// A filter with AxisNone passes every block.
type SectionFilter struct {
	Axis  Axis `json:"axis"`
	Level int  `json:"level"`
}

// Levels holds the number of grid levels on each axis.
type Levels struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// On returns the level count for the given axis.
func (l Levels) On(axis Axis) int {
	switch axis {
	case AxisX:
		return l.X
	case AxisY:
		return l.Y
	case AxisZ:
		return l.Z
	default:
		return 0
	}
}

// GridDefinition holds block counts from a configured model definition.
// When present it takes precedence over counts derived from the data.
type GridDefinition struct {
	CountX int `json:"count_x"`
	CountY int `json:"count_y"`
	CountZ int `json:"count_z"`
}
