// Package flowgraph lays out material-flow (Sankey-style) diagrams:
// three fixed node columns, node heights scaled by tonnage throughput
// and links drawn as cubic Bézier S-curves sized by tonnage.
package flowgraph

// Node is one stage of the material flow (source, plant, destination).
// Column assignment is supplied by the caller; this package only lays
// out whatever column index it is given.
type Node struct {
	Name   string `json:"name"`
	Column int    `json:"column"`
}

// Link is a directed material movement between two named nodes.
type Link struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Material string  `json:"material"`
	Tonnes   float64 `json:"tonnes"`
	Loads    float64 `json:"loads"`
}

// MaterialAll passes every link through the material filter.
const MaterialAll = "all"

// Config holds the layout tuning values in screen pixels.
type Config struct {
	ColumnSpacing float64 `yaml:"column_spacing"`
	LeftMargin    float64 `yaml:"left_margin"`
	TopMargin     float64 `yaml:"top_margin"`
	NodePitch     float64 `yaml:"node_pitch"`
	NodeWidth     float64 `yaml:"node_width"`
	MinNodeHeight float64 `yaml:"min_node_height"`
	MaxNodeHeight float64 `yaml:"max_node_height"`
	MinLinkWidth  float64 `yaml:"min_link_width"`
	MaxLinkWidth  float64 `yaml:"max_link_width"`

	// CurveTension is the horizontal control-point offset as a fraction
	// of the gap between the link's endpoints.
	CurveTension float64 `yaml:"curve_tension"`
}

// DefaultConfig returns the standard layout tuning values.
func DefaultConfig() Config {
	return Config{
		ColumnSpacing: 280,
		LeftMargin:    40,
		TopMargin:     40,
		NodePitch:     90,
		NodeWidth:     24,
		MinNodeHeight: 8,
		MaxNodeHeight: 72,
		MinLinkWidth:  1,
		MaxLinkWidth:  12,
		CurveTension:  0.5,
	}
}

// PositionedNode is a node with its computed screen rectangle and the
// tonnage sums over the filtered link set.
type PositionedNode struct {
	Node
	Inflow  float64
	Outflow float64
	X       float64
	Y       float64
	Width   float64
	Height  float64
}

// Flow returns the node's display flow magnitude.
func (n PositionedNode) Flow() float64 {
	if n.Inflow > n.Outflow {
		return n.Inflow
	}
	return n.Outflow
}

// BezierPath is a cubic Bézier from (X1, Y1) to (X2, Y2) with control
// points (CX1, CY1) and (CX2, CY2).
type BezierPath struct {
	X1, Y1   float64
	CX1, CY1 float64
	CX2, CY2 float64
	X2, Y2   float64
}

// PointAt evaluates the curve at parameter t in [0, 1].
func (p BezierPath) PointAt(t float64) (x, y float64) {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	x = a*p.X1 + b*p.CX1 + c*p.CX2 + d*p.X2
	y = a*p.Y1 + b*p.CY1 + c*p.CY2 + d*p.Y2
	return x, y
}

// PositionedLink is a link with its stroke thickness and screen path.
type PositionedLink struct {
	Link
	Thickness float64
	Path      BezierPath
}

// Layout is the positioned flow diagram.
type Layout struct {
	Nodes     []PositionedNode
	Links     []PositionedLink
	MaxTonnes float64
}
