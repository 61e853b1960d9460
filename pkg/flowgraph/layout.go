package flowgraph

// Compute lays out the flow diagram for the given nodes and links.
// Links are filtered by material first; node tonnage sums cover the
// filtered set only. Links whose endpoints are not in nodes are dropped
// rather than failing the whole layout.
func Compute(nodes []Node, links []Link, materialFilter string, cfg Config) Layout {
	filtered := filterLinks(links, materialFilter)

	// Tonnage sums per node over the filtered link set.
	inflow := make(map[string]float64, len(nodes))
	outflow := make(map[string]float64, len(nodes))
	for _, l := range filtered {
		outflow[l.Source] += l.Tonnes
		inflow[l.Target] += l.Tonnes
	}

	positioned := make([]PositionedNode, 0, len(nodes))
	maxTonnes := 0.0
	for _, n := range nodes {
		pn := PositionedNode{
			Node:    n,
			Inflow:  inflow[n.Name],
			Outflow: outflow[n.Name],
		}
		if pn.Flow() > maxTonnes {
			maxTonnes = pn.Flow()
		}
		positioned = append(positioned, pn)
	}

	// Stack nodes per column in input order at a fixed pitch; height is
	// proportional to the node's share of the largest flow, clamped to
	// the configured pixel range.
	columnCount := make(map[int]int)
	byName := make(map[string]int, len(positioned))
	for i := range positioned {
		pn := &positioned[i]

		row := columnCount[pn.Column]
		columnCount[pn.Column]++

		height := cfg.MinNodeHeight
		if maxTonnes > 0 {
			height = clamp(pn.Flow()/maxTonnes*cfg.MaxNodeHeight, cfg.MinNodeHeight, cfg.MaxNodeHeight)
		}

		pn.X = cfg.LeftMargin + float64(pn.Column)*cfg.ColumnSpacing
		pn.Y = cfg.TopMargin + float64(row)*cfg.NodePitch
		pn.Width = cfg.NodeWidth
		pn.Height = height

		byName[pn.Name] = i
	}

	maxLinkTonnes := 0.0
	for _, l := range filtered {
		if l.Tonnes > maxLinkTonnes {
			maxLinkTonnes = l.Tonnes
		}
	}

	positionedLinks := make([]PositionedLink, 0, len(filtered))
	for _, l := range filtered {
		si, ok := byName[l.Source]
		if !ok {
			continue
		}
		ti, ok := byName[l.Target]
		if !ok {
			continue
		}

		thickness := cfg.MinLinkWidth
		if maxLinkTonnes > 0 {
			thickness = l.Tonnes / maxLinkTonnes * cfg.MaxLinkWidth
			if thickness < cfg.MinLinkWidth {
				thickness = cfg.MinLinkWidth
			}
		}

		positionedLinks = append(positionedLinks, PositionedLink{
			Link:      l,
			Thickness: thickness,
			Path:      linkPath(positioned[si], positioned[ti], cfg),
		})
	}

	return Layout{
		Nodes:     positioned,
		Links:     positionedLinks,
		MaxTonnes: maxTonnes,
	}
}

func filterLinks(links []Link, material string) []Link {
	if material == "" || material == MaterialAll {
		return links
	}
	filtered := make([]Link, 0, len(links))
	for _, l := range links {
		if l.Material == material {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// linkPath builds a cubic Bézier from the source node's right edge to
// the target node's left edge, with control points offset horizontally
// to form a smooth S-curve.
func linkPath(source, target PositionedNode, cfg Config) BezierPath {
	x1 := source.X + source.Width
	y1 := source.Y + source.Height/2
	x2 := target.X
	y2 := target.Y + target.Height/2

	offset := (x2 - x1) * cfg.CurveTension
	return BezierPath{
		X1: x1, Y1: y1,
		CX1: x1 + offset, CY1: y1,
		CX2: x2 - offset, CY2: y2,
		X2: x2, Y2: y2,
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
