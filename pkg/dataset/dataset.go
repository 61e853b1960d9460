// Package dataset loads the JSON exchange files the visualization
// commands consume: surveyed surfaces, block models, section profiles
// and material-flow graphs. Units are assumed validated upstream
// (meters, consistent coordinate system).
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/minevis/pkg/blockmodel"
	"github.com/philipparndt/minevis/pkg/flowgraph"
	"github.com/philipparndt/minevis/pkg/profile"
	"github.com/philipparndt/minevis/pkg/surface"
)

// FlowGraph pairs the nodes and links of one material-flow diagram.
type FlowGraph struct {
	Nodes []flowgraph.Node `json:"nodes"`
	Links []flowgraph.Link `json:"links"`
}

// Dataset is the top-level exchange document. Any section may be absent.
type Dataset struct {
	Surfaces       []surface.Surface          `json:"surfaces,omitempty"`
	Blocks         []blockmodel.Block         `json:"blocks,omitempty"`
	GridDefinition *blockmodel.GridDefinition `json:"grid_definition,omitempty"`
	Profiles       []profile.Profile          `json:"profiles,omitempty"`
	Flow           *FlowGraph                 `json:"flow,omitempty"`
}

// Load reads and parses a dataset file.
func Load(filename string) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	ds, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return ds, nil
}

// Parse decodes a dataset from a reader.
func Parse(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("invalid dataset JSON: %w", err)
	}
	return &ds, nil
}

// SurfaceByName returns the named surface, or nil when absent.
func (d *Dataset) SurfaceByName(name string) *surface.Surface {
	for i := range d.Surfaces {
		if d.Surfaces[i].Name == name {
			return &d.Surfaces[i]
		}
	}
	return nil
}
