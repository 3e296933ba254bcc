package graphio

import (
	"errors"
	"fmt"

	"github.com/marois/cdk/core"
)

// ErrUnknownFormat is returned by Load for file extensions it cannot decode.
var ErrUnknownFormat = errors.New("graphio: unknown file format")

// Document is the serialized form of an undirected weighted graph.
type Document struct {
	Vertices []int  `json:"vertices" toml:"vertices"`
	Edges    []Edge `json:"edges" toml:"edges"`
}

// Edge is one serialized edge. ID and Weight are optional.
type Edge struct {
	ID     *int     `json:"id,omitempty" toml:"id,omitempty"`
	From   int      `json:"from" toml:"from"`
	To     int      `json:"to" toml:"to"`
	Weight *float64 `json:"weight,omitempty" toml:"weight,omitempty"`
}

// Graph builds a core.Graph from d. Vertices are added first so isolated
// vertices survive; edge endpoints missing from Vertices are added too.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(d.modes()...)
	for _, v := range d.Vertices {
		g.AddVertex(v)
	}
	for i, e := range d.Edges {
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		var opts []core.EdgeOption
		if e.ID != nil {
			opts = append(opts, core.WithEdgeID(*e.ID))
		}
		if _, err := g.AddEdge(e.From, e.To, w, opts...); err != nil {
			return nil, fmt.Errorf("edge %d (%d—%d): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// modes enables loops and multi-edges only when the edge list needs them.
func (d Document) modes() []core.GraphOption {
	var opts []core.GraphOption
	var loops, multi bool
	seen := make(map[[2]int]bool, len(d.Edges))
	for _, e := range d.Edges {
		if e.From == e.To {
			loops = true
		}
		k := [2]int{min(e.From, e.To), max(e.From, e.To)}
		if seen[k] {
			multi = true
		}
		seen[k] = true
	}
	if loops {
		opts = append(opts, core.WithLoops())
	}
	if multi {
		opts = append(opts, core.WithMultiEdges())
	}

	return opts
}

// FromGraph converts g to a Document with explicit IDs and weights.
func FromGraph(g *core.Graph) Document {
	es := g.Edges()
	d := Document{
		Vertices: g.Vertices(),
		Edges:    make([]Edge, len(es)),
	}
	for i, e := range es {
		id, w := e.ID, e.Weight
		d.Edges[i] = Edge{ID: &id, From: e.From, To: e.To, Weight: &w}
	}

	return d
}
