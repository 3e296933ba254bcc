package mst

import (
	"errors"
	"fmt"
	"sort"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/disjointset"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("mst: graph is nil")

// ErrDisconnected indicates that the graph is not connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Kruskal computes a minimum spanning tree of g and its total weight.
//
// Steps:
//  1. Validate g and index its vertices.
//  2. Collect non-loop edges and stable-sort them by weight.
//  3. Accept every edge joining two different sets of the forest.
//  4. Fail with ErrDisconnected if fewer than |V|-1 edges were accepted.
//
// An empty graph and a single vertex both yield an empty tree.
// Complexity: O(E log E + E·h) where h is the forest height.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate and index.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}
	index := make(map[int]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	// 2. Candidate edges, lightest first, ties by ID.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if !e.IsLoop() {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	// 3. Grow the forest.
	forest, err := disjointset.New(len(vertices))
	if err != nil {
		return nil, 0, err
	}
	var (
		tree  []core.Edge
		total float64
	)
	for _, e := range edges {
		ru, _ := forest.Root(index[e.From])
		rv, _ := forest.Root(index[e.To])
		if ru == rv {
			continue
		}
		if err := forest.Union(ru, rv); err != nil {
			return nil, 0, err
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	// 4. Spanning check.
	if len(tree) < len(vertices)-1 {
		return nil, 0, fmt.Errorf("%w: %d of %d tree edges", ErrDisconnected, len(tree), len(vertices)-1)
	}

	return tree, total, nil
}
