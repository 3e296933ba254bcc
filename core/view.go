// File: view.go
// Role: Non-mutating subgraph views.
// Determinism:
//   - Preserves vertex and edge IDs; configuration flags are copied.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "fmt"

// InducedSubgraph returns a new Graph holding the vertices in keep and every
// edge whose endpoints are both kept. Unknown IDs in keep are ignored.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		if keep[id] {
			out.addVertexLocked(id)
		}
	}
	for id, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			ne := *e
			out.edges[id] = &ne
			out.linkLocked(&ne)
		}
	}

	return out
}

// EdgeSubgraph returns a new Graph made of the listed edges and their endpoints.
// Returns ErrEdgeNotFound if any ID is unknown.
//
// Complexity: O(k) for k listed edges.
func EdgeSubgraph(g *Graph, edgeIDs []int) (*Graph, error) {
	out := NewGraph(g.options()...)

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out.nextEdgeID = g.nextEdgeID
	for _, id := range edgeIDs {
		e, ok := g.edges[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
		}
		if _, dup := out.edges[id]; dup {
			continue
		}
		out.addVertexLocked(e.From)
		out.addVertexLocked(e.To)
		ne := *e
		out.edges[id] = &ne
		out.linkLocked(&ne)
	}

	return out, nil
}
