// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-level queries.
// Determinism:
//   - Vertices() is sorted ascending.
// Concurrency:
//   - muVert guards the vertex set; adjacency initialisation takes muEdgeAdj after it.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts vertex id. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked requires both locks held for writing.
func (g *Graph) addVertexLocked(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[int]map[int]struct{})
}

// HasVertex reports whether vertex id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes vertex id together with every incident edge.
// Returns ErrVertexNotFound if the vertex is absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id int) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	for _, set := range g.adjacency[id] {
		for eid := range set {
			if e, ok := g.edges[eid]; ok {
				g.unlinkLocked(e)
				delete(g.edges, eid)
			}
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge ends at id; a loop contributes two.
// Returns ErrVertexNotFound if the vertex is absent.
func (g *Graph) Degree(id int) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	deg := 0
	for to, set := range g.adjacency[id] {
		if to == id {
			deg += 2 * len(set)
			continue
		}
		deg += len(set)
	}

	return deg, nil
}
