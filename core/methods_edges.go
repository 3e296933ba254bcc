// File: methods_edges.go
// Role: Edge lifecycle and edge-level queries.
// Determinism:
//   - Edges(), EdgesBetween() and Neighbors() are sorted by Edge.ID ascending.
//   - Generated IDs are 0,1,2,... and always exceed every explicit ID seen before.
// Concurrency:
//   - Writers take muVert then muEdgeAdj; readers take read locks in the same order.

package core

import (
	"fmt"
	"math"
	"sort"
)

// validateWeight rejects weights the cycle algorithms cannot order.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}

	return nil
}

// AddEdge creates an undirected edge between from and to with the given weight
// and returns its ID. Missing endpoints are created.
//
// Returns ErrInvalidWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrNegativeEdgeID or ErrDuplicateEdgeID.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64, opts ...EdgeOption) (int, error) {
	// 1) Input validation
	if err := validateWeight(weight); err != nil {
		return 0, err
	}
	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasID && cfg.id < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeEdgeID, cfg.id)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 2) Multi-edge constraint
	if !g.allowMulti {
		if set, ok := g.adjacency[from][to]; ok && len(set) > 0 {
			return 0, fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, from, to)
		}
	}

	// 3) Resolve the edge ID
	id := g.nextEdgeID
	if cfg.hasID {
		if _, taken := g.edges[cfg.id]; taken {
			return 0, fmt.Errorf("%w: %d", ErrDuplicateEdgeID, cfg.id)
		}
		id = cfg.id
	}
	if id >= g.nextEdgeID {
		g.nextEdgeID = id + 1
	}

	// 4) Insert endpoints, catalog entry and adjacency
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	e := &Edge{ID: id, From: from, To: to, Weight: weight}
	g.edges[id] = e
	g.linkLocked(e)

	return id, nil
}

// RemoveEdge deletes the edge with the given ID. Endpoints are kept.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id int) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	g.unlinkLocked(e)
	delete(g.edges, id)

	return nil
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return *e, nil
}

// HasEdge reports whether at least one edge joins u and v.
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// Edges returns copies of all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EdgesBetween returns every edge joining u and v (all loops at u when u == v),
// sorted by ID. Unknown vertices yield an empty result.
func (g *Graph) EdgesBetween(u, v int) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	set := g.adjacency[u][v]
	out := make([]Edge, 0, len(set))
	for eid := range set {
		out = append(out, *g.edges[eid])
	}
	sortEdges(out)

	return out
}

// Neighbors returns the edges incident to id sorted by ID. Loops appear once,
// parallel edges appear once each.
// Returns ErrVertexNotFound if the vertex is absent.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	var out []Edge
	for _, set := range g.adjacency[id] {
		for eid := range set {
			out = append(out, *g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id, sorted ascending.
// A vertex with a loop lists itself.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, 0, len(g.adjacency[id]))
	for to, set := range g.adjacency[id] {
		if len(set) > 0 {
			out = append(out, to)
		}
	}
	sort.Ints(out)

	return out, nil
}

// linkLocked indexes e in the adjacency map. Caller holds muEdgeAdj.
func (g *Graph) linkLocked(e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacency[e.From][e.To][e.ID] = struct{}{}
	if e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacency[e.To][e.From][e.ID] = struct{}{}
	}
}

// unlinkLocked drops e from the adjacency map, pruning empty buckets.
func (g *Graph) unlinkLocked(e *Edge) {
	drop := func(a, b int) {
		set, ok := g.adjacency[a][b]
		if !ok {
			return
		}
		delete(set, e.ID)
		if len(set) == 0 {
			delete(g.adjacency[a], b)
		}
	}
	drop(e.From, e.To)
	drop(e.To, e.From)
}

func ensureAdjacency(g *Graph, from, to int) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[int]map[int]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[int]struct{})
	}
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })
}
