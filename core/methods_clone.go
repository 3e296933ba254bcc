// File: methods_clone.go
// Role: Cloning graph instances and reading configuration.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID so generated IDs on the clone never
//     collide with copied ones.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// options rebuilds the GraphOption list that reproduces g's configuration.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	clone.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		clone.addVertexLocked(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for id, e := range g.edges {
		ne := *e
		clone.edges[id] = &ne
		clone.linkLocked(&ne)
	}

	return clone
}

// Stats returns a point-in-time summary of configuration and counts.
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.IsLoop() {
			stats.LoopCount++
		}
		stats.TotalWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
