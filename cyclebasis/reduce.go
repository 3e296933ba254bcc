package cyclebasis

import (
	"fmt"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dijkstra"
)

// ingest copies g into a multigraph that allows loops, keeping edge IDs.
func ingest(g Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, ErrNilGraph
	}

	work := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, v := range g.Vertices() {
		work.AddVertex(v)
	}
	for _, e := range g.Edges() {
		if !work.HasVertex(e.From) || !work.HasVertex(e.To) {
			return nil, fmt.Errorf("%w: edge %d (%d-%d)", ErrUnknownVertex, e.ID, e.From, e.To)
		}
		if _, err := work.AddEdge(e.From, e.To, e.Weight, core.WithEdgeID(e.ID)); err != nil {
			return nil, fmt.Errorf("cyclebasis: edge %d: %w", e.ID, err)
		}
	}

	return work, nil
}

// reduce turns work into a simple graph and returns the cycles removed on the way.
//
//  1. Every self-loop is removed and becomes its own one-edge cycle.
//  2. For every vertex pair joined by several edges, the lightest edge
//     (lowest ID on ties) stays and the others are removed.
//  3. Each removed parallel edge is closed into a cycle by a shortest path
//     between its endpoints in the now simple graph.
//
// work is modified in place.
func reduce(work *core.Graph) ([]*Cycle, error) {
	var (
		forced  []*Cycle
		removed []core.Edge
	)

	// 1) loops
	for _, e := range work.Edges() {
		if e.IsLoop() {
			if err := work.RemoveEdge(e.ID); err != nil {
				return nil, err
			}
			forced = append(forced, newCycle([]core.Edge{e}))
		}
	}

	// 2) parallel edges, scanned by ascending ID
	for _, e := range work.Edges() {
		group := work.EdgesBetween(e.From, e.To)
		if len(group) < 2 {
			continue
		}
		keep := group[0]
		for _, p := range group[1:] {
			if p.Weight < keep.Weight {
				keep = p
			}
		}
		for _, p := range group {
			if p.ID == keep.ID {
				continue
			}
			if err := work.RemoveEdge(p.ID); err != nil {
				return nil, err
			}
			removed = append(removed, p)
		}
	}

	// 3) close each removed edge with a shortest path
	for _, r := range removed {
		res, err := dijkstra.Dijkstra(work, dijkstra.Source(r.From), dijkstra.WithTarget(r.To))
		if err != nil {
			return nil, err
		}
		ids, err := res.PathEdges(r.To)
		if err != nil {
			return nil, fmt.Errorf("cyclebasis: parallel edge %d: %w", r.ID, err)
		}
		edges := []core.Edge{r}
		for _, id := range ids {
			pe, err := work.Edge(id)
			if err != nil {
				return nil, err
			}
			edges = append(edges, pe)
		}
		forced = append(forced, newCycle(edges))
	}

	return forced, nil
}
