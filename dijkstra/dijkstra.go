// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance,
//     or once the optional target is finalized.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by vertex ID and neighbors are scanned by edge ID, so the
//     resulting tree is identical on every run.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/marois/cdk/core"
)

// Dijkstra computes shortest distances from the configured Source to every
// vertex of g and returns the shortest-path tree.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if !cfg.HasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d (%d-%d) weight=%v", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	// 4) Run.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:   cfg.Source,
			Dist:     make(map[int]float64, len(vertices)),
			Prev:     make(map[int]int, len(vertices)),
			PrevEdge: make(map[int]int, len(vertices)),
		},
		visited: make(map[int]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited map[int]bool
	pq      nodePQ
}

// init sets dist[v] = +∞ everywhere, dist[Source] = 0, and seeds the heap.
func (r *runner) init(vertices []int) {
	for _, v := range vertices {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinished vertex and relaxes its edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if r.options.HasTarget && item.id == r.options.Target {
			break
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves tentative distances of u's neighbors. Only strictly shorter
// paths replace a recorded predecessor.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	du := r.res.Dist[u]
	for _, e := range neighbors {
		v := e.Other(u)
		if v == u || r.visited[v] {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance || nd >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		r.res.PrevEdge[v] = e.ID
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// Reachable reports whether v was reached.
func (res *Result) Reachable(v int) bool {
	d, ok := res.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// Path returns the vertices on the tree path from Source to v, both ends included.
func (res *Result) Path(v int) ([]int, error) {
	if !res.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}
	path := []int{v}
	for v != res.Source {
		v = res.Prev[v]
		path = append(path, v)
	}
	reverse(path)

	return path, nil
}

// PathEdges returns the IDs of the edges on the tree path from Source to v,
// ordered from the source outwards.
func (res *Result) PathEdges(v int) ([]int, error) {
	if !res.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}
	var ids []int
	for v != res.Source {
		ids = append(ids, res.PrevEdge[v])
		v = res.Prev[v]
	}
	reverse(ids)

	return ids, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
