package cyclebasis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/marois/cdk/core"
)

// Cycle is a simple cycle identified by its edge set.
//
// Two cycles are equal iff they hold the same edge IDs; Key is the canonical
// string form of that set. A self-loop is a one-edge cycle and two parallel
// edges form a two-edge cycle. Cycles are immutable.
type Cycle struct {
	edges    []core.Edge // sorted by ID
	vertices []int       // sorted ascending
	weight   float64
	key      string
}

// newCycle builds a Cycle from edges already known to form a simple cycle.
func newCycle(edges []core.Edge) *Cycle {
	es := append([]core.Edge(nil), edges...)
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })

	seen := make(map[int]bool, len(es))
	var (
		vs []int
		w  float64
		sb strings.Builder
	)
	for i, e := range es {
		w += e.Weight
		for _, v := range [2]int{e.From, e.To} {
			if !seen[v] {
				seen[v] = true
				vs = append(vs, v)
			}
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e.ID))
	}
	sort.Ints(vs)

	return &Cycle{edges: es, vertices: vs, weight: w, key: sb.String()}
}

// NewCycle validates that edges form one simple cycle and returns it.
// Accepted shapes are a single self-loop, two parallel edges, or three or
// more edges where every touched vertex has degree two and all edges are
// connected. Anything else is ErrNotACycle.
func NewCycle(edges []core.Edge) (*Cycle, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrNotACycle)
	}
	ids := make(map[int]bool, len(edges))
	deg := make(map[int]int)
	for _, e := range edges {
		if ids[e.ID] {
			return nil, fmt.Errorf("%w: edge %d repeated", ErrNotACycle, e.ID)
		}
		ids[e.ID] = true
		if e.IsLoop() && len(edges) > 1 {
			return nil, fmt.Errorf("%w: loop %d inside a longer cycle", ErrNotACycle, e.ID)
		}
		deg[e.From]++
		deg[e.To]++
	}
	for v, d := range deg {
		if d != 2 {
			return nil, fmt.Errorf("%w: vertex %d has degree %d", ErrNotACycle, v, d)
		}
	}
	c := newCycle(edges)
	if len(c.Path()) != len(c.vertices) {
		return nil, fmt.Errorf("%w: edges are disconnected", ErrNotACycle)
	}

	return c, nil
}

// Edges returns the edges sorted by ID.
func (c *Cycle) Edges() []core.Edge { return append([]core.Edge(nil), c.edges...) }

// EdgeIDs returns the edge IDs in ascending order.
func (c *Cycle) EdgeIDs() []int {
	ids := make([]int, len(c.edges))
	for i, e := range c.edges {
		ids[i] = e.ID
	}

	return ids
}

// Vertices returns the vertex set in ascending order.
func (c *Cycle) Vertices() []int { return append([]int(nil), c.vertices...) }

// Weight returns the sum of the edge weights.
func (c *Cycle) Weight() float64 { return c.weight }

// Len returns the number of edges.
func (c *Cycle) Len() int { return len(c.edges) }

// Key returns the canonical edge-set key, e.g. "0,3,7".
func (c *Cycle) Key() string { return c.key }

// Equal reports whether both cycles hold the same edge set.
func (c *Cycle) Equal(o *Cycle) bool { return o != nil && c.key == o.key }

// ContainsEdge reports whether the edge with the given ID is part of the cycle.
func (c *Cycle) ContainsEdge(id int) bool {
	i := sort.Search(len(c.edges), func(i int) bool { return c.edges[i].ID >= id })

	return i < len(c.edges) && c.edges[i].ID == id
}

// Path returns the vertices in traversal order, starting at the smallest
// vertex and leaving it along its lower-ID edge. The start is not repeated.
func (c *Cycle) Path() []int {
	if len(c.edges) == 0 {
		return nil
	}
	incident := make(map[int][]core.Edge, len(c.vertices))
	for _, e := range c.edges {
		incident[e.From] = append(incident[e.From], e)
		if !e.IsLoop() {
			incident[e.To] = append(incident[e.To], e)
		}
	}

	start := c.vertices[0]
	path := []int{start}
	used := make(map[int]bool, len(c.edges))
	for v := start; ; {
		var next *core.Edge
		for i := range incident[v] {
			if !used[incident[v][i].ID] {
				next = &incident[v][i]
				break
			}
		}
		if next == nil {
			break
		}
		used[next.ID] = true
		v = next.Other(v)
		if v == start {
			break
		}
		path = append(path, v)
	}

	return path
}

// String renders the cycle as "[v0 v1 …] w=…".
func (c *Cycle) String() string {
	return fmt.Sprintf("%v w=%s", c.Path(), strconv.FormatFloat(c.weight, 'g', -1, 64))
}

// sortCycles orders cycles by weight, then size, then key.
func sortCycles(cs []*Cycle) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].weight != cs[j].weight {
			return cs[i].weight < cs[j].weight
		}
		if len(cs[i].edges) != len(cs[j].edges) {
			return len(cs[i].edges) < len(cs[j].edges)
		}

		return cs[i].key < cs[j].key
	})
}
