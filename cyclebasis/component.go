package cyclebasis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dijkstra"
	"github.com/marois/cdk/gf2"
)

// weightTolerance is the relative slack used when comparing path sums.
const weightTolerance = 1e-9

// sameWeight reports whether a and b are equal up to accumulated rounding.
func sameWeight(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= weightTolerance*scale
}

// ring pairs a cycle with its incidence vector over the component's local
// edge indices.
type ring struct {
	vec   *bitset.BitSet
	cycle *Cycle
}

// component solves one biconnected block with at least one cycle.
//
// Local indices: edges[k] is the k-th edge by ascending ID, vertices[i] the
// i-th vertex ascending. Incidence vectors use edge positions as bits.
type component struct {
	g        *core.Graph
	edges    []core.Edge
	edgeIdx  map[int]int
	vertices []int
	vertIdx  map[int]int
	rank     int

	basis   []ring
	witness []*bitset.BitSet // witness[i] has odd overlap with basis[i] only
}

// componentResult is the published outcome for one block.
type componentResult struct {
	basis     []*Cycle
	essential []*Cycle
	relevant  map[*Cycle]*Cycle
	classes   [][]*Cycle
}

func newComponent(g *core.Graph) *component {
	c := &component{
		g:        g,
		edges:    g.Edges(),
		vertices: g.Vertices(),
	}
	c.edgeIdx = make(map[int]int, len(c.edges))
	for k, e := range c.edges {
		c.edgeIdx[e.ID] = k
	}
	c.vertIdx = make(map[int]int, len(c.vertices))
	for i, v := range c.vertices {
		c.vertIdx[v] = i
	}
	c.rank = len(c.edges) - len(c.vertices) + 1

	return c
}

// solve runs every stage for the block.
func (c *component) solve() (*componentResult, error) {
	cands, err := c.candidates()
	if err != nil {
		return nil, err
	}
	if err := c.selectBasis(cands); err != nil {
		return nil, err
	}
	if err := c.computeWitnesses(); err != nil {
		return nil, err
	}

	res := &componentResult{relevant: make(map[*Cycle]*Cycle)}
	var extra []ring // relevant cycles outside the basis
	seen := make(map[string]*Cycle)
	for _, b := range c.basis {
		res.basis = append(res.basis, b.cycle)
		seen[b.cycle.key] = b.cycle
	}
	for i, b := range c.basis {
		subs, err := c.substitutes(i)
		if err != nil {
			return nil, err
		}
		if len(subs) == 1 && subs[0].cycle.key == b.cycle.key {
			res.essential = append(res.essential, b.cycle)
		}
		for _, s := range subs {
			if known, ok := seen[s.cycle.key]; ok {
				if _, mapped := res.relevant[known]; !mapped {
					res.relevant[known] = b.cycle
				}
				continue
			}
			seen[s.cycle.key] = s.cycle
			res.relevant[s.cycle] = b.cycle
			extra = append(extra, s)
		}
	}
	if res.classes, err = c.classes(extra); err != nil {
		return nil, err
	}

	return res, nil
}

// vecKey renders the set bits of v as a comparable string.
func vecKey(v *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		sb.WriteByte(',')
	}

	return sb.String()
}

// ringOf materialises the cycle behind an incidence vector.
func (c *component) ringOf(vec *bitset.BitSet) ring {
	var es []core.Edge
	for k, ok := vec.NextSet(0); ok; k, ok = vec.NextSet(k + 1) {
		es = append(es, c.edges[k])
	}

	return ring{vec: vec, cycle: newCycle(es)}
}

// candidates builds, for every root, the fundamental cycles of its
// shortest-path tree. Duplicates are dropped and the rest are stably sorted
// by weight, so equal weights keep generation order (roots ascending, then
// closing edge ascending).
func (c *component) candidates() ([]ring, error) {
	m := uint(len(c.edges))
	var out []ring
	seen := make(map[string]bool)

	for _, x := range c.vertices {
		res, err := dijkstra.Dijkstra(c.g, dijkstra.Source(x))
		if err != nil {
			return nil, err
		}
		inTree := make(map[int]bool, len(res.PrevEdge))
		for _, id := range res.PrevEdge {
			inTree[id] = true
		}

		// tree path vectors, filled lazily from the root outwards
		paths := map[int]*bitset.BitSet{x: bitset.New(m)}
		var pathTo func(v int) *bitset.BitSet
		pathTo = func(v int) *bitset.BitSet {
			if p, ok := paths[v]; ok {
				return p
			}
			var chain []int
			for u := v; ; u = res.Prev[u] {
				if _, ok := paths[u]; ok {
					break
				}
				chain = append(chain, u)
			}
			for i := len(chain) - 1; i >= 0; i-- {
				u := chain[i]
				p := paths[res.Prev[u]].Clone()
				p.Set(uint(c.edgeIdx[res.PrevEdge[u]]))
				paths[u] = p
			}

			return paths[v]
		}

		for k, e := range c.edges {
			if inTree[e.ID] {
				continue
			}
			vec := pathTo(e.From).SymmetricDifference(pathTo(e.To))
			vec.Set(uint(k))
			key := vecKey(vec)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, c.ringOf(vec))
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].cycle.weight < out[j].cycle.weight })

	return out, nil
}

// selectBasis greedily keeps the lightest independent candidates.
func (c *component) selectBasis(cands []ring) error {
	var ech gf2.Echelon
	for _, r := range cands {
		if len(c.basis) == c.rank {
			break
		}
		if ech.Add(r.vec) {
			c.basis = append(c.basis, r)
		}
	}
	if len(c.basis) != c.rank {
		return fmt.Errorf("%w: block of %d edges gave %d of %d cycles",
			ErrRankMismatch, len(c.edges), len(c.basis), c.rank)
	}

	return nil
}
