package cyclebasis

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dijkstra"
)

// parityGraph doubles the block: vertex (v, p) has ID 2·pos(v)+p. An edge in
// the witness set flips p, any other edge keeps it. Edge k of the block maps
// to parity edges 2k and 2k+1, so k = id/2.
//
// A walk from (x,0) to (x,1) is a closed walk through x that uses the witness
// edges an odd number of times; the shortest ones that repeat no vertex are
// exactly the lightest cycles with odd witness overlap.
func (c *component) parityGraph(witness *bitset.BitSet) (*core.Graph, error) {
	pg := core.NewGraph()
	for i := range c.vertices {
		pg.AddVertex(2 * i)
		pg.AddVertex(2*i + 1)
	}
	for k, e := range c.edges {
		u, v := 2*c.vertIdx[e.From], 2*c.vertIdx[e.To]
		a, b := [2]int{u, v + 1}, [2]int{u + 1, v}
		if !witness.Test(uint(k)) {
			a, b = [2]int{u, v}, [2]int{u + 1, v + 1}
		}
		if _, err := pg.AddEdge(a[0], a[1], e.Weight, core.WithEdgeID(2*k)); err != nil {
			return nil, err
		}
		if _, err := pg.AddEdge(b[0], b[1], e.Weight, core.WithEdgeID(2*k+1)); err != nil {
			return nil, err
		}
	}

	return pg, nil
}

// substitutes returns every simple cycle that can replace basis[i] in a
// minimum basis: cycles C with witness[i]·C = 1 and w(C) = w(basis[i]).
// basis[i] itself is always among them and is returned as the stored ring.
// The result is ordered by cycle key.
func (c *component) substitutes(i int) ([]ring, error) {
	target := c.basis[i].cycle.weight
	witness := c.witness[i]
	pg, err := c.parityGraph(witness)
	if err != nil {
		return nil, err
	}

	// every odd cycle passes through an endpoint of a witness edge
	starts := make(map[int]bool)
	for k, ok := witness.NextSet(0); ok; k, ok = witness.NextSet(k + 1) {
		e := c.edges[k]
		starts[c.vertIdx[e.From]] = true
		starts[c.vertIdx[e.To]] = true
	}
	order := make([]int, 0, len(starts))
	for x := range starts {
		order = append(order, x)
	}
	sort.Ints(order)

	limit := target + weightTolerance*math.Max(1, target)
	found := make(map[string]ring)
	for _, x := range order {
		res, err := dijkstra.Dijkstra(pg, dijkstra.Source(2*x), dijkstra.WithMaxDistance(limit))
		if err != nil {
			return nil, err
		}
		if !res.Reachable(2*x+1) || !sameWeight(res.Dist[2*x+1], target) {
			continue
		}
		if err := c.enumerate(pg, res, x, found); err != nil {
			return nil, err
		}
	}

	own := c.basis[i]
	found[own.cycle.key] = own
	out := make([]ring, 0, len(found))
	for _, r := range found {
		out = append(out, r)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].cycle.key < out[b].cycle.key })

	return out, nil
}

// enumerate walks every shortest (x,1)→(x,0) path backwards through the
// predecessor DAG of res and records those that visit each block vertex once.
func (c *component) enumerate(pg *core.Graph, res *dijkstra.Result, x int, found map[string]ring) error {
	src, dst := 2*x, 2*x+1
	m := uint(len(c.edges))
	used := map[int]bool{x: true}
	var picked []int // block edge positions along the current partial path

	var walk func(node int) error
	walk = func(node int) error {
		nbs, err := pg.Neighbors(node)
		if err != nil {
			return err
		}
		for _, e := range nbs {
			prev := e.Other(node)
			if !res.Reachable(prev) || !sameWeight(res.Dist[prev]+e.Weight, res.Dist[node]) {
				continue
			}
			k := e.ID / 2
			if prev == src {
				if len(picked) == 0 {
					continue // a single edge cannot close a cycle
				}
				vec := bitset.New(m)
				for _, p := range picked {
					vec.Set(uint(p))
				}
				vec.Set(uint(k))
				if r := c.ringOf(vec); found[r.cycle.key].cycle == nil {
					found[r.cycle.key] = r
				}
				continue
			}
			base := prev / 2
			if used[base] {
				continue
			}
			used[base] = true
			picked = append(picked, k)
			if err := walk(prev); err != nil {
				return err
			}
			picked = picked[:len(picked)-1]
			used[base] = false
		}

		return nil
	}

	return walk(dst)
}
