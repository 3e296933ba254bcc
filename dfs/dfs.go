// Package dfs implements an iterative depth-first walk on core.Graph with
// visitor hooks, and the decompositions built on it.
//
// Key features:
//   - Walk(g, vis): forest walk with Root, Discover, Tree, Back and Finish hooks
//   - Components(g): connected vertex sets
//   - BiconnectedComponents(g): edge sets of the blocks, via low-link numbering
//   - CircuitRank(g): |E| - |V| + c
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of the hooks.
//   - Memory: O(V) for the explicit stack and the colour map.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - any error returned by a hook, wrapped with the hook name and vertex.
package dfs

import (
	"fmt"

	"github.com/marois/cdk/core"
)

// frame is one vertex on the explicit walk stack.
type frame struct {
	v    int
	via  *Step
	nbs  []core.Edge
	next int
}

// dfsWalker encapsulates state during the walk.
type dfsWalker struct {
	graph *core.Graph
	vis   Visitor
	state map[int]int // White/Gray/Black
	stack []frame
}

// Walk runs a depth-first walk over every vertex of g. Roots are taken in
// ascending vertex order and neighbors in ascending edge ID order. Self-loops
// are skipped, as is the tree edge back to the parent; a parallel copy of it
// is reported as a back edge.
//
// The walk keeps its own stack, so long chains cannot overflow the
// goroutine stack.
func Walk(g *core.Graph, vis Visitor) error {
	if g == nil {
		return ErrGraphNil
	}

	w := &dfsWalker{graph: g, vis: vis, state: make(map[int]int, g.VertexCount())}
	for _, root := range g.Vertices() {
		if w.state[root] != White {
			continue
		}
		if vis.Root != nil {
			if err := vis.Root(root); err != nil {
				return fmt.Errorf("dfs: Root hook for %d: %w", root, err)
			}
		}
		if err := w.open(root, nil); err != nil {
			return err
		}
		if err := w.drain(); err != nil {
			return err
		}
	}

	return nil
}

// open turns v Gray and pushes its frame.
func (w *dfsWalker) open(v int, via *Step) error {
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	w.state[v] = Gray
	if w.vis.Discover != nil {
		if err = w.vis.Discover(v); err != nil {
			return fmt.Errorf("dfs: Discover hook for %d: %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{v: v, via: via, nbs: nbs})

	return nil
}

// drain advances the top frame one edge at a time until the tree is done.
func (w *dfsWalker) drain() error {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		v := top.v

		if top.next == len(top.nbs) {
			w.state[v] = Black
			via := top.via
			w.stack = w.stack[:len(w.stack)-1]
			if w.vis.Finish != nil {
				if err := w.vis.Finish(v, via); err != nil {
					return fmt.Errorf("dfs: Finish hook for %d: %w", v, err)
				}
			}
			continue
		}

		e := top.nbs[top.next]
		top.next++
		if e.IsLoop() || (top.via != nil && e.ID == top.via.Edge.ID) {
			continue
		}
		u := e.Other(v)
		switch w.state[u] {
		case White:
			if w.vis.Tree != nil {
				if err := w.vis.Tree(e, v, u); err != nil {
					return fmt.Errorf("dfs: Tree hook for %d: %w", v, err)
				}
			}
			if err := w.open(u, &Step{Edge: e, Parent: v}); err != nil {
				return err
			}
		case Gray:
			if w.vis.Back != nil {
				if err := w.vis.Back(e, v, u); err != nil {
					return fmt.Errorf("dfs: Back hook for %d: %w", v, err)
				}
			}
		}
	}

	return nil
}
