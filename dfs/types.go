// Package dfs defines the visitor hooks of the depth-first walk and the
// connected and biconnected decompositions built on it.
package dfs

import (
	"errors"

	"github.com/marois/cdk/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the walk stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Walk,
// Components, or BiconnectedComponents.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Step is the tree edge through which a vertex was discovered.
type Step struct {
	Edge   core.Edge
	Parent int
}

// Visitor holds the hooks Walk calls. Any hook may be nil. A hook that
// returns an error aborts the walk with that error wrapped.
type Visitor struct {
	// Root is called when a new DFS tree starts at v, before Discover(v).
	Root func(v int) error

	// Discover is called when v turns Gray (pre-order).
	Discover func(v int) error

	// Tree is called for the edge e that discovers child from parent,
	// before Discover(child).
	Tree func(e core.Edge, parent, child int) error

	// Back is called for a non-tree edge e from v to an ancestor still on
	// the stack. Each back edge is reported once, from its lower end.
	Back func(e core.Edge, v, ancestor int) error

	// Finish is called when v turns Black (post-order). via is the tree
	// edge into v, or nil when v is a root.
	Finish func(v int, via *Step) error
}
