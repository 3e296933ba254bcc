// Package core defines the central Graph and Edge types, and provides
// thread-safe primitives for building, querying, and cloning weighted
// undirected multigraphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be mutated across
// goroutines with minimal contention.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrInvalidWeight       - weight is negative, NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrDuplicateEdgeID     - explicit edge ID already in use.
//	ErrNegativeEdgeID      - explicit edge ID below zero.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateEdgeID indicates WithEdgeID named an ID that is already taken.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrNegativeEdgeID indicates WithEdgeID named a negative ID.
	ErrNegativeEdgeID = errors.New("core: negative edge ID")
)

// Edge is an undirected, weighted connection between two vertices.
//
// From and To carry no orientation; they only record the order in which the
// endpoints were supplied. A self-loop has From == To.
type Edge struct {
	// ID uniquely identifies this edge in its Graph and survives cloning
	// and subgraph extraction.
	ID int

	// From and To are the endpoint vertex IDs.
	From, To int

	// Weight is a finite, non-negative cost.
	Weight float64
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to v. For a loop it returns v.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	id    int
	hasID bool
}

// WithEdgeID asks AddEdge to use id instead of the next generated ID.
// The generator continues after the largest ID seen so far.
func WithEdgeID(id int) EdgeOption {
	return func(c *edgeConfig) {
		c.id = id
		c.hasID = true
	}
}

// Graph is the core in-memory weighted undirected graph.
//
// muVert protects the vertex set; muEdgeAdj protects the edge catalog,
// the adjacency index and the edge ID generator. When both are needed they
// are taken in that order.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and nextEdgeID

	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	nextEdgeID int              // next generated edge ID
	vertices   map[int]struct{} // vertex set
	edges      map[int]*Edge    // edge ID → Edge

	// adjacency[u][v][edgeID] = struct{}{}, mirrored for u != v.
	adjacency map[int]map[int]map[int]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is simple: no loops and no parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int]map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
	TotalWeight float64
}
