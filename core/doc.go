// Package core provides a thread-safe in-memory weighted undirected graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Integer vertex IDs and stable integer edge IDs (generated 0,1,2,… or
//     supplied with WithEdgeID)
//   - Finite non-negative float64 weights; anything else is ErrInvalidWeight
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v][edgeID] = struct{}{}
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), EdgesBetween(), Neighbors()
// and NeighborIDs() all return sorted results, so algorithms built on top of
// core produce the same answer on every run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int)                  // O(1)
//	HasVertex(id int) bool             // O(1)
//	RemoveVertex(id int) error         // O(deg)
//
//	// Edge lifecycle
//	AddEdge(u, v int, w float64, opts ...EdgeOption) (int, error) // O(1)
//	RemoveEdge(id int) error           // O(1)
//	Edge(id int) (Edge, error)         // O(1)
//
//	// Query
//	Edges() []Edge                     // O(E log E)
//	EdgesBetween(u, v int) []Edge      // O(k log k)
//	Neighbors(id int) ([]Edge, error)  // O(d log d)
//	NeighborIDs(id int) ([]int, error) // O(d log d)
//	Degree(id int) (int, error)        // loops count twice
//
//	// Cloning and views
//	CloneEmpty() *Graph
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//	EdgeSubgraph(g, ids) (*Graph, error)
//
// Edges are returned by value; mutating a returned Edge never affects the graph.
package core
