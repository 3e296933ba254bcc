// Package mst computes minimum spanning trees of undirected weighted
// core.Graph instances with Kruskal's algorithm.
//
// Edges are sorted by weight with a stable sort over the ID-ordered edge list,
// so equal weights are taken in ascending edge ID order and the resulting tree
// is reproducible. Components are tracked in a disjointset.Forest indexed by
// the position of each vertex in g.Vertices().
//
// Errors:
//
//	ErrInvalidGraph  – graph is nil.
//	ErrDisconnected  – no single tree spans every vertex.
package mst
