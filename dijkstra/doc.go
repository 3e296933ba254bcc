// Package dijkstra computes single-source shortest-path trees on
// core.Graph instances with non-negative float64 weights.
//
// The result keeps, for every reached vertex, its distance, its tree parent
// and the ID of the edge used to reach it. Edge IDs matter on multigraphs,
// where a vertex pair may be joined by several edges of different weights;
// PathEdges reconstructs the exact edges of a shortest path.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithTarget(7))
//	if err != nil {
//	    return err
//	}
//	edges, err := res.PathEdges(7)
//
// Ties between equal distances are broken by vertex ID, and relaxation keeps
// the first strictly shorter predecessor found while scanning neighbors by
// edge ID. Two runs on the same graph therefore produce the same tree.
package dijkstra
