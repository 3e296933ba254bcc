// Package cdk perceives rings in undirected weighted graphs: it computes a
// minimum cycle basis together with the relevant cycles, the essential
// cycles and the classes of interchangeable basis cycles.
//
// The root package holds no code; everything lives in subpackages:
//
//	core/        — thread-safe weighted multigraph with stable edge IDs
//	disjointset/ — union-find over [0,n)
//	gf2/         — bit-packed vectors and row echelon form over GF(2)
//	dijkstra/    — shortest-path trees with edge-level reconstruction
//	dfs/         — traversal, circuit rank, biconnected components
//	mst/         — Kruskal spanning forest
//	cyclebasis/  — the ring perception engine
//	builder/     — deterministic fixture graphs (rings, solids, random)
//	graphio/     — JSON/TOML graph documents, reports, DOT and SVG
//	cmd/ringbasis — command-line front end
//
// Quick ASCII example:
//
//	    0───1───4
//	    │   │   │
//	    3───2───5
//
// Two fused squares: circuit rank 2, both squares essential, the
// six-membered envelope is neither in the basis nor relevant.
//
//	go install github.com/marois/cdk/cmd/ringbasis@latest
package cdk
