// Package builder provides deterministic, functional-options style
// constructors for test and benchmark graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        new core.Graph + constructors applied in order.
//     – Apply:             the same against an existing graph.
//   - Topologies (Constructor values):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – PlatonicSolid:     the five Platonic shells, optionally with a hub.
//     – FusedRings:        linear ring systems (naphthalene, anthracene, ...).
//     – RandomSparse, RandomRegular: seeded random graphs.
//     – Parallel, Loop:    multigraph decorations.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, OffsetIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntWeightFn.
//
// Guarantees:
//
//   - Same constructors, options and seed give the same graph, edge IDs
//     included, so cycle keys in golden tests stay stable.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors wrapped with the method name and never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)},
//	    builder.FusedRings(6, 6),
//	)
package builder
