// Package cyclebasis computes the minimum cycle basis of an undirected,
// non-negatively weighted graph and classifies its rings.
//
// The cycle space of a graph is the set of edge subsets in which every vertex
// has even degree, a vector space over GF(2) of dimension
// |E| − |V| + components (the circuit rank). A minimum cycle basis is a basis
// of that space whose total weight is as small as possible. On top of the
// basis the package reports:
//
//   - essential cycles: present in every minimum basis;
//   - relevant cycles: present in at least one minimum basis, each mapped to
//     the basis cycle it can replace;
//   - equivalence classes: groups of basis cycles that can be exchanged with
//     one another.
//
// Pipeline:
//
//  1. The input is copied; self-loops become one-edge cycles and surplus
//     parallel edges are closed by a shortest path in the simple remainder.
//  2. The simple graph is split into biconnected blocks. Single-edge blocks
//     are bridges and carry no cycle.
//  3. Each block is solved independently (in parallel): shortest-path-tree
//     candidates, greedy GF(2) independence, witness vectors from the inverted
//     chord matrix, and relevant-cycle enumeration on a parity-doubled graph.
//
// Example usage:
//
//	cb, err := cyclebasis.New(g)
//	if err != nil {
//	    return err
//	}
//	basis, err := cb.Basis()
//	if err != nil {
//	    return err
//	}
//	for _, c := range basis.EssentialCycles() {
//	    fmt.Println(c)
//	}
//
// Determinism: for a fixed graph (same vertex and edge IDs) every list is
// returned in the same order on every run, independent of Parallelism.
package cyclebasis
