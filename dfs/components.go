package dfs

import "github.com/marois/cdk/core"

// Components returns the connected components of g as vertex sets.
// Each set is sorted ascending and the sets are ordered by their smallest
// vertex. Isolated vertices form singleton components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]int, error) {
	var out [][]int
	err := Walk(g, Visitor{
		Root: func(int) error {
			out = append(out, nil)
			return nil
		},
		Discover: func(v int) error {
			out[len(out)-1] = append(out[len(out)-1], v)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = sortedCopy(out[i])
	}

	return out, nil
}

// CircuitRank returns |E| - |V| + c, the dimension of the cycle space of g.
func CircuitRank(g *core.Graph) (int, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}

	return g.EdgeCount() - g.VertexCount() + len(comps), nil
}
