// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

// addVertices inserts idFn(0..n-1) into g. Re-adding an existing vertex is a
// no-op in core.Graph, so constructors may share vertices.
func addVertices(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// addEdge connects idFn(i) and idFn(j) with the next configured weight.
// Errors are wrapped with the calling method's name.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// addRing connects idx[0]-idx[1]-...-idx[k-1]-idx[0] in order.
func addRing(g *core.Graph, cfg builderConfig, method string, idx []int) error {
	for i := range idx {
		if err := addEdge(g, cfg, method, idx[i], idx[(i+1)%len(idx)]); err != nil {
			return err
		}
	}

	return nil
}
