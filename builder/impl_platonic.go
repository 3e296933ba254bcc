// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_platonic.go — PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices are idFn(0..V-1); shell edges follow variants_platonic.go.
//   • withCenter adds hub idFn(V) and spokes to the shell in index order.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		addVertices(g, cfg, n)
		for _, ch := range edges {
			if err := addEdge(g, cfg, methodPlatonicSolid, ch.U, ch.V); err != nil {
				return err
			}
		}

		if withCenter {
			g.AddVertex(cfg.idFn(n))
			for i := 0; i < n; i++ {
				if err := addEdge(g, cfg, methodPlatonicSolid, n, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
