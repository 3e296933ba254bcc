// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_fused.go — FusedRings(sizes...) constructor for linear ring systems.
//
// Layout:
//   • The first ring takes indices 0..s0-1 and is emitted like Cycle(s0).
//   • The second ring shares the closing bond (s0-1)—0 of the first.
//   • Every ring of size s sharing bond a—b adds s-2 fresh indices and is
//     emitted along the walk b, n, n+1, ..., a (the shared bond is skipped).
//     The next ring shares the middle bond of that walk.
//
// FusedRings(6, 6) is the naphthalene skeleton, FusedRings(6, 6, 6) anthracene.
// With unit weights every ring is essential.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodFusedRings = "FusedRings"
	minFusedRingSize = 3
)

// FusedRings returns a Constructor for a chain of rings where each ring shares
// exactly one bond with its predecessor.
func FusedRings(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no rings: %w", methodFusedRings, ErrTooFewVertices)
		}
		for i, s := range sizes {
			if s < minFusedRingSize {
				return fmt.Errorf("%s: ring %d size=%d < min=%d: %w",
					methodFusedRings, i, s, minFusedRingSize, ErrTooFewVertices)
			}
		}

		first := seq(0, sizes[0])
		addVertices(g, cfg, sizes[0])
		if err := addRing(g, cfg, methodFusedRings, first); err != nil {
			return err
		}
		// shared bond for the next ring: the closing edge of the previous one
		a, b := first[len(first)-1], first[0]
		next := sizes[0]

		for _, s := range sizes[1:] {
			walk := []int{b}
			for k := 0; k < s-2; k++ {
				g.AddVertex(cfg.idFn(next))
				walk = append(walk, next)
				next++
			}
			walk = append(walk, a)
			for i := 1; i < len(walk); i++ {
				if err := addEdge(g, cfg, methodFusedRings, walk[i-1], walk[i]); err != nil {
					return err
				}
			}
			// the bond opposite the shared one carries the next ring
			k := (len(walk) - 1) / 2
			a, b = walk[k], walk[k+1]
		}

		return nil
	}
}
