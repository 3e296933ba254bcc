// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_path.go — Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges (i-1)—i for i = 1..n-1.
//
// A path is a tree: its circuit rank is zero, which makes it the canonical
// fixture for "no cycles" behavior.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
