// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(n1, n2) constructors.
//
// Contract:
//   • Complete: n ≥ 1; pairs (i,j), i<j, emitted with i ascending then j.
//   • CompleteBipartite: n1, n2 ≥ 1; left side is idFn(0..n1-1), right side
//     idFn(n1..n1+n2-1); cross edges emitted left-major.
//
// Complexity: O(n²) and O(n1·n2) edges respectively.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor for the complete simple graph K_n.
// K_4 is the smallest graph whose minimum basis is not unique.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		addVertices(g, cfg, n1+n2)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
