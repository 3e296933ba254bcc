// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_cycle.go — Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; Path: n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges i—(i+1) for i ascending; Cycle closes with (n-1)—0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)

		return addRing(g, cfg, methodCycle, seq(0, n))
	}
}

// seq returns [from, from+1, ..., to-1].
func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}
