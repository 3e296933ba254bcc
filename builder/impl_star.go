// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_star.go — Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2. Center is idFn(0); leaves idFn(1..n-1); spokes in leaf order.
//   • Wheel: n ≥ 4. Rim is the cycle idFn(0..n-2) (rim edges first), hub is
//     idFn(n-1) with spokes to the rim in index order.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a rim of n-1 vertices plus a hub.
// With unit weights and n ≥ 5 the n-1 spoke triangles form the unique
// minimum basis; W_4 is K_4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		if err := addRing(g, cfg, methodWheel, seq(0, n-1)); err != nil {
			return err
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
