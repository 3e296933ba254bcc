// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_multi.go — Parallel(i, j, k) and Loop(i) constructors.
//
// Both decorate vertices laid down by an earlier constructor (indices go
// through cfg.idFn like everywhere else) and need the matching graph mode:
// core.WithMultiEdges for Parallel, core.WithLoops for Loop.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodParallel = "Parallel"
	methodLoop     = "Loop"
)

// Parallel adds k edges between idFn(i) and idFn(j). If the pair is already
// joined, the new edges are parallel to the existing one.
func Parallel(i, j, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodParallel, k, ErrTooFewVertices)
		}
		if i == j {
			return fmt.Errorf("%s: endpoints coincide (%d): %w", methodParallel, i, ErrOptionViolation)
		}
		if !g.Multigraph() && (k > 1 || len(g.EdgesBetween(cfg.idFn(i), cfg.idFn(j))) > 0) {
			return fmt.Errorf("%s: graph does not allow multi-edges: %w", methodParallel, ErrUnsupportedGraphMode)
		}
		for n := 0; n < k; n++ {
			if err := addEdge(g, cfg, methodParallel, i, j); err != nil {
				return err
			}
		}

		return nil
	}
}

// Loop adds a self-loop at idFn(i).
func Loop(i int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if !g.Looped() {
			return fmt.Errorf("%s: graph does not allow loops: %w", methodLoop, ErrUnsupportedGraphMode)
		}

		return addEdge(g, cfg, methodLoop, i, i)
	}
}
