// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j, each kept
//     independently with probability p.
//   - If g.Multigraph(), every kept pair gets one more parallel edge with
//     probability p (trial right after the pair).
//   - If g.Looped(), every vertex gets a self-loop with probability p
//     (trials after all pairs, i ascending).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order is fixed, so a given seed always yields the same edge IDs.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// p ∈ {0,1} is decided without consuming the RNG
		trial := func() bool {
			if cfg.rng == nil || p == probMin || p == probMax {
				return p == probMax
			}

			return cfg.rng.Float64() < p
		}

		addVertices(g, cfg, n)
		multi := g.Multigraph()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
				if multi && trial() {
					if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
						return err
					}
				}
			}
		}
		if g.Looped() {
			for i := 0; i < n; i++ {
				if !trial() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
