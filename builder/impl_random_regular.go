// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// impl_random_regular.go — RandomRegular(n, d) constructor (stub matching).
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Loops and parallel pairs are rejected unless the graph allows them;
//     after maxStubMatchingAttempts failed shuffles → ErrConstructFailed.
//
// Cubic graphs (d = 3) are a good stress fixture for ring perception: every
// vertex has degree three, as in fullerene-like cages.

package builder

import (
	"fmt"

	"github.com/marois/cdk/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that builds a d-regular graph using the
// pairing strategy with bounded retries.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		allowLoops, allowMulti := g.Looped(), g.Multigraph()
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(stubs, allowLoops, allowMulti) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(g, cfg, methodRandomRegular, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing checks consecutive stub pairs against the graph mode.
func validPairing(stubs []int, allowLoops, allowMulti bool) bool {
	seen := make(map[[2]int]bool, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v && !allowLoops {
			return false
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]int{u, v}] && !allowMulti {
			return false
		}
		seen[[2]int{u, v}] = true
	}

	return true
}
