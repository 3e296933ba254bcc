// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import (
	"fmt"
)

// IDFn maps a zero-based constructor index to a vertex ID.
// It must be pure and injective; constructors rely on distinct indices giving
// distinct vertices.
type IDFn func(idx int) int

// DefaultIDFn returns idx unchanged: 0→0, 1→1, ...
func DefaultIDFn(idx int) int {
	return idx
}

// OffsetIDFn shifts every index by base: idx→base+idx.
// Useful to place several constructors side by side in one graph.
// Panics if base < 0.
func OffsetIDFn(base int) IDFn {
	if base < 0 {
		panic(fmt.Sprintf("OffsetIDFn: base must be ≥ 0, got %d", base))
	}

	return func(idx int) int {
		return base + idx
	}
}

// WithIDOffset sets the ID scheme to OffsetIDFn(base).
func WithIDOffset(base int) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}
