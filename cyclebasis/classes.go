package cyclebasis

import (
	"fmt"

	"github.com/marois/cdk/disjointset"
)

// classes partitions the block's basis into interchangeability classes.
//
// For each relevant cycle C outside the basis, the basis cycles in its
// representation split into H (same weight as C) and L (lighter). C can swap
// with any member of H, so H is merged. Two H sets of the same weight that
// both lean on a lighter basis cycle k are merged as well. Essential cycles
// are never in any H and stay alone.
func (c *component) classes(extra []ring) ([][]*Cycle, error) {
	n := len(c.basis)
	forest, err := disjointset.New(n)
	if err != nil {
		return nil, fmt.Errorf("cyclebasis: classes: %w", err)
	}

	// group[j] is the first basis index whose weight equals basis[j]'s
	group := make([]int, n)
	for j := range c.basis {
		group[j] = j
		if j > 0 && sameWeight(c.basis[j].cycle.weight, c.basis[j-1].cycle.weight) {
			group[j] = group[j-1]
		}
	}

	type anchorKey struct{ lighter, weightGroup int }
	anchor := make(map[anchorKey]int)

	for _, r := range extra {
		var heavy, light []int
		for _, j := range c.coefficients(r.vec) {
			if sameWeight(c.basis[j].cycle.weight, r.cycle.weight) {
				heavy = append(heavy, j)
			} else {
				light = append(light, j)
			}
		}
		if len(heavy) == 0 {
			continue
		}
		for _, j := range heavy[1:] {
			if err := forest.Union(heavy[0], j); err != nil {
				return nil, fmt.Errorf("cyclebasis: classes: %w", err)
			}
		}
		wg := group[heavy[0]]
		for _, k := range light {
			key := anchorKey{lighter: k, weightGroup: wg}
			if first, ok := anchor[key]; ok {
				if err := forest.Union(first, heavy[0]); err != nil {
					return nil, fmt.Errorf("cyclebasis: classes: %w", err)
				}
				continue
			}
			anchor[key] = heavy[0]
		}
	}

	var out [][]*Cycle
	for _, set := range forest.Sets() {
		class := make([]*Cycle, len(set))
		for i, j := range set {
			class[i] = c.basis[j].cycle
		}
		out = append(out, class)
	}

	return out, nil
}
