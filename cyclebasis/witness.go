package cyclebasis

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/marois/cdk/gf2"
	"github.com/marois/cdk/mst"
)

// computeWitnesses derives one vector per basis cycle such that
// witness[i]·basis[j] = 1 iff i == j over GF(2).
//
// Restricting cycles to the edges outside a spanning tree is a bijection of
// the cycle space onto GF(2)^r, so the r×r matrix M with M[j][k] = 1 when
// basis[j] uses the k-th non-tree edge is invertible. Column i of M⁻¹, spread
// back onto the non-tree edges, is witness[i]. The coefficient of basis[i]
// in the representation of any cycle C is then witness[i]·C.
func (c *component) computeWitnesses() error {
	tree, _, err := mst.Kruskal(c.g)
	if err != nil {
		return fmt.Errorf("cyclebasis: spanning tree: %w", err)
	}
	inTree := make(map[int]bool, len(tree))
	for _, e := range tree {
		inTree[e.ID] = true
	}
	var chords []uint
	for k, e := range c.edges {
		if !inTree[e.ID] {
			chords = append(chords, uint(k))
		}
	}
	r := len(chords)
	if r != len(c.basis) {
		return fmt.Errorf("%w: %d chords for %d basis cycles", ErrRankMismatch, r, len(c.basis))
	}

	rows := make([]*bitset.BitSet, r)
	for j, b := range c.basis {
		rows[j] = bitset.New(uint(r))
		for k, chord := range chords {
			if b.vec.Test(chord) {
				rows[j].Set(uint(k))
			}
		}
	}
	inv, err := gf2.Invert(rows, r)
	if err != nil {
		return fmt.Errorf("cyclebasis: witness matrix: %w", err)
	}

	m := uint(len(c.edges))
	c.witness = make([]*bitset.BitSet, r)
	for i := 0; i < r; i++ {
		w := bitset.New(m)
		for k, chord := range chords {
			if inv[k].Test(uint(i)) {
				w.Set(chord)
			}
		}
		c.witness[i] = w
	}

	return nil
}

// coefficients lists the basis indices in the representation of vec.
func (c *component) coefficients(vec *bitset.BitSet) []int {
	var out []int
	for i, w := range c.witness {
		if gf2.Dot(vec, w) {
			out = append(out, i)
		}
	}

	return out
}
