// Package gf2 provides linear algebra over the two-element field on top of
// github.com/bits-and-blooms/bitset.
//
// A vector is a *bitset.BitSet whose set bits are its non-zero coordinates;
// addition is symmetric difference. Echelon tracks an incrementally built
// row-echelon basis and answers independence queries, Invert inverts a square
// matrix given as rows, and Dot evaluates the GF(2) inner product.
package gf2

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrSingular indicates a matrix without an inverse.
	ErrSingular = errors.New("gf2: matrix is singular")

	// ErrDimension indicates a row count that does not match the requested size.
	ErrDimension = errors.New("gf2: dimension mismatch")
)

// Echelon is a set of linearly independent vectors kept in row-echelon form.
// Row k carries pivot k (its lowest set bit) and no pivot of rows 0..k-1.
// The zero value is ready to use.
type Echelon struct {
	rows   []*bitset.BitSet
	pivots []uint
}

// Rank returns the number of stored rows.
func (e *Echelon) Rank() int { return len(e.rows) }

// Reduce returns v minus its projection on the stored rows. v is not modified.
// The result is empty iff v lies in the span.
func (e *Echelon) Reduce(v *bitset.BitSet) *bitset.BitSet {
	r := v.Clone()
	for k, row := range e.rows {
		if r.Test(e.pivots[k]) {
			r.InPlaceSymmetricDifference(row)
		}
	}

	return r
}

// Independent reports whether v is outside the span of the stored rows.
func (e *Echelon) Independent(v *bitset.BitSet) bool {
	return e.Reduce(v).Any()
}

// Add inserts v when it is independent and reports whether it did.
func (e *Echelon) Add(v *bitset.BitSet) bool {
	r := e.Reduce(v)
	p, ok := r.NextSet(0)
	if !ok {
		return false
	}
	e.rows = append(e.rows, r)
	e.pivots = append(e.pivots, p)

	return true
}

// Dot returns the GF(2) inner product of a and b.
func Dot(a, b *bitset.BitSet) bool {
	return a.IntersectionCardinality(b)%2 == 1
}

// Invert returns the inverse of the n×n matrix whose i-th row is rows[i],
// using Gauss-Jordan elimination on an augmented identity. rows is not modified.
func Invert(rows []*bitset.BitSet, n int) ([]*bitset.BitSet, error) {
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for size %d", ErrDimension, len(rows), n)
	}
	a := make([]*bitset.BitSet, n)
	inv := make([]*bitset.BitSet, n)
	for i := range rows {
		a[i] = rows[i].Clone()
		inv[i] = bitset.New(uint(n)).Set(uint(i))
	}

	for col := 0; col < n; col++ {
		// 1) find a pivot row at or below col
		piv := -1
		for r := col; r < n; r++ {
			if a[r].Test(uint(col)) {
				piv = r
				break
			}
		}
		if piv < 0 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, col)
		}
		a[col], a[piv] = a[piv], a[col]
		inv[col], inv[piv] = inv[piv], inv[col]

		// 2) clear col in every other row
		for r := 0; r < n; r++ {
			if r != col && a[r].Test(uint(col)) {
				a[r].InPlaceSymmetricDifference(a[col])
				inv[r].InPlaceSymmetricDifference(inv[col])
			}
		}
	}

	return inv, nil
}

// Column extracts column j of m as a vector indexed by row.
func Column(m []*bitset.BitSet, j int) *bitset.BitSet {
	out := bitset.New(uint(len(m)))
	for i, row := range m {
		if row.Test(uint(j)) {
			out.Set(uint(i))
		}
	}

	return out
}
