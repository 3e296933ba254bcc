package disjointset

import (
	"errors"
	"fmt"
)

// NoParent marks a root element.
const NoParent = -1

var (
	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("disjointset: index out of range")

	// ErrNegativeSize indicates New was called with n < 0.
	ErrNegativeSize = errors.New("disjointset: negative size")
)

// Forest is a disjoint-set forest over n elements.
type Forest struct {
	parent []int
}

// New returns a forest of n singleton sets.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = NoParent
	}

	return &Forest{parent: parent}, nil
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

func (f *Forest) check(i int) error {
	if i < 0 || i >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(f.parent))
	}

	return nil
}

// Get returns the immediate parent of i, or NoParent when i is a root.
func (f *Forest) Get(i int) (int, error) {
	if err := f.check(i); err != nil {
		return 0, err
	}

	return f.parent[i], nil
}

// Root returns the representative of the set containing i.
func (f *Forest) Root(i int) (int, error) {
	if err := f.check(i); err != nil {
		return 0, err
	}

	return f.root(i), nil
}

func (f *Forest) root(i int) int {
	for f.parent[i] != NoParent {
		i = f.parent[i]
	}

	return i
}

// Union merges the sets of i and j; the root of j is attached below the root of i.
// Merging two elements that already share a root is a no-op.
func (f *Forest) Union(i, j int) error {
	if err := f.check(i); err != nil {
		return err
	}
	if err := f.check(j); err != nil {
		return err
	}
	ri, rj := f.root(i), f.root(j)
	if ri != rj {
		f.parent[rj] = ri
	}

	return nil
}

// Same reports whether i and j belong to the same set.
func (f *Forest) Same(i, j int) (bool, error) {
	ri, err := f.Root(i)
	if err != nil {
		return false, err
	}
	rj, err := f.Root(j)
	if err != nil {
		return false, err
	}

	return ri == rj, nil
}

// Count returns the number of disjoint sets.
func (f *Forest) Count() int {
	n := 0
	for _, p := range f.parent {
		if p == NoParent {
			n++
		}
	}

	return n
}

// Sets returns the partition of [0, n). Members of a group are ascending and
// groups appear in the order their smallest member is met by an ascending scan.
func (f *Forest) Sets() [][]int {
	slot := make(map[int]int, len(f.parent))
	var out [][]int
	for i := range f.parent {
		r := f.root(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}

	return out
}
