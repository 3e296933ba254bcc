// Package disjointset implements a disjoint-set forest (union-find) over the
// dense element range [0, n).
//
// Each element stores its parent index or NoParent when it is a root. The
// forest performs no path compression and no union by rank: Union always
// attaches the root of its second argument below the root of its first, so the
// parent links observed through Get are fully predictable. Root walks parent
// links iteratively and terminates on every forest.
//
//	f, _ := disjointset.New(6)
//	_ = f.Union(0, 1)
//	_ = f.Union(2, 3)
//	_ = f.Union(4, 5)
//	f.Sets() // [[0 1] [2 3] [4 5]]
//
// Sets lists every group sorted ascending, groups ordered by their smallest
// member. Indices outside [0, n) are reported as ErrIndexOutOfRange.
//
// A Forest is not safe for concurrent mutation; callers own one per goroutine.
package disjointset
