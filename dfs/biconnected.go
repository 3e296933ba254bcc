package dfs

import (
	"sort"

	"github.com/marois/cdk/core"
)

// BiconnectedComponents partitions the non-loop edges of g into blocks
// (maximal biconnected subgraphs) and returns each block as a sorted slice of
// edge IDs. Blocks are listed in the order the walk closes them; roots are
// taken in ascending vertex order and neighbors in ascending edge ID order.
//
// A bridge is a block with a single edge. Parallel edges between two
// vertices end up in the same block, because Walk reports every copy but
// the tree edge as a back edge. Self-loops are ignored.
//
// Tarjan low-link numbering rides on Walk's hooks with an explicit edge stack.
//
// Complexity: O(V + E).
func BiconnectedComponents(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		disc   = make(map[int]int, g.VertexCount())
		low    = make(map[int]int, g.VertexCount())
		clock  int
		edges  []int // edge stack
		blocks [][]int
	)

	err := Walk(g, Visitor{
		Discover: func(v int) error {
			disc[v], low[v] = clock, clock
			clock++
			return nil
		},
		Tree: func(e core.Edge, _, _ int) error {
			edges = append(edges, e.ID)
			return nil
		},
		Back: func(e core.Edge, v, ancestor int) error {
			edges = append(edges, e.ID)
			if disc[ancestor] < low[v] {
				low[v] = disc[ancestor]
			}
			return nil
		},
		Finish: func(v int, via *Step) error {
			if via == nil {
				return nil
			}
			parent := via.Parent
			if low[v] < low[parent] {
				low[parent] = low[v]
			}
			if low[v] < disc[parent] {
				return nil
			}
			// parent separates v's subtree: pop the block down to the tree edge
			var block []int
			for {
				id := edges[len(edges)-1]
				edges = edges[:len(edges)-1]
				block = append(block, id)
				if id == via.Edge.ID {
					break
				}
			}
			sort.Ints(block)
			blocks = append(blocks, block)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func sortedCopy(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}
