package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dfs"
)

// buildChain creates a path graph 0-1-…-(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	g.AddVertex(0)
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	return g
}

// trace records every hook call of a walk.
type trace struct {
	roots, discovered, finished []int
	tree, back                  []int // edge IDs
	parents                     map[int]int
}

func record(t *testing.T, g *core.Graph) *trace {
	t.Helper()
	tr := &trace{parents: map[int]int{}}
	err := dfs.Walk(g, dfs.Visitor{
		Root:     func(v int) error { tr.roots = append(tr.roots, v); return nil },
		Discover: func(v int) error { tr.discovered = append(tr.discovered, v); return nil },
		Tree: func(e core.Edge, parent, child int) error {
			tr.tree = append(tr.tree, e.ID)
			tr.parents[child] = parent
			return nil
		},
		Back: func(e core.Edge, _, _ int) error { tr.back = append(tr.back, e.ID); return nil },
		Finish: func(v int, via *dfs.Step) error {
			tr.finished = append(tr.finished, v)
			if via != nil {
				assert.Equal(t, tr.parents[v], via.Parent)
			}
			return nil
		},
	})
	require.NoError(t, err)

	return tr
}

func TestWalk_NilGraph(t *testing.T) {
	assert.ErrorIs(t, dfs.Walk(nil, dfs.Visitor{}), dfs.ErrGraphNil)
	_, err := dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.CircuitRank(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestWalk_NilHooks(t *testing.T) {
	assert.NoError(t, dfs.Walk(buildChain(4), dfs.Visitor{}))
}

func TestWalk_ChainOrders(t *testing.T) {
	tr := record(t, buildChain(3))
	assert.Equal(t, []int{0}, tr.roots)
	assert.Equal(t, []int{0, 1, 2}, tr.discovered)
	assert.Equal(t, []int{2, 1, 0}, tr.finished)
	assert.Equal(t, []int{0, 1}, tr.tree)
	assert.Empty(t, tr.back)
	assert.Equal(t, 1, tr.parents[2])
}

func TestWalk_SelfLoopIsSkipped(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge(3, 3, 1)
	require.NoError(t, err)

	tr := record(t, g)
	assert.Equal(t, []int{3}, tr.roots)
	assert.Equal(t, []int{3}, tr.finished)
	assert.Empty(t, tr.tree)
	assert.Empty(t, tr.back)
}

func TestWalk_BothEdgeDirections(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 0, 1) // stored as From=1, To=0

	tr := record(t, g)
	assert.Equal(t, []int{0, 1}, tr.discovered)
	assert.Equal(t, 0, tr.parents[1])
}

func TestWalk_BackEdgeReportedOnce(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, _ = g.AddEdge(p[0], p[1], 1)
	}

	tr := record(t, g)
	assert.Equal(t, []int{0, 1}, tr.tree)
	assert.Equal(t, []int{2}, tr.back)
}

func TestWalk_ParallelCopyIsBackEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge(0, 1, 1) // e0 tree
	_, _ = g.AddEdge(0, 1, 2) // e1

	tr := record(t, g)
	assert.Equal(t, []int{0}, tr.tree)
	assert.Equal(t, []int{1}, tr.back)
}

func TestWalk_Forest(t *testing.T) {
	g := buildChain(2)
	g.AddVertex(5)

	tr := record(t, g)
	assert.Equal(t, []int{0, 5}, tr.roots)
	assert.Len(t, tr.finished, 3)
}

func TestWalk_LongChain(t *testing.T) {
	tr := record(t, buildChain(20000))
	assert.Len(t, tr.tree, 19999)
	assert.Equal(t, 0, tr.finished[len(tr.finished)-1])
}

func TestWalk_HookErrors(t *testing.T) {
	boom := errors.New("boom")
	fail := func(at int) func(int) error {
		return func(v int) error {
			if v == at {
				return boom
			}
			return nil
		}
	}

	err := dfs.Walk(buildChain(3), dfs.Visitor{Discover: fail(2)})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Discover hook for 2")

	err = dfs.Walk(buildChain(3), dfs.Visitor{Finish: func(v int, _ *dfs.Step) error { return fail(1)(v) }})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Finish hook for 1")

	err = dfs.Walk(buildChain(3), dfs.Visitor{Root: fail(0)})
	require.ErrorIs(t, err, boom)
}

func TestComponents_ForestAndIsolated(t *testing.T) {
	g := buildChain(3)
	g.AddVertex(9)
	_, _ = g.AddEdge(7, 5, 1)

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {5, 7}, {9}}, comps)
}
