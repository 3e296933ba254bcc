package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dfs"
)

func addEdges(t *testing.T, g *core.Graph, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 1)
		require.NoError(t, err)
	}
}

func TestBiconnected_TwoTrianglesJoinedByBridge(t *testing.T) {
	g := core.NewGraph()
	addEdges(t, g,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, // e0..e2
		[2]int{2, 3}, // e3 bridge
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3}, // e4..e6
	)

	blocks, err := dfs.BiconnectedComponents(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1, 2}, {3}, {4, 5, 6}}, blocks)
}

func TestBiconnected_SharedArticulationVertex(t *testing.T) {
	// Bow tie: two triangles meeting at vertex 0.
	g := core.NewGraph()
	addEdges(t, g,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0},
	)

	blocks, err := dfs.BiconnectedComponents(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1, 2}, {3, 4, 5}}, blocks)
}

func TestBiconnected_ParallelEdgesShareBlock(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	addEdges(t, g, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 2})

	blocks, err := dfs.BiconnectedComponents(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1}, {2}}, blocks, "loop e3 is ignored")
}

func TestBiconnected_TreeIsAllBridges(t *testing.T) {
	g := buildChain(5)
	g.AddVertex(10)

	blocks, err := dfs.BiconnectedComponents(g)
	require.NoError(t, err)
	assert.Len(t, blocks, 4)
	for _, b := range blocks {
		assert.Len(t, b, 1)
	}
}

func TestBiconnected_NilGraph(t *testing.T) {
	_, err := dfs.BiconnectedComponents(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestComponents_MatchesGonum(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 6}, {6, 7}, {7, 5}}
	g := core.NewGraph()
	addEdges(t, g, pairs...)
	g.AddVertex(8)

	oracle := simple.NewUndirectedGraph()
	for v := int64(0); v <= 8; v++ {
		oracle.AddNode(simple.Node(v))
	}
	for _, p := range pairs {
		oracle.SetEdge(simple.Edge{F: simple.Node(p[0]), T: simple.Node(p[1])})
	}

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Len(t, comps, len(topo.ConnectedComponents(oracle)))
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5, 6, 7}, {8}}, comps)

	rank, err := dfs.CircuitRank(g)
	require.NoError(t, err)
	assert.Equal(t, 1, rank, "6 edges - 9 vertices + 4 components")
}
