package cyclebasis_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marois/cdk/builder"
	"github.com/marois/cdk/core"
	"github.com/marois/cdk/cyclebasis"
)

// build runs constructors on a fresh graph, failing the test on error.
func build(t *testing.T, gopts []core.GraphOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, cons...)
	require.NoError(t, err)

	return g
}

// solve computes the basis of g, failing the test on error.
func solve(t *testing.T, g cyclebasis.Graph, opts ...cyclebasis.Option) *cyclebasis.Basis {
	t.Helper()
	cb, err := cyclebasis.New(g, opts...)
	require.NoError(t, err)
	b, err := cb.Basis()
	require.NoError(t, err)

	return b
}

func keys(cs []*cyclebasis.Cycle) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Key()
	}

	return out
}

// edgeList is a minimal Graph implementation that skips core validation.
type edgeList struct {
	vs []int
	es []core.Edge
}

func (l edgeList) Vertices() []int    { return l.vs }
func (l edgeList) Edges() []core.Edge { return l.es }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	_, err := cyclebasis.New(nil)
	require.ErrorIs(t, err, cyclebasis.ErrNilGraph)

	var g *core.Graph
	_, err = cyclebasis.New(g)
	require.ErrorIs(t, err, cyclebasis.ErrNilGraph)
}

func TestNew_NegativeWeight(t *testing.T) {
	g := edgeList{vs: []int{0, 1, 2}, es: []core.Edge{
		{ID: 0, From: 0, To: 1, Weight: 1},
		{ID: 1, From: 1, To: 2, Weight: -2},
		{ID: 2, From: 2, To: 0, Weight: 1},
	}}
	_, err := cyclebasis.New(g)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestNew_UnknownVertex(t *testing.T) {
	g := edgeList{vs: []int{0, 1}, es: []core.Edge{{ID: 0, From: 0, To: 7, Weight: 1}}}
	_, err := cyclebasis.New(g)
	require.ErrorIs(t, err, cyclebasis.ErrUnknownVertex)
}

func TestNew_DuplicateEdgeID(t *testing.T) {
	g := edgeList{vs: []int{0, 1, 2}, es: []core.Edge{
		{ID: 4, From: 0, To: 1, Weight: 1},
		{ID: 4, From: 1, To: 2, Weight: 1},
	}}
	_, err := cyclebasis.New(g)
	require.ErrorIs(t, err, core.ErrDuplicateEdgeID)
}

func TestWithParallelism_Panics(t *testing.T) {
	assert.Panics(t, func() {
		opts := cyclebasis.DefaultOptions()
		cyclebasis.WithParallelism(0)(&opts)
	})
	assert.Panics(t, func() {
		_, _ = cyclebasis.New(core.NewGraph(), cyclebasis.WithParallelism(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Fixtures with known answers
// ------------------------------------------------------------------------

func TestBasis_EmptyGraph(t *testing.T) {
	b := solve(t, core.NewGraph())
	assert.Equal(t, 0, b.CircuitRank())
	assert.Empty(t, b.Cycles())
	assert.Empty(t, b.EssentialCycles())
	assert.Empty(t, b.RelevantCycles())
	assert.Empty(t, b.EquivalenceClasses())
	assert.Empty(t, b.WeightVector())
}

func TestBasis_Tree(t *testing.T) {
	b := solve(t, build(t, nil, builder.Star(5)))
	assert.Equal(t, 0, b.Len())
	assert.Len(t, b.AcyclicEdges(), 4)
}

func TestBasis_Hexagon(t *testing.T) {
	b := solve(t, build(t, nil, builder.Cycle(6)))

	require.Equal(t, 1, b.Len())
	c := b.Cycles()[0]
	assert.Equal(t, 6.0, c.Weight())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, c.Path())
	assert.Equal(t, []string{c.Key()}, keys(b.EssentialCycles()))
	assert.Equal(t, map[*cyclebasis.Cycle]*cyclebasis.Cycle{c: c}, b.RelevantCycles())
	assert.Equal(t, [][]*cyclebasis.Cycle{{c}}, b.EquivalenceClasses())
	assert.Equal(t, []float64{6}, b.WeightVector())
	assert.Empty(t, b.AcyclicEdges())
}

func TestBasis_K4(t *testing.T) {
	g := build(t, nil, builder.Complete(4))
	b := solve(t, g)

	assert.Equal(t, 3, b.CircuitRank())
	assert.Equal(t, []string{"0,1,3", "0,2,4", "1,2,5"}, keys(b.Cycles()))
	assert.Equal(t, []float64{3, 3, 3}, b.WeightVector())
	assert.Empty(t, b.EssentialCycles())

	rel := b.RelevantCycles()
	assert.Len(t, rel, 4)
	classes := b.EquivalenceClasses()
	require.Len(t, classes, 1)
	assert.Len(t, classes[0], 3)

	es := g.Edges()
	outer, err := cyclebasis.NewCycle([]core.Edge{es[3], es[4], es[5]})
	require.NoError(t, err)
	sub, ok := b.Substitute(outer)
	require.True(t, ok)
	assert.Equal(t, "0,1,3", sub.Key())
	assert.True(t, b.IsRelevant(outer))
	assert.False(t, b.IsEssential(outer))
}

func TestBasis_Naphthalene(t *testing.T) {
	b := solve(t, build(t, nil, builder.FusedRings(6, 6)))

	assert.Equal(t, []string{"0,1,2,3,4,5", "5,6,7,8,9,10"}, keys(b.Cycles()))
	assert.Equal(t, keys(b.Cycles()), keys(b.EssentialCycles()))
	assert.Len(t, b.RelevantCycles(), 2)
	assert.Len(t, b.EquivalenceClasses(), 2)
}

func TestBasis_Wheel(t *testing.T) {
	b := solve(t, build(t, nil, builder.Wheel(6)))

	assert.Equal(t, []float64{3, 3, 3, 3, 3}, b.WeightVector())
	assert.Len(t, b.EssentialCycles(), 5)
	assert.Len(t, b.RelevantCycles(), 5)
}

func TestBasis_Cube(t *testing.T) {
	b := solve(t, build(t, nil, builder.PlatonicSolid(builder.Cube, false)))

	assert.Equal(t, []float64{4, 4, 4, 4, 4}, b.WeightVector())
	assert.Empty(t, b.EssentialCycles())
	assert.Len(t, b.RelevantCycles(), 6)
	classes := b.EquivalenceClasses()
	require.Len(t, classes, 1)
	assert.Len(t, classes[0], 5)
}

func TestBasis_Dodecahedron(t *testing.T) {
	b := solve(t, build(t, nil, builder.PlatonicSolid(builder.Dodecahedron, false)))

	assert.Equal(t, 11, b.Len())
	for _, w := range b.WeightVector() {
		assert.Equal(t, 5.0, w)
	}
	assert.Empty(t, b.EssentialCycles())
	assert.Len(t, b.RelevantCycles(), 12)
	assert.Len(t, b.EquivalenceClasses(), 1)
}

func TestBasis_Grid(t *testing.T) {
	b := solve(t, build(t, nil, builder.Grid(3, 4)))

	assert.Equal(t, 6, b.Len())
	assert.Len(t, b.EssentialCycles(), 6)
	assert.Len(t, b.EquivalenceClasses(), 6)
}

// theta joins vertices 0 and 1 by unit-weight paths with the given numbers
// of inner vertices.
func theta(t *testing.T, inner ...int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	next := 2
	for _, n := range inner {
		prev := 0
		for i := 0; i < n; i++ {
			_, err := g.AddEdge(prev, next, 1)
			require.NoError(t, err)
			prev = next
			next++
		}
		_, err := g.AddEdge(prev, 1, 1)
		require.NoError(t, err)
	}

	return g
}

// Two short and two long paths: the 4-ring is essential, and the four
// 5-rings each differ from a basis 5-ring by the 4-ring. The two basis
// 5-rings never share a same-weight circuit but both lean on the lighter
// 4-ring, which puts them in one class.
func TestBasis_ClassesShareLighterRing(t *testing.T) {
	b := solve(t, theta(t, 1, 1, 2, 2))

	assert.Equal(t, []float64{4, 5, 5}, b.WeightVector())
	require.Len(t, b.EssentialCycles(), 1)
	assert.Equal(t, 4.0, b.EssentialCycles()[0].Weight())
	assert.Len(t, b.RelevantCycles(), 5)

	classes := b.EquivalenceClasses()
	require.Len(t, classes, 2)
	assert.Len(t, classes[0], 1)
	require.Len(t, classes[1], 2)
	for _, c := range classes[1] {
		assert.Equal(t, 5.0, c.Weight())
		assert.False(t, b.IsEssential(c))
	}
}

// With paths of different lengths the 5-ring and the 6-ring lean on the
// same 4-ring but have different weights, so they stay apart.
func TestBasis_ClassesSplitByWeight(t *testing.T) {
	b := solve(t, theta(t, 1, 1, 2, 3))

	assert.Equal(t, []float64{4, 5, 6}, b.WeightVector())
	assert.Len(t, b.EssentialCycles(), 1)
	assert.Len(t, b.RelevantCycles(), 5)
	classes := b.EquivalenceClasses()
	require.Len(t, classes, 3)
	for _, cl := range classes {
		assert.Len(t, cl, 1)
	}
}

func TestBasis_Disconnected(t *testing.T) {
	g := build(t, nil, builder.Cycle(3))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithIDOffset(10)}, builder.Cycle(4)))
	g.AddVertex(99)

	b := solve(t, g)
	assert.Equal(t, 2, b.CircuitRank())
	assert.Equal(t, []float64{3, 4}, b.WeightVector())
	assert.Len(t, b.EssentialCycles(), 2)
}

// Two squares joined by a bridge: the bridge is reported as acyclic.
func TestBasis_Bridge(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithIDOffset(4)}, builder.Cycle(4)))
	bridge, err := g.AddEdge(0, 4, 1)
	require.NoError(t, err)

	b := solve(t, g)
	assert.Equal(t, 2, b.Len())
	acyclic := b.AcyclicEdges()
	require.Len(t, acyclic, 1)
	assert.Equal(t, bridge, acyclic[0].ID)
}

// ------------------------------------------------------------------------
// 3. Multigraph input
// ------------------------------------------------------------------------

func TestBasis_SelfLoop(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithLoops()}, builder.Cycle(3), builder.Loop(0))
	b := solve(t, g)

	assert.Equal(t, []float64{1, 3}, b.WeightVector())
	loop := b.Cycles()[0]
	assert.Equal(t, 1, loop.Len())
	assert.Equal(t, "3", loop.Key())
	assert.True(t, b.IsEssential(loop))
	assert.Len(t, b.EssentialCycles(), 2)
}

func TestBasis_ParallelEdgesOnTree(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, err := g.AddEdge(0, 1, 2) // e0
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 5) // e1
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1) // e2
	require.NoError(t, err)

	b := solve(t, g)
	require.Equal(t, 1, b.Len())
	c := b.Cycles()[0]
	assert.Equal(t, "0,1", c.Key())
	assert.Equal(t, 7.0, c.Weight())
	assert.True(t, b.IsEssential(c))

	// e0 closes the digon, so only e2 is acyclic
	acyclic := b.AcyclicEdges()
	require.Len(t, acyclic, 1)
	assert.Equal(t, 2, acyclic[0].ID)
}

// The lightest parallel copy stays in the simple graph and the heavier one is
// closed through it.
func TestBasis_ParallelEdgeOnRing(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithMultiEdges()}, builder.Cycle(5))
	heavy, err := g.AddEdge(0, 1, 3)
	require.NoError(t, err)

	b := solve(t, g)
	assert.Equal(t, []float64{4, 5}, b.WeightVector())
	digon := b.Cycles()[0]
	assert.Equal(t, []int{0, heavy}, digon.EdgeIDs())
}

// ------------------------------------------------------------------------
// 4. Lazy evaluation, options, concurrency
// ------------------------------------------------------------------------

func TestCycleBasis_BasisIsShared(t *testing.T) {
	cb, err := cyclebasis.New(build(t, nil, builder.Complete(5)))
	require.NoError(t, err)

	first, err := cb.Basis()
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]*cyclebasis.Basis, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = cb.Basis()
		}()
	}
	wg.Wait()
	for _, b := range got {
		assert.Same(t, first, b)
	}

	ws, err := cb.WeightVector()
	require.NoError(t, err)
	assert.Equal(t, first.WeightVector(), ws)
}

func TestCycleBasis_Accessors(t *testing.T) {
	cb, err := cyclebasis.New(build(t, nil, builder.FusedRings(6, 6)))
	require.NoError(t, err)

	cycles, err := cb.Cycles()
	require.NoError(t, err)
	assert.Len(t, cycles, 2)
	ess, err := cb.EssentialCycles()
	require.NoError(t, err)
	assert.Len(t, ess, 2)
	rel, err := cb.RelevantCycles()
	require.NoError(t, err)
	assert.Len(t, rel, 2)
	cls, err := cb.EquivalenceClasses()
	require.NoError(t, err)
	assert.Len(t, cls, 2)
}

func TestCycleBasis_InputIsCopied(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	cb, err := cyclebasis.New(g)
	require.NoError(t, err)

	// mutations after New do not leak into the computation
	_, err = g.AddEdge(0, 2, 1)
	require.NoError(t, err)

	b, err := cb.Basis()
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, b.WeightVector())
}

func TestCycleBasis_ParallelismIsDeterministic(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithIntWeight(1, 3)},
		builder.RandomSparse(9, 0.5),
	)
	require.NoError(t, err)

	one := solve(t, g, cyclebasis.WithParallelism(1))
	many := solve(t, g, cyclebasis.WithParallelism(8))
	assert.Equal(t, keys(one.Cycles()), keys(many.Cycles()))
	assert.Equal(t, keys(one.EssentialCycles()), keys(many.EssentialCycles()))
	assert.Equal(t, len(one.RelevantCycles()), len(many.RelevantCycles()))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	solve(t, build(t, nil, builder.Cycle(5)), cyclebasis.WithLogger(logger))
	assert.Contains(t, buf.String(), "graph decomposed")
	assert.Contains(t, buf.String(), "cycle basis ready")
}
