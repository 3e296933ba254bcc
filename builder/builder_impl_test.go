// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism, and default weights.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/marois/cdk/builder"
	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dfs"
)

// edgeKey identifies an edge by its endpoints, smaller first.
type edgeKey struct{ U, V int }

// edgeWeights returns a map from endpoint pair to weight for all edges in g.
func edgeWeights(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		m[edgeKey{U: u, V: v}] = e.Weight
	}

	return m
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctor     builder.Constructor
		wantV    int
		wantE    int
		wantRank int // -1 skips the check
		mustHave []edgeKey
	}{
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5, wantRank: 1,
			mustHave: []edgeKey{{0, 1}, {3, 4}, {0, 4}}},
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3, wantRank: 0,
			mustHave: []edgeKey{{0, 1}, {1, 2}, {2, 3}}},
		{name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3, wantRank: 0,
			mustHave: []edgeKey{{0, 1}, {0, 2}, {0, 3}}},
		{name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8, wantRank: 4,
			mustHave: []edgeKey{{0, 1}, {0, 3}, {2, 4}}},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6, wantRank: 3,
			mustHave: []edgeKey{{0, 1}, {1, 2}, {2, 3}}},
		{name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6, wantRank: 2,
			mustHave: []edgeKey{{0, 2}, {1, 4}}},
		{name: "Grid(2x3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7, wantRank: 2,
			mustHave: []edgeKey{{0, 1}, {0, 3}, {2, 5}}},
		{name: "FusedRings(6,6)", ctor: builder.FusedRings(6, 6), wantV: 10, wantE: 11, wantRank: 2,
			mustHave: []edgeKey{{0, 5}, {0, 6}, {5, 9}}},
		{name: "FusedRings(6,6,6)", ctor: builder.FusedRings(6, 6, 6), wantV: 14, wantE: 16, wantRank: 3,
			mustHave: []edgeKey{{7, 8}, {8, 10}, {7, 13}}},
		{name: "PlatonicSolid(Tetrahedron)", ctor: builder.PlatonicSolid(builder.Tetrahedron, false),
			wantV: 4, wantE: 6, wantRank: 3, mustHave: []edgeKey{{0, 1}, {2, 3}}},
		{name: "PlatonicSolid(Cube)", ctor: builder.PlatonicSolid(builder.Cube, false),
			wantV: 8, wantE: 12, wantRank: 5, mustHave: []edgeKey{{0, 3}, {3, 7}}},
		{name: "PlatonicSolid(Dodecahedron)", ctor: builder.PlatonicSolid(builder.Dodecahedron, false),
			wantV: 20, wantE: 30, wantRank: 11, mustHave: []edgeKey{{10, 19}}},
		{name: "PlatonicSolid(Tetrahedron,withCenter)", ctor: builder.PlatonicSolid(builder.Tetrahedron, true),
			wantV: 5, wantE: 10, wantRank: 6, mustHave: []edgeKey{{0, 4}, {3, 4}}},
		{name: "RandomSparse_p0(5)", ctor: builder.RandomSparse(5, 0.0), wantV: 5, wantE: 0, wantRank: 0},
		{name: "RandomSparse_p1(5)", ctor: builder.RandomSparse(5, 1.0), wantV: 5, wantE: 10, wantRank: 6},
		{name: "RandomRegular(6,2)", ctor: builder.RandomRegular(6, 2), wantV: 6, wantE: 6, wantRank: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			bopts := []builder.BuilderOption{builder.WithSeed(7)}
			g, err := builder.BuildGraph(nil, bopts, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph(%s) returned error: %v", tc.name, err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices: got %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges: got %d, want %d", got, tc.wantE)
			}

			edges := edgeWeights(g)
			for _, k := range tc.mustHave {
				if w, ok := edges[k]; !ok || w != builder.DefaultEdgeWeight {
					t.Errorf("missing or wrong weight for edge %d—%d: got %g, ok=%v", k.U, k.V, w, ok)
				}
			}

			if tc.wantRank >= 0 {
				rank, err := dfs.CircuitRank(g)
				if err != nil {
					t.Fatalf("CircuitRank: %v", err)
				}
				if rank != tc.wantRank {
					t.Errorf("circuit rank: got %d, want %d", rank, tc.wantRank)
				}
			}

			// determinism: same options give the same edge list, IDs included
			g2, err := builder.BuildGraph(nil, bopts, tc.ctor)
			if err != nil {
				t.Fatalf("second BuildGraph(%s) returned error: %v", tc.name, err)
			}
			a, b := g.Edges(), g2.Edges()
			if len(a) != len(b) {
				t.Fatalf("determinism: %d vs %d edges", len(a), len(b))
			}
			for i := range a {
				if a[i] != b[i] {
					t.Errorf("determinism: edge %d differs: %+v vs %+v", i, a[i], b[i])
				}
			}
		})
	}
}

func TestBuilders_RandomRegularDegrees(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomRegular(10, 3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			t.Fatalf("Degree(%d): %v", v, err)
		}
		if d != 3 {
			t.Errorf("vertex %d has degree %d, want 3", v, d)
		}
	}
}

func TestBuilders_Multigraph(t *testing.T) {
	t.Parallel()
	gopts := []core.GraphOption{core.WithMultiEdges(), core.WithLoops()}
	g, err := builder.BuildGraph(gopts, nil,
		builder.Path(3),
		builder.Parallel(0, 1, 2),
		builder.Loop(2),
	)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if got := len(g.EdgesBetween(0, 1)); got != 3 {
		t.Errorf("EdgesBetween(0,1): got %d, want 3", got)
	}
	if got := g.Stats().LoopCount; got != 1 {
		t.Errorf("LoopCount: got %d, want 1", got)
	}

	rank, err := dfs.CircuitRank(g)
	if err != nil {
		t.Fatalf("CircuitRank: %v", err)
	}
	if rank != 3 {
		t.Errorf("circuit rank: got %d, want 3", rank)
	}
}

func TestBuilders_OffsetIDs(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	if err := builder.Apply(g, nil, builder.Cycle(3)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := builder.Apply(g, []builder.BuilderOption{builder.WithIDOffset(10)}, builder.Cycle(4)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []int{0, 1, 2, 10, 11, 12, 13}
	got := g.Vertices()
	if len(got) != len(want) {
		t.Fatalf("vertices: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertices: got %v, want %v", got, want)
		}
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		gopts []core.GraphOption
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Cycle(2)", nil, nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", nil, nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0x3)", nil, nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"FusedRings()", nil, nil, builder.FusedRings(), builder.ErrTooFewVertices},
		{"FusedRings(6,2)", nil, nil, builder.FusedRings(6, 2), builder.ErrTooFewVertices},
		{"RandomSparse(p=1.5)", nil, nil, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular(odd)", nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", nil, nil, builder.RandomRegular(6, 2), builder.ErrNeedRandSource},
		{"Platonic(unknown)", nil, nil, builder.PlatonicSolid(builder.PlatonicName(99), false), builder.ErrOptionViolation},
		{"Parallel(simple)", nil, nil, builder.Parallel(0, 1, 2), builder.ErrUnsupportedGraphMode},
		{"Loop(simple)", nil, nil, builder.Loop(0), builder.ErrUnsupportedGraphMode},
		{"nil constructor", nil, nil, nil, builder.ErrConstructFailed},
		{"negative weight", nil, []builder.BuilderOption{builder.WithWeightFn(func(_ *rand.Rand) float64 { return -1 })},
			builder.Cycle(3), core.ErrInvalidWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
