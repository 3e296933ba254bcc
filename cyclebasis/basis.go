package cyclebasis

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dfs"
)

// CycleBasis decomposes a graph once and computes its minimum cycle basis
// lazily. The first call to Basis (or any accessor) solves every block; the
// frozen result is shared by all later calls and is safe for concurrent use.
type CycleBasis struct {
	opts    Options
	rank    int
	forced  []*Cycle      // self-loop and parallel-edge cycles
	blocks  []*core.Graph // biconnected blocks with at least one cycle
	bridges []core.Edge   // edges on no cycle

	basis func() (*Basis, error)
}

// New validates and copies g, reduces parallel edges and loops, and splits
// the remaining simple graph into biconnected blocks.
//
// Errors: ErrNilGraph, ErrUnknownVertex, and wrapped core.ErrInvalidWeight or
// core.ErrDuplicateEdgeID for malformed edges.
func New(g Graph, opts ...Option) (*CycleBasis, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Copy the input; everything after this works on the copy.
	work, err := ingest(g)
	if err != nil {
		return nil, err
	}
	rank, err := dfs.CircuitRank(work)
	if err != nil {
		return nil, err
	}

	// 2) Multigraph reduction.
	forced, err := reduce(work)
	if err != nil {
		return nil, err
	}

	// 3) Biconnected decomposition of the simple remainder.
	parts, err := dfs.BiconnectedComponents(work)
	if err != nil {
		return nil, err
	}
	cb := &CycleBasis{opts: cfg, rank: rank, forced: forced}
	onForced := make(map[int]bool)
	for _, c := range forced {
		for _, e := range c.edges {
			onForced[e.ID] = true
		}
	}
	for _, ids := range parts {
		if len(ids) == 1 {
			// a kept parallel copy on a tree closes its forced cycle
			if onForced[ids[0]] {
				continue
			}
			e, err := work.Edge(ids[0])
			if err != nil {
				return nil, err
			}
			cb.bridges = append(cb.bridges, e)
			continue
		}
		block, err := core.EdgeSubgraph(work, ids)
		if err != nil {
			return nil, err
		}
		cb.blocks = append(cb.blocks, block)
	}
	cb.basis = sync.OnceValues(cb.compute)

	cfg.Logger.Debug("graph decomposed",
		"vertices", work.VertexCount(),
		"rank", rank,
		"forced", len(forced),
		"blocks", len(cb.blocks),
		"bridges", len(cb.bridges))

	return cb, nil
}

// compute solves the blocks in parallel and merges them in block order.
func (cb *CycleBasis) compute() (*Basis, error) {
	start := time.Now()
	results := make([]*componentResult, len(cb.blocks))

	var eg errgroup.Group
	eg.SetLimit(cb.opts.Parallelism)
	for i, block := range cb.blocks {
		eg.Go(func() error {
			res, err := newComponent(block).solve()
			if err != nil {
				return fmt.Errorf("cyclebasis: block %d: %w", i, err)
			}
			results[i] = res
			cb.opts.Logger.Debug("block solved",
				"block", i,
				"edges", block.EdgeCount(),
				"cycles", len(res.basis),
				"essential", len(res.essential),
				"relevant", len(res.relevant))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	b := &Basis{
		rank:     cb.rank,
		bridges:  append([]core.Edge(nil), cb.bridges...),
		relevant: make(map[*Cycle]*Cycle),
		byKey:    make(map[string]*Cycle),
	}
	for _, c := range cb.forced {
		b.cycles = append(b.cycles, c)
		b.essential = append(b.essential, c)
		b.relevant[c] = c
		b.classes = append(b.classes, []*Cycle{c})
	}
	for _, res := range results {
		b.cycles = append(b.cycles, res.basis...)
		b.essential = append(b.essential, res.essential...)
		for k, v := range res.relevant {
			b.relevant[k] = v
		}
		b.classes = append(b.classes, res.classes...)
	}
	for c := range b.relevant {
		b.byKey[c.key] = c
	}
	b.freeze()

	if len(b.cycles) != cb.rank {
		return nil, fmt.Errorf("%w: %d cycles, rank %d", ErrRankMismatch, len(b.cycles), cb.rank)
	}
	cb.opts.Logger.Debug("cycle basis ready",
		"cycles", len(b.cycles),
		"essential", len(b.essential),
		"relevant", len(b.relevant),
		"classes", len(b.classes),
		"elapsed", time.Since(start))

	return b, nil
}

// Basis returns the computed basis, solving it on first use.
// Every call returns the same *Basis (or the same error).
func (cb *CycleBasis) Basis() (*Basis, error) { return cb.basis() }

// Cycles returns the minimum cycle basis, sorted by weight.
func (cb *CycleBasis) Cycles() ([]*Cycle, error) {
	b, err := cb.basis()
	if err != nil {
		return nil, err
	}

	return b.Cycles(), nil
}

// EssentialCycles returns the cycles contained in every minimum basis.
func (cb *CycleBasis) EssentialCycles() ([]*Cycle, error) {
	b, err := cb.basis()
	if err != nil {
		return nil, err
	}

	return b.EssentialCycles(), nil
}

// RelevantCycles maps every relevant cycle to the basis cycle it replaces.
func (cb *CycleBasis) RelevantCycles() (map[*Cycle]*Cycle, error) {
	b, err := cb.basis()
	if err != nil {
		return nil, err
	}

	return b.RelevantCycles(), nil
}

// EquivalenceClasses partitions the basis into interchangeable groups.
func (cb *CycleBasis) EquivalenceClasses() ([][]*Cycle, error) {
	b, err := cb.basis()
	if err != nil {
		return nil, err
	}

	return b.EquivalenceClasses(), nil
}

// WeightVector returns the basis cycle weights in ascending order.
func (cb *CycleBasis) WeightVector() ([]float64, error) {
	b, err := cb.basis()
	if err != nil {
		return nil, err
	}

	return b.WeightVector(), nil
}

// Basis is a frozen minimum cycle basis with its classification.
// All accessors return fresh slices and maps; the *Cycle values are shared.
type Basis struct {
	rank      int
	cycles    []*Cycle
	essential []*Cycle
	relevant  map[*Cycle]*Cycle
	byKey     map[string]*Cycle
	classes   [][]*Cycle
	bridges   []core.Edge
}

// freeze puts every list into canonical order.
func (b *Basis) freeze() {
	sortCycles(b.cycles)
	sortCycles(b.essential)
	for _, cl := range b.classes {
		sortCycles(cl)
	}
	sort.SliceStable(b.classes, func(i, j int) bool {
		x, y := b.classes[i][0], b.classes[j][0]
		if x.weight != y.weight {
			return x.weight < y.weight
		}

		return x.key < y.key
	})
	sort.Slice(b.bridges, func(i, j int) bool { return b.bridges[i].ID < b.bridges[j].ID })
}

// Cycles returns the basis cycles ordered by weight, then size, then key.
func (b *Basis) Cycles() []*Cycle { return append([]*Cycle(nil), b.cycles...) }

// Len returns the number of basis cycles.
func (b *Basis) Len() int { return len(b.cycles) }

// CircuitRank returns |E| − |V| + components of the input graph.
func (b *Basis) CircuitRank() int { return b.rank }

// EssentialCycles returns the basis cycles that no other cycle can replace.
func (b *Basis) EssentialCycles() []*Cycle { return append([]*Cycle(nil), b.essential...) }

// RelevantCycles maps each relevant cycle to the lowest-ordered basis cycle of
// its block that it can replace. Basis cycles map to themselves.
func (b *Basis) RelevantCycles() map[*Cycle]*Cycle {
	out := make(map[*Cycle]*Cycle, len(b.relevant))
	for k, v := range b.relevant {
		out[k] = v
	}

	return out
}

// EquivalenceClasses returns the interchangeability classes of the basis.
func (b *Basis) EquivalenceClasses() [][]*Cycle {
	out := make([][]*Cycle, len(b.classes))
	for i, cl := range b.classes {
		out[i] = append([]*Cycle(nil), cl...)
	}

	return out
}

// WeightVector returns the basis weights in ascending order.
func (b *Basis) WeightVector() []float64 {
	out := make([]float64, len(b.cycles))
	for i, c := range b.cycles {
		out[i] = c.weight
	}
	sort.Float64s(out)

	return out
}

// AcyclicEdges returns the edges that lie on no cycle at all: bridges of
// the reduced graph, minus kept parallel copies that close a forced cycle.
func (b *Basis) AcyclicEdges() []core.Edge { return append([]core.Edge(nil), b.bridges...) }

// Substitute looks c up by edge set and returns the basis cycle it replaces.
func (b *Basis) Substitute(c *Cycle) (*Cycle, bool) {
	if c == nil {
		return nil, false
	}
	k, ok := b.byKey[c.key]
	if !ok {
		return nil, false
	}

	return b.relevant[k], true
}

// IsRelevant reports whether c (by edge set) belongs to some minimum basis.
func (b *Basis) IsRelevant(c *Cycle) bool {
	_, ok := b.Substitute(c)

	return ok
}

// IsEssential reports whether c (by edge set) belongs to every minimum basis.
func (b *Basis) IsEssential(c *Cycle) bool {
	if c == nil {
		return false
	}
	for _, e := range b.essential {
		if e.key == c.key {
			return true
		}
	}

	return false
}
