package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/marois/cdk/cyclebasis"
)

// Report is the serialized view of a Basis.
type Report struct {
	CircuitRank  int       `json:"circuit_rank"`
	Weights      []float64 `json:"weights"`
	Cycles       []Cycle   `json:"cycles"`
	Classes      [][]int   `json:"classes"`       // indices into Cycles
	AcyclicEdges []int     `json:"acyclic_edges"` // edge IDs
}

// Cycle is one basis cycle in a Report.
type Cycle struct {
	Path      []int   `json:"path"`
	Edges     []int   `json:"edges"`
	Weight    float64 `json:"weight"`
	Essential bool    `json:"essential"`
	// Relevant counts the relevant cycles this basis cycle substitutes,
	// itself included.
	Relevant int `json:"relevant"`
}

// NewReport flattens b. Cycle order and class order follow b.
func NewReport(b *cyclebasis.Basis) Report {
	cycles := b.Cycles()
	pos := make(map[string]int, len(cycles))
	r := Report{
		CircuitRank:  b.CircuitRank(),
		Weights:      b.WeightVector(),
		Cycles:       make([]Cycle, len(cycles)),
		Classes:      [][]int{},
		AcyclicEdges: []int{},
	}
	for i, c := range cycles {
		pos[c.Key()] = i
		r.Cycles[i] = Cycle{
			Path:      c.Path(),
			Edges:     c.EdgeIDs(),
			Weight:    c.Weight(),
			Essential: b.IsEssential(c),
		}
	}
	for _, target := range b.RelevantCycles() {
		r.Cycles[pos[target.Key()]].Relevant++
	}
	for _, cl := range b.EquivalenceClasses() {
		idx := make([]int, len(cl))
		for i, c := range cl {
			idx[i] = pos[c.Key()]
		}
		r.Classes = append(r.Classes, idx)
	}
	for _, e := range b.AcyclicEdges() {
		r.AcyclicEdges = append(r.AcyclicEdges, e.ID)
	}

	return r
}

// WriteReport writes the Report of b as indented JSON.
func WriteReport(b *cyclebasis.Basis, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}
