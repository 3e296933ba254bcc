package graphio

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/cyclebasis"
)

// palette colours basis cycles in order; it wraps for larger bases.
var palette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231", "#911eb4",
	"#42d4f4", "#f032e6", "#bfef45", "#469990", "#9a6324",
}

// ToDOT converts g to an undirected Graphviz graph. Edges are labelled with
// their weight. When b is non-nil every basis cycle gets a palette colour;
// edges shared by several cycles are drawn as parallel strokes, and
// acyclic edges are dashed. Output is deterministic.
func ToDOT(g *core.Graph, b *cyclebasis.Basis) string {
	member := map[int][]string{}
	essential := map[int]bool{}
	acyclic := map[int]bool{}
	if b != nil {
		for i, c := range b.Cycles() {
			col := palette[i%len(palette)]
			ess := b.IsEssential(c)
			for _, id := range c.EdgeIDs() {
				member[id] = append(member[id], col)
				essential[id] = essential[id] || ess
			}
		}
		for _, e := range b.AcyclicEdges() {
			acyclic[e.ID] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{
			fmt.Sprintf("label=%q", strconv.FormatFloat(e.Weight, 'g', -1, 64)),
			fmt.Sprintf("id=\"e%d\"", e.ID),
		}
		if cols := member[e.ID]; len(cols) > 0 {
			attrs = append(attrs, fmt.Sprintf("color=%q", strings.Join(cols, ":")))
			if essential[e.ID] {
				attrs = append(attrs, "penwidth=2")
			}
		} else {
			attrs = append(attrs, "color=grey")
		}
		if acyclic[e.ID] {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz runtime.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
