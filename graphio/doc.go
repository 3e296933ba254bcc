// Package graphio moves graphs and cycle bases in and out of the engine.
//
// Input documents list vertices and weighted edges:
//
//	{
//	  "vertices": [0, 1, 2],
//	  "edges": [
//	    {"from": 0, "to": 1, "weight": 1.5},
//	    {"id": 7, "from": 1, "to": 2}
//	  ]
//	}
//
// The same shape is accepted as TOML ([[edges]] tables). Omitted weights
// default to 1, omitted IDs are generated by core.Graph. Loops and parallel
// edges switch the decoded graph into the matching core mode.
//
// Output is either a Report (JSON-friendly view of a Basis) or Graphviz DOT
// with basis cycles coloured, which RenderSVG turns into SVG.
package graphio
