package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/cyclebasis"
	"github.com/marois/cdk/graphio"
)

// basisOpts holds the command-line flags for the basis command.
type basisOpts struct {
	format      string // output format: "text" or "json"
	svg         string // optional SVG output path
	parallelism int    // components solved concurrently
}

func (c *CLI) basisCommand() *cobra.Command {
	def := defaultConfig().Basis
	opts := basisOpts{format: def.Format, parallelism: def.Parallelism}

	cmd := &cobra.Command{
		Use:   "basis [file]",
		Short: "Compute the minimum cycle basis of a graph file (.json or .toml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.cfg.Basis.Format
			}
			if !cmd.Flags().Changed("parallelism") {
				opts.parallelism = c.cfg.Basis.Parallelism
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runBasis(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "also render the graph with its basis to this SVG file")
	cmd.Flags().IntVarP(&opts.parallelism, "parallelism", "p", opts.parallelism, "components solved concurrently")

	return cmd
}

func runBasis(ctx context.Context, w io.Writer, input string, opts basisOpts) error {
	logger := loggerFromContext(ctx)

	g, b, err := solveFile(ctx, input, opts.parallelism)
	if err != nil {
		return err
	}

	switch opts.format {
	case formatJSON:
		err = graphio.WriteReport(b, w)
	default:
		err = writeText(w, b)
	}
	if err != nil {
		return err
	}

	if opts.svg == "" {
		return nil
	}
	svg, err := graphio.RenderSVG(ctx, graphio.ToDOT(g, b))
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.svg, err)
	}
	logger.Infof("Wrote %s", opts.svg)
	return nil
}

// solveFile loads input and computes its basis.
func solveFile(ctx context.Context, input string, parallelism int) (*core.Graph, *cyclebasis.Basis, error) {
	logger := loggerFromContext(ctx)
	if parallelism < 1 {
		return nil, nil, fmt.Errorf("invalid parallelism: %d (must be at least 1)", parallelism)
	}

	g, err := graphio.Load(input)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof("Loaded graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	prog := newProgress(logger)
	cb, err := cyclebasis.New(g,
		cyclebasis.WithParallelism(parallelism),
		cyclebasis.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}
	b, err := cb.Basis()
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Computed cycle basis: %d cycles, %d essential", b.Len(), len(b.EssentialCycles())))

	return g, b, nil
}

// writeText prints one line per basis cycle followed by the classes:
//
//	circuit rank: 2
//	  0  w=6  len=6  relevant=1  essential  [0 1 2 3 4 5]
func writeText(w io.Writer, b *cyclebasis.Basis) error {
	r := graphio.NewReport(b)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "circuit rank: %d\n", r.CircuitRank)
	for i, c := range r.Cycles {
		mark := ""
		if c.Essential {
			mark = "  essential"
		}
		fmt.Fprintf(&buf, "%3d  w=%g  len=%d  relevant=%d%s  %v\n", i, c.Weight, len(c.Edges), c.Relevant, mark, c.Path)
	}
	if len(r.Classes) > 0 {
		buf.WriteString("classes:")
		for _, cl := range r.Classes {
			fmt.Fprintf(&buf, " %v", cl)
		}
		buf.WriteString("\n")
	}
	if len(r.AcyclicEdges) > 0 {
		fmt.Fprintf(&buf, "acyclic edges: %v\n", r.AcyclicEdges)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
