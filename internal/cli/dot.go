package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marois/cdk/graphio"
)

func (c *CLI) dotCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Print a graph file as Graphviz DOT with its basis cycles coloured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if plain {
				g, err := graphio.Load(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), graphio.ToDOT(g, nil))
				return err
			}

			g, b, err := solveFile(ctx, args[0], c.cfg.Basis.Parallelism)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), graphio.ToDOT(g, b))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "skip the basis and print the bare graph")

	return cmd
}
