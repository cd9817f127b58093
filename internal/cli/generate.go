package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhawkes/builder"
	"github.com/katalvlaran/lvhawkes/graphio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		kind   string
		params builder.Params
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph in the loader format",
		Long: fmt.Sprintf(`Generate builds a named topology and writes it as "N M" followed by one
edge per line, the format every other command reads.

Kinds: %s
  --n is the primary size; --k the secondary one (bipartite right side,
  grid columns, tree depth); --p the edge probability of random.

Examples:
  lvhawkes generate --kind wheel --n 12 -o wheel12.dat
  lvhawkes generate --kind random --n 200 --p 0.02 --seed 7`, strings.Join(builder.Kinds(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := builder.ByName(kind, params)
			if err != nil {
				return err
			}
			g, err := builder.Build(con, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			a.logger.Info("graph generated", "kind", kind, "order", g.Order(), "size", g.Size())

			return writeTo(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return graphio.WriteGraph(w, g)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&kind, "kind", "", "topology name")
	fl.IntVarP(&params.N, "n", "n", 0, "primary size")
	fl.IntVarP(&params.K, "k", "k", 0, "secondary size")
	fl.Float64VarP(&params.P, "p", "p", 0, "edge probability")
	fl.Int64Var(&seed, "seed", 1, "random seed")
	fl.StringVarP(&output, "output", "o", "-", "graph file, - for stdout")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}
