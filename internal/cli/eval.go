package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/katalvlaran/lvhawkes/hawkes"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		graphPath string
		output    string
		tf        thetaFlags
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Expected event count from every vertex of one graph",
		Long: `Eval decomposes the graph's influence operator once and prints, for every
vertex, the expected total number of events of a cascade it seeds.

A θ at or above the critical θ makes the process explode; eval then fails.

Examples:
  lvhawkes eval --graph g.dat --theta 0.1
  lvhawkes eval --graph g.dat --fraction 0.95 -o labels.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}
			d := a.decomposer()
			theta, err := tf.resolve(cmd, func() (float64, error) { return d.CriticalTheta(g) })
			if err != nil {
				return err
			}
			out, err := hawkes.EvaluateGraph(d, g, theta,
				hawkes.WithEpsilon(a.cfg.Epsilon), hawkes.WithLogger(a.logger))
			if err != nil {
				return err
			}
			x, ok := out.Get()
			if !ok {
				return fmt.Errorf("eval %s at theta=%g: %w", graphPath, theta, errDivergent)
			}

			name := graphName(graphPath)
			rows := make([]graphio.LabelRow, len(x))
			for v, events := range x {
				rows[v] = graphio.LabelRow{Graph: name, Vertex: v, Theta: theta, Events: events}
			}

			return writeTo(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return graphio.WriteLabels(w, rows)
			})
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "CSV path, - for stdout")
	_ = cmd.MarkFlagRequired("graph")
	tf.register(cmd)

	return cmd
}
