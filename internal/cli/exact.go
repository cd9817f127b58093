package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/katalvlaran/lvhawkes/hawkes"
	"github.com/katalvlaran/lvhawkes/spectral"
)

func newExactCmd(a *app) *cobra.Command {
	var (
		graphPath   string
		seed        int
		generations int
		output      string
		tf          thetaFlags
	)
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Expected event count from one seed vertex",
		Long: `Exact solves for a single seed vertex on its connected component only,
without decomposing the whole graph. With --generations it sums the first k
generations of the cascade instead and reports an error bound.

Examples:
  lvhawkes exact --graph g.dat --seed 3 --theta 0.2
  lvhawkes exact --graph g.dat --seed 3 --fraction 0.9 --generations 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generations < 0 {
				return fmt.Errorf("--generations: %d < 0", generations)
			}
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}
			theta, err := tf.resolve(cmd, func() (float64, error) {
				return spectral.CriticalTheta(g, spectral.WithSolver(a.cfg.SpectralSolver()))
			})
			if err != nil {
				return err
			}

			opts := []hawkes.Option{
				hawkes.WithEpsilon(a.cfg.Epsilon),
				hawkes.WithLogger(a.logger),
				hawkes.WithSpectralOptions(spectral.WithSolver(a.cfg.SpectralSolver())),
				hawkes.WithContext(cmd.Context()),
			}
			if cmd.Flags().Changed("generations") {
				opts = append(opts, hawkes.WithGenerations(generations))
			}
			out, err := hawkes.ExactFrom(g, seed, theta, opts...)
			if err != nil {
				return err
			}
			a.metrics.Probe(out.IsDivergent())

			row := graphio.ProbeRow{Graph: graphName(graphPath), Seed: seed, Theta: theta, Divergent: out.IsDivergent()}
			if est, ok := out.Get(); ok {
				row.Events, row.ErrorBound, row.Support = est.Events, est.ErrorBound, est.Support
			}

			return writeTo(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return graphio.WriteProbes(w, []graphio.ProbeRow{row})
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&graphPath, "graph", "g", "", "graph file")
	fl.IntVarP(&seed, "seed", "s", 0, "seed vertex")
	fl.IntVarP(&generations, "generations", "k", 0, "sum only generations 0..k")
	fl.StringVarP(&output, "output", "o", "-", "CSV path, - for stdout")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("seed")
	tf.register(cmd)

	return cmd
}
