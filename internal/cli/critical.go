package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvhawkes/spectral"
)

func newCriticalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "critical <graph>...",
		Short: "Critical θ of each graph and their mean",
		Long: `Critical prints the spectral radius ρ of each graph's influence operator and
its critical θ = 1/ρ, then the mean critical θ over the graphs that have one.
Graphs without edges never explode and are shown with "-".

Examples:
  lvhawkes critical data/graphs/*.dat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.decomposer()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GRAPH\tORDER\tSIZE\tRADIUS\tCRITICAL")

			var criticals []float64
			for _, path := range args {
				g, err := a.loadGraph(path)
				if err != nil {
					a.logger.Warn("skipping graph", "file", path, "error", err)
					continue
				}
				dec, err := d.Decompose(g)
				if err != nil {
					a.logger.Warn("skipping graph", "file", path, "error", err)
					continue
				}
				crit := "-"
				c, err := dec.CriticalTheta()
				switch {
				case err == nil:
					crit = fmt.Sprintf("%.6g", c)
					criticals = append(criticals, c)
				case !errors.Is(err, spectral.ErrNoCriticalTheta):
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.6g\t%s\n", graphName(path), g.Order(), g.Size(), dec.SpectralRadius(), crit)
			}
			if len(criticals) > 0 {
				fmt.Fprintf(tw, "mean\t\t\t\t%.6g\n", stat.Mean(criticals, nil))
			}

			return tw.Flush()
		},
	}
}
