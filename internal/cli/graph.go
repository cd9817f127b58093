package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/katalvlaran/lvhawkes/spectral"
)

var errDivergent = errors.New("process diverges")

// thetaFlags selects θ either absolutely or as a fraction of the graph's
// critical θ.
type thetaFlags struct {
	theta    float64
	fraction float64
}

func (t *thetaFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&t.theta, "theta", 0, "branching ratio θ")
	cmd.Flags().Float64Var(&t.fraction, "fraction", 0, "θ as a fraction of the critical θ")
	cmd.MarkFlagsMutuallyExclusive("theta", "fraction")
	cmd.MarkFlagsOneRequired("theta", "fraction")
}

// resolve returns the absolute θ for g.
func (t *thetaFlags) resolve(cmd *cobra.Command, critical func() (float64, error)) (float64, error) {
	if cmd.Flags().Changed("theta") {
		return t.theta, nil
	}
	c, err := critical()
	if err != nil {
		return 0, fmt.Errorf("--fraction: %w", err)
	}

	return t.fraction * c, nil
}

// loadGraph reads a graph file with the run's influence operator.
func (a *app) loadGraph(path string) (*core.Graph, error) {
	return graphio.LoadGraph(path, core.WithInfluence(a.cfg.InfluenceKind()))
}

// decomposer builds a Decomposer wired to the run's logger and metrics.
func (a *app) decomposer() *spectral.Decomposer {
	return spectral.NewDecomposer(
		spectral.WithSolver(a.cfg.SpectralSolver()),
		spectral.WithCacheSize(a.cfg.CacheSize),
		spectral.WithLogger(a.logger),
		spectral.WithObserver(a.metrics),
	)
}

func graphName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), graphio.GraphExt)
}
