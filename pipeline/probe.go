package pipeline

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/katalvlaran/lvhawkes/hawkes"
	"github.com/katalvlaran/lvhawkes/spectral"
)

// Probe runs the exact evaluator from one random seed vertex per graph.
// Seeds are drawn up front from the run seed, so they do not depend on
// scheduling. θ is the configured absolute value when one is set, or the
// probe fraction of the graph's reference θ. Divergent probes are reported
// as rows with empty numbers, not dropped. Cancelling ctx aborts the probe.
func (r *Runner) Probe(ctx context.Context, graphs []*Graph) ([]graphio.ProbeRow, error) {
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	seeds := make([]int, len(graphs))
	for i, g := range graphs {
		seeds[i] = rng.Intn(g.G.Order())
	}
	ref := ReferenceThetas(graphs, r.cfg.Reference)

	slots := make([]*graphio.ProbeRow, len(graphs))
	eg, ctx := errgroup.WithContext(ctx)
	opts := []hawkes.Option{
		hawkes.WithEpsilon(r.cfg.Epsilon),
		hawkes.WithLogger(r.logger),
		hawkes.WithSpectralOptions(spectral.WithSolver(r.cfg.SpectralSolver())),
		hawkes.WithContext(ctx),
	}
	if k := r.cfg.Probe.Generations; k > 0 {
		opts = append(opts, hawkes.WithGenerations(k))
	}
	eg.SetLimit(r.cfg.Workers)
	for i, g := range graphs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			theta := r.cfg.Probe.Fraction * ref[i]
			if r.cfg.Probe.Theta != nil {
				theta = *r.cfg.Probe.Theta
			}
			out, err := hawkes.ExactFrom(g.G, seeds[i], theta, opts...)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				r.logger.Warn("probe failed", "graph", g.Name, "seed", seeds[i], "error", err)
				return nil
			}
			row := &graphio.ProbeRow{Graph: g.Name, Seed: seeds[i], Theta: theta, Divergent: out.IsDivergent()}
			if est, ok := out.Get(); ok {
				row.Events = est.Events
				row.ErrorBound = est.ErrorBound
				row.Support = est.Support
			}
			r.metrics.Probe(row.Divergent)
			slots[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rows := make([]graphio.ProbeRow, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			rows = append(rows, *s)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Probe: %w", ErrNoGraphs)
	}
	r.logger.Info("probe done", "graphs", len(rows))

	return rows, nil
}
