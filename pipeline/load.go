package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvhawkes/config"
	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/katalvlaran/lvhawkes/harness"
	"github.com/katalvlaran/lvhawkes/metrics"
	"github.com/katalvlaran/lvhawkes/spectral"
)

// ErrNoGraphs indicates that every graph of the dataset was skipped.
var ErrNoGraphs = errors.New("pipeline: no usable graphs")

// Graph is one loaded dataset entry.
type Graph struct {
	Name     string
	G        *core.Graph
	Features [][]float64 // one row per vertex
	Critical float64     // 1/ρ(A)
}

// Runner holds the shared state of a run: one Decomposer whose cache spans
// every stage, so each graph is decomposed once.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Collector
	dec     *spectral.Decomposer
}

// New builds a Runner. A nil logger discards; a nil collector gets a
// private one.
func New(cfg *config.Config, logger *slog.Logger, collector *metrics.Collector) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}

	return &Runner{
		cfg:     cfg,
		logger:  logger,
		metrics: collector,
		dec: spectral.NewDecomposer(
			spectral.WithSolver(cfg.SpectralSolver()),
			spectral.WithCacheSize(cfg.CacheSize),
			spectral.WithLogger(logger),
			spectral.WithObserver(collector),
		),
	}
}

// Decomposer exposes the run's shared decomposition cache.
func (r *Runner) Decomposer() *spectral.Decomposer { return r.dec }

// Load scans the dataset, then reads every graph, builds its features and
// computes its critical θ in parallel. Entries that fail any step are
// logged and skipped. Returns ErrNoGraphs when nothing survives.
func (r *Runner) Load(ctx context.Context) ([]*Graph, error) {
	graphletDir := r.cfg.GraphletDir
	if r.cfg.Features == config.FeaturesDegree {
		graphletDir = ""
	}
	entries, err := graphio.ScanDataset(r.cfg.GraphDir, graphletDir)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	r.logger.Info("dataset scanned", "graphs", len(entries), "features", r.cfg.Features)

	slots := make([]*Graph, len(entries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Workers)
	for i, e := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := r.loadOne(e)
			if err != nil {
				r.logger.Warn("skipping graph", "graph", e.Name, "error", err)
				r.metrics.GraphDone(metrics.GraphSkipped)
				return nil
			}
			slots[i] = g
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := compact(slots)
	if len(out) == 0 {
		return nil, fmt.Errorf("Load: %d entries: %w", len(entries), ErrNoGraphs)
	}
	r.logger.Info("dataset loaded", "graphs", len(out), "skipped", len(entries)-len(out))

	return out, nil
}

func (r *Runner) loadOne(e graphio.Entry) (*Graph, error) {
	g, err := graphio.LoadGraph(e.GraphPath, core.WithInfluence(r.cfg.InfluenceKind()))
	if err != nil {
		return nil, err
	}

	var features [][]float64
	if r.cfg.Features == config.FeaturesDegree {
		features = harness.DegreeFeatures(g)
	} else {
		if e.OrbitsPath == "" {
			return nil, fmt.Errorf("%s: no orbit file", e.Name)
		}
		counts, err := graphio.LoadOrbitCounts(e.OrbitsPath, g.Order())
		if err != nil {
			return nil, err
		}
		if features, err = harness.OrbitFeatures(counts, r.cfg.Orbits); err != nil {
			return nil, err
		}
	}

	critical, err := r.dec.CriticalTheta(g)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("graph loaded", "graph", e.Name, "order", g.Order(), "size", g.Size(), "critical", critical)

	return &Graph{Name: e.Name, G: g, Features: features, Critical: critical}, nil
}

func compact[T any](slots []*T) []*T {
	out := make([]*T, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

// Run loads the dataset and sweeps it.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, collector *metrics.Collector) (*Result, error) {
	r := New(cfg, logger, collector)
	graphs, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	return r.Sweep(ctx, graphs)
}
