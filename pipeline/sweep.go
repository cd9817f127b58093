package pipeline

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvhawkes/config"
	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/katalvlaran/lvhawkes/harness"
	"github.com/katalvlaran/lvhawkes/hawkes"
	"github.com/katalvlaran/lvhawkes/metrics"
	"github.com/katalvlaran/lvhawkes/spectral"
)

// Result is the outcome of a sweep.
type Result struct {
	Summary      []graphio.SummaryRow
	Coefficients []graphio.CoefficientRow // one per summary row
	Labels       []graphio.LabelRow       // only when the run asks for labels
	Graphs       int                      // graphs swept
}

// graphSweep holds one graph's labels for every fraction; nil entries are
// divergent θ.
type graphSweep struct {
	thetas []float64
	labels [][]float64
}

// ReferenceThetas returns, per graph, the θ that fraction 1 maps to: the
// graph's own critical θ, or the mean over all graphs.
func ReferenceThetas(graphs []*Graph, mode string) []float64 {
	ref := make([]float64, len(graphs))
	for i, g := range graphs {
		ref[i] = g.Critical
	}
	if mode == config.ReferenceMean {
		m := stat.Mean(ref, nil)
		for i := range ref {
			ref[i] = m
		}
	}

	return ref
}

// Sweep labels every vertex of every graph at each fraction of the
// configured grid and scores each fraction with the regression harness.
// The model fitted at the grid point nearest spread_fraction is also scored
// against every fraction (r2_spread), and each fraction's coefficients are
// kept raw and smoothed over smooth_window fractions. A fraction whose
// surviving samples cannot be scored is logged and left out of the summary.
func (r *Runner) Sweep(ctx context.Context, graphs []*Graph) (*Result, error) {
	fractions, err := spectral.Fractions(r.cfg.Fractions.Lo, r.cfg.Fractions.Hi, r.cfg.Fractions.Count)
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	ref := ReferenceThetas(graphs, r.cfg.Reference)

	slots := make([]*graphSweep, len(graphs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Workers)
	for i, g := range graphs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := r.sweepOne(g, ref[i])
			if err != nil {
				r.logger.Warn("skipping graph", "graph", g.Name, "error", err)
				r.metrics.GraphDone(metrics.GraphSkipped)
				return nil
			}
			r.metrics.GraphDone(metrics.GraphProcessed)
			slots[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, s := range slots {
		if s != nil {
			res.Graphs++
		}
	}
	if res.Graphs == 0 {
		return nil, fmt.Errorf("Sweep: %w", ErrNoGraphs)
	}

	opts := harness.Options{TestFraction: r.cfg.TestFraction, Seed: r.cfg.Seed, TopK: r.cfg.TopK}
	spreadAt := nearest(fractions, r.cfg.SpreadFraction)
	spreadModel := r.spreadModel(slots, graphs, spreadAt, fractions[spreadAt], opts)

	var coef [][]float64
	for fi, frac := range fractions {
		samples, thetas := samplesAt(slots, graphs, fi)
		if samples.Len() == 0 {
			r.logger.Debug("fraction fully divergent", "fraction", frac)
			continue
		}
		if r.cfg.LabelsOutput != "" {
			res.Labels = append(res.Labels, labelsAt(slots, graphs, fi)...)
		}
		rep, err := harness.Evaluate(samples, opts)
		if err != nil {
			r.logger.Warn("fraction not scored", "fraction", frac, "samples", samples.Len(), "error", err)
			continue
		}
		r.metrics.Samples(samples.Len())

		spread := math.NaN()
		if spreadModel != nil {
			if spread, err = harness.Spread(spreadModel, samples); err != nil {
				r.logger.Warn("spread not scored", "fraction", frac, "error", err)
				spread = math.NaN()
			}
		}
		theta := stat.Mean(thetas, nil)
		res.Summary = append(res.Summary, graphio.SummaryRow{
			Theta:     theta,
			Fraction:  frac,
			Samples:   rep.Samples,
			MeanLog10: rep.MeanLog10,
			R2:        rep.R2,
			MSE:       rep.MSE,
			Spread:    spread,
			TopK:      rep.TopK,
		})
		res.Coefficients = append(res.Coefficients, graphio.CoefficientRow{
			Theta: theta, Fraction: frac, Intercept: rep.Model.Intercept, Coef: rep.Model.Coef,
		})
		coef = append(coef, rep.Model.Coef)
	}
	for i, sm := range harness.Smooth(coef, r.cfg.SmoothWindow) {
		res.Coefficients[i].Smoothed = sm
	}
	r.logger.Info("sweep done", "graphs", res.Graphs, "fractions", len(fractions), "scored", len(res.Summary))

	return res, nil
}

// spreadModel fits the model every fraction's r2_spread is scored with. It
// returns nil, after logging, when that fraction cannot be fit.
func (r *Runner) spreadModel(slots []*graphSweep, graphs []*Graph, fi int, frac float64, opts harness.Options) *harness.Model {
	samples, _ := samplesAt(slots, graphs, fi)
	if samples.Len() == 0 {
		r.logger.Warn("spread fraction fully divergent", "fraction", frac)
		return nil
	}
	rep, err := harness.Evaluate(samples, opts)
	if err != nil {
		r.logger.Warn("spread model not fit", "fraction", frac, "error", err)
		return nil
	}
	r.logger.Debug("spread model fit", "fraction", frac, "r2", rep.R2)

	return rep.Model
}

// samplesAt gathers the (features, label) rows of fraction fi over every
// graph that converged there, plus the θ each graph used.
func samplesAt(slots []*graphSweep, graphs []*Graph, fi int) (*harness.Samples, []float64) {
	samples := &harness.Samples{}
	var thetas []float64
	for gi, s := range slots {
		if s == nil || s.labels[fi] == nil {
			continue
		}
		thetas = append(thetas, s.thetas[fi])
		for v, y := range s.labels[fi] {
			samples.Add(gi, graphs[gi].Features[v], y)
		}
	}

	return samples, thetas
}

func labelsAt(slots []*graphSweep, graphs []*Graph, fi int) []graphio.LabelRow {
	var out []graphio.LabelRow
	for gi, s := range slots {
		if s == nil || s.labels[fi] == nil {
			continue
		}
		for v, y := range s.labels[fi] {
			out = append(out, graphio.LabelRow{Graph: graphs[gi].Name, Vertex: v, Theta: s.thetas[fi], Events: y})
		}
	}

	return out
}

// nearest returns the index of the grid value closest to x; ties go to the
// lower index.
func nearest(grid []float64, x float64) int {
	best := 0
	for i, v := range grid {
		if math.Abs(v-x) < math.Abs(grid[best]-x) {
			best = i
		}
	}

	return best
}

func (r *Runner) sweepOne(g *Graph, ref float64) (*graphSweep, error) {
	dec, err := r.dec.Decompose(g.G)
	if err != nil {
		return nil, err
	}
	thetas, err := spectral.ThetaGrid(ref, r.cfg.Fractions.Lo, r.cfg.Fractions.Hi, r.cfg.Fractions.Count)
	if err != nil {
		return nil, err
	}

	points, err := hawkes.Sweep(dec, thetas, hawkes.WithEpsilon(r.cfg.Epsilon), hawkes.WithLogger(r.logger))
	if err != nil {
		return nil, err
	}
	out := &graphSweep{thetas: thetas, labels: make([][]float64, len(points))}
	for i, p := range points {
		if x, ok := p.Result.Get(); ok {
			out.labels[i] = x
			continue
		}
		r.metrics.Divergent()
	}

	return out, nil
}
