package pipeline_test

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhawkes/builder"
	"github.com/katalvlaran/lvhawkes/config"
	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/katalvlaran/lvhawkes/metrics"
	"github.com/katalvlaran/lvhawkes/pipeline"
)

// writeDataset materializes builder fixtures as <name>.dat files and, when
// withOrbits is set, synthetic <name>.gfc files alongside.
func writeDataset(t *testing.T, withOrbits bool) (graphDir, graphletDir string) {
	t.Helper()
	root := t.TempDir()
	graphDir = filepath.Join(root, "graphs")
	graphletDir = filepath.Join(root, "graphlets")
	require.NoError(t, os.MkdirAll(graphDir, 0o755))
	require.NoError(t, os.MkdirAll(graphletDir, 0o755))

	fixtures := map[string]builder.Constructor{
		"star":  builder.Star(8),
		"wheel": builder.Wheel(9),
		"path":  builder.Path(10),
		"tree":  builder.Tree(2, 3),
	}
	for name, con := range fixtures {
		g, err := builder.Build(con)
		require.NoError(t, err)
		f, err := os.Create(filepath.Join(graphDir, name+graphio.GraphExt))
		require.NoError(t, err)
		require.NoError(t, graphio.WriteGraph(f, g))
		require.NoError(t, f.Close())

		if withOrbits {
			writeOrbits(t, filepath.Join(graphletDir, name+graphio.OrbitsExt), g)
		}
	}

	return graphDir, graphletDir
}

func writeOrbits(t *testing.T, path string, g *core.Graph) {
	t.Helper()
	var sb strings.Builder
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "%d %d:", e.U, e.V)
		for k := 0; k < graphio.OrbitCount; k++ {
			fmt.Fprintf(&sb, " %d", (e.U*7+e.V*3+k)%5)
		}
		sb.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
}

func ptr(v float64) *float64 { return &v }

func testConfig(graphDir, graphletDir string) *config.Config {
	cfg := config.Default()
	cfg.GraphDir = graphDir
	cfg.GraphletDir = graphletDir
	cfg.Features = config.FeaturesDegree
	cfg.Fractions = config.Range{Lo: 0.5, Hi: 0.9, Count: 5}
	cfg.TopK = []int{1, 3}
	cfg.Workers = 3
	cfg.LabelsOutput = "labels.csv"

	return cfg
}

func TestRun_DegreeFeatures(t *testing.T) {
	gd, _ := writeDataset(t, false)
	cfg := testConfig(gd, "")
	col := metrics.NewCollector()

	res, err := pipeline.Run(context.Background(), cfg, nil, col)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Graphs)
	require.Len(t, res.Summary, 5)
	total := 8 + 9 + 10 + 15
	for i, row := range res.Summary {
		assert.Equal(t, total, row.Samples, "row %d", i)
		assert.Len(t, row.TopK, 2)
		assert.Greater(t, row.MeanLog10, 0.0)
		if i > 0 {
			assert.Greater(t, row.Fraction, res.Summary[i-1].Fraction)
			assert.Greater(t, row.MeanLog10, res.Summary[i-1].MeanLog10)
		}
	}
	assert.Len(t, res.Labels, 5*total)
	for _, l := range res.Labels {
		assert.GreaterOrEqual(t, l.Events, 1.0)
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(col.GraphsTotal.WithLabelValues(metrics.GraphProcessed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(col.DivergentTotal))
	assert.Equal(t, float64(5*total), testutil.ToFloat64(col.SamplesTotal))
	// Load decomposes each graph once; the sweep reuses the cache.
	assert.Equal(t, 4.0, testutil.ToFloat64(col.CacheLookups.WithLabelValues("hit")))
}

// TestRun_SpreadAndCoefficients covers the cross-θ score of one fixed model
// and the per-θ coefficient trajectories.
func TestRun_SpreadAndCoefficients(t *testing.T) {
	gd, _ := writeDataset(t, false)
	cfg := testConfig(gd, "")
	cfg.SpreadFraction = 0.71 // nearest grid point is 0.7
	cfg.SmoothWindow = 2

	res, err := pipeline.Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	require.Len(t, res.Summary, 5)
	require.Len(t, res.Coefficients, 5)

	for i, row := range res.Summary {
		assert.False(t, math.IsNaN(row.Spread), "row %d", i)
		assert.GreaterOrEqual(t, row.Spread, 0.0)
		assert.LessOrEqual(t, row.Spread, 1.0)

		c := res.Coefficients[i]
		assert.Equal(t, row.Theta, c.Theta)
		assert.Equal(t, row.Fraction, c.Fraction)
		require.Len(t, c.Coef, 4) // degree features [d, d², d³, d⁴]
		require.Len(t, c.Smoothed, 4)
		if i == 0 {
			assert.Equal(t, c.Coef, c.Smoothed)
			continue
		}
		prev := res.Coefficients[i-1].Coef
		for j := range c.Coef {
			assert.InDelta(t, (prev[j]+c.Coef[j])/2, c.Smoothed[j], 1e-9*(1+math.Abs(c.Coef[j])))
		}
	}

	// Moving the spread model changes r2_spread but not the per-θ fits.
	cfg.SpreadFraction = 0.9
	other, err := pipeline.Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	for i := range res.Summary {
		assert.Equal(t, res.Summary[i].R2, other.Summary[i].R2)
		assert.Equal(t, res.Coefficients[i].Coef, other.Coefficients[i].Coef)
	}
	// Scored on its own fraction, the spread model beats the mean.
	assert.Greater(t, res.Summary[2].Spread, 0.0)
	assert.Greater(t, other.Summary[4].Spread, 0.0)
}

func TestRun_GraphletFeatures(t *testing.T) {
	gd, gl := writeDataset(t, true)
	cfg := testConfig(gd, gl)
	cfg.Features = config.FeaturesGraphlets
	cfg.LabelsOutput = ""

	res, err := pipeline.Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Graphs)
	assert.Len(t, res.Summary, 5)
	assert.Empty(t, res.Labels)
}

func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	gd, _ := writeDataset(t, false)

	cfg := testConfig(gd, "")
	cfg.Workers = 1
	a, err := pipeline.Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)

	cfg.Workers = 8
	b, err := pipeline.Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Summary, b.Summary)
	assert.Equal(t, a.Labels, b.Labels)
}

// TestRun_MeanReference pushes graphs with a small critical θ past
// divergence: the star has ρ = sqrt(7), far below the wheel's.
func TestRun_MeanReference(t *testing.T) {
	gd, _ := writeDataset(t, false)
	cfg := testConfig(gd, "")
	cfg.Reference = config.ReferenceMean
	cfg.Fractions = config.Range{Lo: 0.9, Hi: 1.0, Count: 3}
	col := metrics.NewCollector()

	res, err := pipeline.Run(context.Background(), cfg, nil, col)
	require.NoError(t, err)
	assert.Greater(t, testutil.ToFloat64(col.DivergentTotal), 0.0)
	for _, row := range res.Summary {
		assert.Less(t, row.Samples, 42)
	}
}

func TestLoad_SkipsBadGraphs(t *testing.T) {
	gd, _ := writeDataset(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(gd, "broken"+graphio.GraphExt), []byte("x y\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(gd, "edgeless"+graphio.GraphExt), []byte("3 0\n"), 0o644))
	col := metrics.NewCollector()

	r := pipeline.New(testConfig(gd, ""), nil, col)
	graphs, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, graphs, 4)
	assert.Equal(t, 2.0, testutil.ToFloat64(col.GraphsTotal.WithLabelValues(metrics.GraphSkipped)))
	for _, g := range graphs {
		assert.Greater(t, g.Critical, 0.0)
		assert.Len(t, g.Features, g.G.Order())
	}
}

func TestLoad_Errors(t *testing.T) {
	empty := t.TempDir()
	_, err := pipeline.New(testConfig(empty, ""), nil, nil).Load(context.Background())
	require.ErrorIs(t, err, graphio.ErrEmptyDataset)

	require.NoError(t, os.WriteFile(filepath.Join(empty, "bad"+graphio.GraphExt), []byte("1 0\n"), 0o644))
	_, err = pipeline.New(testConfig(empty, ""), nil, nil).Load(context.Background())
	require.ErrorIs(t, err, pipeline.ErrNoGraphs)

	gd, _ := writeDataset(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.New(testConfig(gd, ""), nil, nil).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReferenceThetas(t *testing.T) {
	graphs := []*pipeline.Graph{{Critical: 0.2}, {Critical: 0.4}}
	assert.Equal(t, []float64{0.2, 0.4}, pipeline.ReferenceThetas(graphs, config.ReferencePerGraph))
	assert.InDeltaSlice(t, []float64{0.3, 0.3}, pipeline.ReferenceThetas(graphs, config.ReferenceMean), 1e-15)
}

func TestProbe(t *testing.T) {
	gd, _ := writeDataset(t, false)
	cfg := testConfig(gd, "")
	col := metrics.NewCollector()
	r := pipeline.New(cfg, nil, col)
	graphs, err := r.Load(context.Background())
	require.NoError(t, err)

	rows, err := r.Probe(context.Background(), graphs)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, graphs[i].Name, row.Graph)
		assert.False(t, row.Divergent)
		assert.GreaterOrEqual(t, row.Events, 1.0)
		assert.InDelta(t, cfg.Probe.Fraction*graphs[i].Critical, row.Theta, 1e-15)
		assert.Zero(t, row.ErrorBound)
		assert.Equal(t, graphs[i].G.Order(), row.Support)
	}
	assert.Equal(t, 4.0, testutil.ToFloat64(col.ProbesTotal.WithLabelValues("value")))

	again, err := r.Probe(context.Background(), graphs)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestProbe_AbsoluteThetaAndGenerations(t *testing.T) {
	gd, _ := writeDataset(t, false)
	cfg := testConfig(gd, "")
	cfg.Probe = config.Probe{Theta: ptr(0.1), Generations: 2}
	r := pipeline.New(cfg, nil, nil)
	graphs, err := r.Load(context.Background())
	require.NoError(t, err)

	rows, err := r.Probe(context.Background(), graphs)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, 0.1, row.Theta)
		assert.False(t, row.Divergent)
		assert.Greater(t, row.ErrorBound, 0.0)
	}

	cfg.Probe = config.Probe{Theta: ptr(10)}
	rows, err = r.Probe(context.Background(), graphs)
	require.NoError(t, err)
	for _, row := range rows {
		assert.True(t, row.Divergent)
	}

	// θ = 0 is a real value: the cascade is the seed event alone.
	cfg.Probe = config.Probe{Theta: ptr(0), Fraction: 0.9}
	rows, err = r.Probe(context.Background(), graphs)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Zero(t, row.Theta)
		assert.False(t, row.Divergent)
		assert.Equal(t, 1.0, row.Events)
	}
}

func TestProbe_Cancelled(t *testing.T) {
	gd, _ := writeDataset(t, false)
	r := pipeline.New(testConfig(gd, ""), nil, nil)
	graphs, err := r.Load(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Probe(ctx, graphs)
	require.ErrorIs(t, err, context.Canceled)
}
