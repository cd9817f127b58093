package graphio_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvhawkes/builder"
	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/graphio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGraph(t *testing.T) {
	in := "# toy\n4 3\n0 1\n\n1 2 extra\n2 1\n3 0\n"
	g, err := graphio.ReadGraph(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}}, g.Edges())
}

func TestReadGraph_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"empty":       "",
		"bad count":   "x\n0 1\n",
		"zero count":  "0\n",
		"short line":  "3\n0\n",
		"non integer": "3\n0 a\n",
	} {
		_, err := graphio.ReadGraph(strings.NewReader(in))
		assert.ErrorIs(t, err, graphio.ErrMalformed, name)
	}

	_, err := graphio.ReadGraph(strings.NewReader("2\n0 5\n"))
	require.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestWriteGraph_RoundTrip(t *testing.T) {
	g, err := builder.Build(builder.Wheel(6))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))
	assert.True(t, strings.HasPrefix(buf.String(), "6 10\n"))

	back, err := graphio.ReadGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
}

func orbitLine(u, v string, fill int) string {
	cols := make([]string, graphio.OrbitCount)
	for i := range cols {
		cols[i] = "0"
	}
	cols[0] = "1"
	cols[1] = strings.Repeat("1", fill)
	return u + " " + v + " " + strings.Join(cols, " ")
}

func TestReadOrbitCounts(t *testing.T) {
	in := orbitLine("0", "1:", 2) + "\n" + orbitLine("1", "2,", 1) + "\n"
	m, err := graphio.ReadOrbitCounts(strings.NewReader(in), 3)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, graphio.OrbitCount, c)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 2.0, m.At(1, 0))
	assert.Equal(t, 11.0, m.At(0, 1))
	assert.Equal(t, 12.0, m.At(1, 1))
	assert.Equal(t, 1.0, m.At(2, 1))
}

func TestReadOrbitCounts_Malformed(t *testing.T) {
	_, err := graphio.ReadOrbitCounts(strings.NewReader("0 1 2 3\n"), 3)
	require.ErrorIs(t, err, graphio.ErrMalformed)
	_, err = graphio.ReadOrbitCounts(strings.NewReader(orbitLine("0", "9:", 1)), 3)
	require.ErrorIs(t, err, graphio.ErrMalformed)
	_, err = graphio.ReadOrbitCounts(strings.NewReader(""), 0)
	require.ErrorIs(t, err, graphio.ErrMalformed)
}

func TestScanDataset(t *testing.T) {
	root := t.TempDir()
	graphs := filepath.Join(root, "graphs")
	glets := filepath.Join(root, "graphlets")
	require.NoError(t, os.MkdirAll(graphs, 0o755))
	require.NoError(t, os.MkdirAll(glets, 0o755))

	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(graphs, name+".dat"), []byte("2\n0 1\n"), 0o644))
	}
	for _, name := range []string{"a", "b", "orphan"} {
		require.NoError(t, os.WriteFile(filepath.Join(glets, name+".gfc"), nil, 0o644))
	}

	paired, err := graphio.ScanDataset(graphs, glets)
	require.NoError(t, err)
	require.Len(t, paired, 2)
	assert.Equal(t, "a", paired[0].Name)
	assert.Equal(t, filepath.Join(glets, "b.gfc"), paired[1].OrbitsPath)

	all, err := graphio.ScanDataset(graphs, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Empty(t, all[2].OrbitsPath)

	_, err = graphio.ScanDataset(glets, "")
	require.ErrorIs(t, err, graphio.ErrEmptyDataset)

	g, err := graphio.LoadGraph(all[0].GraphPath)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	err := graphio.WriteSummary(&buf, []int{1, 5}, []graphio.SummaryRow{
		{Theta: 0.1, Fraction: 0.7, Samples: 10, MeanLog10: 0.5, R2: 0.9, MSE: 0.01, Spread: 0.8, TopK: []float64{1, 3.5}},
		{Theta: 0.2, Fraction: 0.8, Samples: 10, MeanLog10: 0.6, R2: 0.9, MSE: 0.01, Spread: math.NaN(), TopK: []float64{1, 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "theta,fraction,samples,mean_log10,r2,mse,r2_spread,top1,top5\n"+
		"0.1,0.7,10,0.5,0.9,0.01,0.8,1,3.5\n"+
		"0.2,0.8,10,0.6,0.9,0.01,,1,2\n", buf.String())

	err = graphio.WriteSummary(&buf, []int{1}, []graphio.SummaryRow{{TopK: nil}})
	require.ErrorIs(t, err, graphio.ErrMalformed)
}

func TestWriteCoefficients(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteCoefficients(&buf, []graphio.CoefficientRow{
		{Theta: 0.1, Fraction: 0.7, Intercept: 0.5, Coef: []float64{1, -2}, Smoothed: []float64{1, -2}},
		{Theta: 0.2, Fraction: 0.8, Intercept: 0.25, Coef: []float64{3, 0}, Smoothed: []float64{2, -1}},
	}))
	assert.Equal(t, "theta,fraction,intercept,coef_0,coef_1,smooth_0,smooth_1\n"+
		"0.1,0.7,0.5,1,-2,1,-2\n"+
		"0.2,0.8,0.25,3,0,2,-1\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteCoefficients(&buf, nil))
	assert.Equal(t, "theta,fraction,intercept\n", buf.String())

	err := graphio.WriteCoefficients(&buf, []graphio.CoefficientRow{
		{Coef: []float64{1}, Smoothed: []float64{1}},
		{Coef: []float64{1, 2}, Smoothed: []float64{1, 2}},
	})
	require.ErrorIs(t, err, graphio.ErrMalformed)
}

func TestWriteProbes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteProbes(&buf, []graphio.ProbeRow{
		{Graph: "g", Seed: 3, Theta: 0.2, Events: 1.5, Support: 4},
		{Graph: "h", Seed: 0, Theta: 0.2, Divergent: true},
	}))
	assert.Equal(t,
		"graph,seed,theta,divergent,events,error_bound,support\ng,3,0.2,false,1.5,0,4\nh,0,0.2,true,,,\n",
		buf.String())
}
