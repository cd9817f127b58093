package harness_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvhawkes/builder"
	"github.com/katalvlaran/lvhawkes/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFit_RecoversLine fits y = 2 + 3a − b exactly.
func TestFit_RecoversLine(t *testing.T) {
	var x [][]float64
	var y []float64
	for a := 0.0; a < 5; a++ {
		for b := 0.0; b < 3; b++ {
			x = append(x, []float64{a, b})
			y = append(y, 2+3*a-b)
		}
	}
	m, err := harness.Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2, m.Intercept, 1e-9)
	assert.InDeltaSlice(t, []float64{3, -1}, m.Coef, 1e-9)
	assert.InDelta(t, 2+3*10-4, m.Predict([]float64{10, 4}), 1e-8)
}

// TestFit_RankDeficient tolerates an all-zero feature column.
func TestFit_RankDeficient(t *testing.T) {
	x := [][]float64{{1, 0}, {2, 0}, {3, 0}, {4, 0}}
	y := []float64{1, 3, 5, 7}
	m, err := harness.Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2, m.Coef[0], 1e-9)
	assert.InDelta(t, 0, m.Coef[1], 1e-9)
	assert.InDelta(t, -1, m.Intercept, 1e-9)
}

func TestFit_Errors(t *testing.T) {
	_, err := harness.Fit(nil, nil)
	require.ErrorIs(t, err, harness.ErrTooFewSamples)
	_, err = harness.Fit([][]float64{{1}, {2}}, []float64{1})
	require.ErrorIs(t, err, harness.ErrDimensionMismatch)
	_, err = harness.Fit([][]float64{{1}, {2, 3}}, []float64{1, 2})
	require.ErrorIs(t, err, harness.ErrDimensionMismatch)
}

func TestMetrics(t *testing.T) {
	truth := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1, harness.R2(truth, truth), 1e-12)
	assert.InDelta(t, 0, harness.MSE(truth, truth), 1e-12)
	assert.InDelta(t, 0.25, harness.MSE(truth, []float64{1, 2, 3, 5}), 1e-12)
	assert.True(t, math.IsNaN(harness.MSE(nil, nil)))
}

func TestTopKOverlap(t *testing.T) {
	truth := []float64{5, 1, 4, 2, 3}
	pred := []float64{0.9, 0.1, 0.2, 0.8, 0.3}

	assert.Equal(t, 1, harness.TopKOverlap(truth, pred, 1))
	// top2 truth {0,2}, pred {0,3}
	assert.Equal(t, 1, harness.TopKOverlap(truth, pred, 2))
	assert.Equal(t, 5, harness.TopKOverlap(truth, pred, 10))
	assert.Equal(t, 0, harness.TopKOverlap(truth, pred, 0))
}

func TestDegreeFeatures(t *testing.T) {
	g, err := builder.Build(builder.Star(5))
	require.NoError(t, err)

	f := harness.DegreeFeatures(g)
	require.Len(t, f, 5)
	assert.InDeltaSlice(t, []float64{1, 1, 1, 1}, f[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.25, 0.0625, 0.015625, 0.00390625}, f[1], 1e-12)
}

func TestOrbitFeatures(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	f, err := harness.OrbitFeatures(m, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {6, 4}}, f)

	all, err := harness.OrbitFeatures(m, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, all[1])

	_, err = harness.OrbitFeatures(m, []int{3})
	require.ErrorIs(t, err, harness.ErrDimensionMismatch)
}

func TestSplit(t *testing.T) {
	train, test := harness.Split(10, 0.3, rand.New(rand.NewSource(1)))
	assert.Len(t, test, 3)
	assert.Len(t, train, 7)
	seen := map[int]bool{}
	for _, i := range append(train, test...) {
		seen[i] = true
	}
	assert.Len(t, seen, 10)
}

// TestEvaluate_PerfectLogLinear: labels 10^(1+x) are fit exactly.
func TestEvaluate_PerfectLogLinear(t *testing.T) {
	var s harness.Samples
	for g := 0; g < 3; g++ {
		for v := 0; v < 12; v++ {
			x := float64(v) / 4
			s.Add(g, []float64{x}, math.Pow(10, 1+x))
		}
	}
	rep, err := harness.Evaluate(&s, harness.Options{TestFraction: 0.3, Seed: 64, TopK: []int{1, 5}})
	require.NoError(t, err)
	assert.Equal(t, 36, rep.Samples)
	assert.InDelta(t, 1, rep.R2, 1e-9)
	assert.InDelta(t, 0, rep.MSE, 1e-12)
	assert.InDelta(t, 1+11.0/8, rep.MeanLog10, 1e-9)
	assert.Equal(t, []float64{1, 5}, rep.TopK)
}

func TestEvaluate_Errors(t *testing.T) {
	var s harness.Samples
	s.Add(0, []float64{1}, 1)
	_, err := harness.Evaluate(&s, harness.Options{TestFraction: 0.3})
	require.ErrorIs(t, err, harness.ErrTooFewSamples)

	s.Add(0, []float64{2}, 0)
	s.Add(0, []float64{3}, 2)
	_, err = harness.Evaluate(&s, harness.Options{TestFraction: 0.3})
	require.ErrorIs(t, err, harness.ErrNonPositiveLabel)

	_, err = harness.Evaluate(&s, harness.Options{TestFraction: 1})
	require.ErrorIs(t, err, harness.ErrTooFewSamples)
}

func TestSpread(t *testing.T) {
	m := &harness.Model{Intercept: 1, Coef: []float64{1}}

	var same, flipped harness.Samples
	for v := 0; v < 8; v++ {
		x := float64(v) / 2
		same.Add(0, []float64{x}, math.Pow(10, 1+x))
		flipped.Add(0, []float64{x}, math.Pow(10, 1-x))
	}
	r2, err := harness.Spread(m, &same)
	require.NoError(t, err)
	assert.InDelta(t, 1, r2, 1e-12)

	// Anti-correlated labels score below the mean predictor: floored at 0.
	r2, err = harness.Spread(m, &flipped)
	require.NoError(t, err)
	assert.Zero(t, r2)

	var ragged harness.Samples
	ragged.Add(0, []float64{1, 2}, 10)
	ragged.Add(0, []float64{1, 2}, 20)
	_, err = harness.Spread(m, &ragged)
	require.ErrorIs(t, err, harness.ErrDimensionMismatch)

	var one harness.Samples
	one.Add(0, []float64{1}, 10)
	_, err = harness.Spread(m, &one)
	require.ErrorIs(t, err, harness.ErrTooFewSamples)
}

func TestSmooth(t *testing.T) {
	rows := [][]float64{{0, 10}, {2, 10}, {4, 10}, {6, 40}}

	got := harness.Smooth(rows, 2)
	assert.Equal(t, [][]float64{{0, 10}, {1, 10}, {3, 10}, {5, 25}}, got)

	got = harness.Smooth(rows, 3)
	assert.Equal(t, []float64{0, 10}, got[0])
	assert.Equal(t, []float64{2, 10}, got[1])
	assert.InDeltaSlice(t, []float64{2, 10}, got[2], 1e-12)
	assert.InDeltaSlice(t, []float64{4, 20}, got[3], 1e-12)

	got = harness.Smooth(rows, 0)
	assert.Equal(t, rows, got)
	got[0][0] = 99
	assert.Equal(t, 0.0, rows[0][0], "rows are copied")
}
