// SPDX-License-Identifier: MIT

package hawkes_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvhawkes/builder"
	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/hawkes"
	"github.com/katalvlaran/lvhawkes/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExactFrom_MatchesSpectralOnTree compares both evaluators on a depth-2
// star (complete ternary tree of depth 2), seed by seed.
func TestExactFrom_MatchesSpectralOnTree(t *testing.T) {
	g := mustBuild(t, builder.Tree(3, 2))
	dec := mustDecompose(t, g)
	crit, err := dec.CriticalTheta()
	require.NoError(t, err)
	theta := 0.8 * crit

	res, err := hawkes.EvaluateAll(dec, theta)
	require.NoError(t, err)
	want := mustValue(t, res)

	for seed := 0; seed < g.Order(); seed++ {
		out, err := hawkes.ExactFrom(g, seed, theta)
		require.NoError(t, err)
		est := mustValue(t, out)
		assert.InDelta(t, want[seed], est.Events, 1e-8, "seed %d", seed)
		assert.Zero(t, est.ErrorBound)
		assert.Equal(t, g.Order(), est.Support)
	}
}

// TestExactFrom_SingleEdge pins the closed form 1/(1−θ).
func TestExactFrom_SingleEdge(t *testing.T) {
	g := mustGraph(t, 2, core.Edge{U: 0, V: 1})
	out, err := hawkes.ExactFrom(g, 1, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 1/0.7, mustValue(t, out).Events, tol)

	out, err = hawkes.ExactFrom(g, 0, 1)
	require.NoError(t, err)
	assert.True(t, out.IsDivergent())
}

// TestExactFrom_LocalStability: a subcritical component stays finite even
// when another component is supercritical.
func TestExactFrom_LocalStability(t *testing.T) {
	// K5 on 0..4 (ρ=4), path on 5..7 (ρ=√2).
	g := mustBuild(t, builder.Complete(5), builder.Path(3))
	theta := 0.3

	global, err := hawkes.EvaluateAll(mustDecompose(t, g), theta)
	require.NoError(t, err)
	assert.True(t, global.IsDivergent())

	out, err := hawkes.ExactFrom(g, 0, theta)
	require.NoError(t, err)
	assert.True(t, out.IsDivergent())

	out, err = hawkes.ExactFrom(g, 5, theta)
	require.NoError(t, err)
	est := mustValue(t, out)
	assert.Equal(t, 3, est.Support)

	path := mustBuild(t, builder.Path(3))
	ref, err := hawkes.EvaluateAll(mustDecompose(t, path), theta)
	require.NoError(t, err)
	assert.InDelta(t, mustValue(t, ref)[0], est.Events, tol)
}

func TestExactFrom_IsolatedSeed(t *testing.T) {
	g := mustGraph(t, 3, core.Edge{U: 0, V: 1})
	out, err := hawkes.ExactFrom(g, 2, 5)
	require.NoError(t, err)
	est := mustValue(t, out)
	assert.Equal(t, 1.0, est.Events)
	assert.Equal(t, 1, est.Support)
}

// TestExactFrom_Generations: the truncated sum converges from below and stays
// within its reported bound.
func TestExactFrom_Generations(t *testing.T) {
	g := mustBuild(t, builder.Grid(4, 5))
	crit, err := spectral.CriticalTheta(g)
	require.NoError(t, err)
	theta := 0.6 * crit
	seed := 7

	exact, err := hawkes.ExactFrom(g, seed, theta)
	require.NoError(t, err)
	want := mustValue(t, exact).Events

	zero, err := hawkes.ExactFrom(g, seed, theta, hawkes.WithGenerations(0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, mustValue(t, zero).Events)
	assert.Equal(t, 1, mustValue(t, zero).Support)

	prevGap := math.Inf(1)
	for _, k := range []int{1, 2, 4, 8, 16, 32} {
		out, err := hawkes.ExactFrom(g, seed, theta, hawkes.WithGenerations(k))
		require.NoError(t, err)
		est := mustValue(t, out)
		gap := want - est.Events
		assert.GreaterOrEqual(t, gap, -1e-9, "k=%d overshoots", k)
		assert.LessOrEqual(t, gap, est.ErrorBound+1e-9, "k=%d outside bound", k)
		assert.LessOrEqual(t, gap, prevGap+1e-12)
		prevGap = gap
	}
	assert.Less(t, prevGap, 1e-4)
}

func TestExactFrom_GenerationsNormalized(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithInfluence(core.InfluenceNormalized)}, nil,
		builder.Wheel(9))
	require.NoError(t, err)
	theta := 0.5

	exact, err := hawkes.ExactFrom(g, 8, theta)
	require.NoError(t, err)
	res, err := hawkes.EvaluateAll(mustDecompose(t, g), theta)
	require.NoError(t, err)
	assert.InDelta(t, mustValue(t, res)[8], mustValue(t, exact).Events, 1e-8)

	approx, err := hawkes.ExactFrom(g, 8, theta, hawkes.WithGenerations(60))
	require.NoError(t, err)
	assert.InDelta(t, mustValue(t, exact).Events, mustValue(t, approx).Events, 1e-9)
}

func TestExactFrom_Errors(t *testing.T) {
	g := mustGraph(t, 2, core.Edge{U: 0, V: 1})

	_, err := hawkes.ExactFrom(nil, 0, 0.1)
	require.ErrorIs(t, err, hawkes.ErrNilGraph)
	_, err = hawkes.ExactFrom(g, 2, 0.1)
	require.ErrorIs(t, err, hawkes.ErrSeedOutOfRange)
	_, err = hawkes.ExactFrom(g, -1, 0.1)
	require.ErrorIs(t, err, hawkes.ErrSeedOutOfRange)
	_, err = hawkes.ExactFrom(g, 0, math.NaN())
	require.ErrorIs(t, err, hawkes.ErrInvalidTheta)

	_, err = hawkes.ExactFrom(g, 0, 0.1, hawkes.WithSpectralOptions(
		spectral.WithSolver(spectral.SolverJacobi), spectral.WithJacobi(1e-12, 0)))
	require.NoError(t, err)

	assert.Panics(t, func() { hawkes.WithGenerations(-1) })
}

// TestExactFrom_Cancelled stops both the exact solve and the generation sum
// once the context is done.
func TestExactFrom_Cancelled(t *testing.T) {
	g := mustBuild(t, builder.Wheel(12))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hawkes.ExactFrom(g, 0, 0.1, hawkes.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	_, err = hawkes.ExactFrom(g, 0, 0.1, hawkes.WithContext(ctx), hawkes.WithGenerations(3))
	require.ErrorIs(t, err, context.Canceled)

	out, err := hawkes.ExactFrom(g, 0, 0.1, hawkes.WithContext(context.Background()))
	require.NoError(t, err)
	assert.False(t, out.IsDivergent())
}
