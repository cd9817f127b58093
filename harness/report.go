package harness

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Samples accumulates (features, label) rows tagged with the graph they
// came from. Top-k overlap is scored per graph.
type Samples struct {
	Group []int
	X     [][]float64
	Y     []float64
}

// Add appends one row.
func (s *Samples) Add(group int, x []float64, y float64) {
	s.Group = append(s.Group, group)
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

// Len returns the number of rows.
func (s *Samples) Len() int { return len(s.Y) }

// Options controls Evaluate.
type Options struct {
	TestFraction float64 // share of rows held out for R²/MSE, in (0,1)
	Seed         int64   // split seed
	TopK         []int
}

// Report is the score of one labelled sample set.
type Report struct {
	Samples   int
	MeanLog10 float64
	R2        float64
	MSE       float64
	TopK      []float64 // mean overlap per entry of Options.TopK
	Model     *Model
}

// Evaluate fits OLS on log10 labels over a seeded train split, scores R² and
// MSE on the held-out rows, and averages top-k overlap across groups using
// the fitted model on every row.
func Evaluate(s *Samples, opts Options) (*Report, error) {
	n := s.Len()
	if n < 3 {
		return nil, fmt.Errorf("Evaluate: %d rows: %w", n, ErrTooFewSamples)
	}
	if !(opts.TestFraction > 0 && opts.TestFraction < 1) {
		return nil, fmt.Errorf("Evaluate: test fraction %g: %w", opts.TestFraction, ErrTooFewSamples)
	}
	logY, err := logLabels(s.Y)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}

	train, test := Split(n, opts.TestFraction, rand.New(rand.NewSource(opts.Seed)))
	if len(train) == 0 || len(test) == 0 {
		return nil, fmt.Errorf("Evaluate: split %d/%d: %w", len(train), len(test), ErrTooFewSamples)
	}
	model, err := Fit(pick(s.X, train), pickF(logY, train))
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	testY := pickF(logY, test)
	predY := model.PredictAll(pick(s.X, test))

	rep := &Report{
		Samples:   n,
		MeanLog10: stat.Mean(logY, nil),
		R2:        R2(testY, predY),
		MSE:       MSE(testY, predY),
		TopK:      make([]float64, len(opts.TopK)),
		Model:     model,
	}

	groups := byGroup(s.Group)
	for gi, k := range opts.TopK {
		var sum float64
		for _, rows := range groups {
			sum += float64(TopKOverlap(pickF(logY, rows), model.PredictAll(pick(s.X, rows)), k))
		}
		rep.TopK[gi] = sum / float64(len(groups))
	}

	return rep, nil
}

// Spread scores a model fitted at one θ against the samples of another:
// R² of its predictions over every row on log10 labels, floored at 0 so a
// model worse than the mean reads as no skill rather than a large negative.
func Spread(m *Model, s *Samples) (float64, error) {
	if s.Len() < 2 {
		return 0, fmt.Errorf("Spread: %d rows: %w", s.Len(), ErrTooFewSamples)
	}
	logY, err := logLabels(s.Y)
	if err != nil {
		return 0, fmt.Errorf("Spread: %w", err)
	}
	for i, row := range s.X {
		if len(row) != len(m.Coef) {
			return 0, fmt.Errorf("Spread: row %d has %d features, model %d: %w",
				i, len(row), len(m.Coef), ErrDimensionMismatch)
		}
	}

	return math.Max(R2(logY, m.PredictAll(s.X)), 0), nil
}

func logLabels(y []float64) ([]float64, error) {
	out := make([]float64, len(y))
	for i, v := range y {
		if !(v > 0) {
			return nil, fmt.Errorf("row %d label %g: %w", i, v, ErrNonPositiveLabel)
		}
		out[i] = math.Log10(v)
	}

	return out, nil
}

// Split shuffles 0..n-1 and holds out round(n·testFraction) indices.
func Split(n int, testFraction float64, rng *rand.Rand) (train, test []int) {
	perm := rng.Perm(n)
	nTest := int(math.Round(float64(n) * testFraction))

	return perm[nTest:], perm[:nTest]
}

// byGroup returns row indices per group in first-seen order.
func byGroup(group []int) [][]int {
	pos := make(map[int]int)
	var out [][]int
	for i, g := range group {
		k, ok := pos[g]
		if !ok {
			k = len(out)
			pos[g] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}

	return out
}

func pick(x [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = x[j]
	}

	return out
}

func pickF(x []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = x[j]
	}

	return out
}
