package harness

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvhawkes/core"
)

// DefaultOrbits is the orbit subset used when a run file names none.
var DefaultOrbits = []int{1, 0, 10, 11}

// DegreeFeatures returns [d, d², d³, d⁴] per vertex, where d is the degree
// centrality deg/(N−1) (0 for a single-vertex graph).
func DegreeFeatures(g *core.Graph) [][]float64 {
	n := g.Order()
	scale := 0.0
	if n > 1 {
		scale = 1 / float64(n-1)
	}
	out := make([][]float64, n)
	for v, deg := range g.Degrees() {
		d := float64(deg) * scale
		out[v] = []float64{d, d * d, d * d * d, d * d * d * d}
	}

	return out
}

// OrbitFeatures selects columns of a per-vertex orbit matrix. An empty cols
// keeps every column.
func OrbitFeatures(m mat.Matrix, cols []int) ([][]float64, error) {
	r, c := m.Dims()
	if len(cols) == 0 {
		cols = make([]int, c)
		for j := range cols {
			cols[j] = j
		}
	}
	for _, j := range cols {
		if j < 0 || j >= c {
			return nil, fmt.Errorf("OrbitFeatures: column %d outside [0,%d): %w", j, c, ErrDimensionMismatch)
		}
	}
	out := make([][]float64, r)
	for i := range out {
		row := make([]float64, len(cols))
		for k, j := range cols {
			row[k] = m.At(i, j)
		}
		out[i] = row
	}

	return out, nil
}
