package harness

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// R2 is the coefficient of determination of pred against truth.
func R2(truth, pred []float64) float64 {
	return stat.RSquaredFrom(pred, truth, nil)
}

// MSE is the mean squared error of pred against truth.
func MSE(truth, pred []float64) float64 {
	if len(truth) == 0 {
		return math.NaN()
	}
	d := floats.Distance(truth, pred, 2)

	return d * d / float64(len(truth))
}

// TopKOverlap counts the indices present in both the k largest entries of
// truth and the k largest entries of pred. k is clamped to len(truth).
func TopKOverlap(truth, pred []float64, k int) int {
	n := len(truth)
	if k > n {
		k = n
	}
	if k <= 0 {
		return 0
	}
	top := make(map[int]struct{}, k)
	for _, i := range largest(truth, k) {
		top[i] = struct{}{}
	}
	var hit int
	for _, i := range largest(pred, k) {
		if _, ok := top[i]; ok {
			hit++
		}
	}

	return hit
}

// largest returns the indices of the k largest values of v.
func largest(v []float64, k int) []int {
	tmp := append([]float64(nil), v...)
	idx := make([]int, len(v))
	floats.Argsort(tmp, idx)

	return idx[len(idx)-k:]
}
