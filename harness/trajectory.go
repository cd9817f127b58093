package harness

import "gonum.org/v1/gonum/floats"

// Smooth returns trailing moving averages of a sequence of equal-length
// rows, such as one model's coefficients per θ. Row i becomes the mean of
// rows i−window+1..i; rows before the first full window are copied
// unchanged. A window below 2 copies every row.
func Smooth(rows [][]float64, window int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if window < 2 || i+1 < window {
			out[i] = append([]float64(nil), row...)
			continue
		}
		acc := make([]float64, len(row))
		for _, prev := range rows[i+1-window : i+1] {
			floats.Add(acc, prev)
		}
		floats.Scale(1/float64(window), acc)
		out[i] = acc
	}

	return out
}
