package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// SummaryRow is one θ of a sweep report.
type SummaryRow struct {
	Theta     float64
	Fraction  float64
	Samples   int
	MeanLog10 float64
	R2        float64
	MSE       float64
	Spread    float64   // R² of the spread model on this θ; NaN when unscored
	TopK      []float64 // aligned with the topK header passed to WriteSummary
}

// CoefficientRow is the fitted model of one θ: raw and smoothed slopes.
type CoefficientRow struct {
	Theta     float64
	Fraction  float64
	Intercept float64
	Coef      []float64
	Smoothed  []float64
}

// LabelRow is one per-vertex expected event count.
type LabelRow struct {
	Graph  string
	Vertex int
	Theta  float64
	Events float64
}

// ProbeRow is one exact single-seed probe.
type ProbeRow struct {
	Graph      string
	Seed       int
	Theta      float64
	Divergent  bool
	Events     float64
	ErrorBound float64
	Support    int
}

func ff(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// fOpt formats v, leaving NaN as an empty cell.
func fOpt(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return ff(v)
}

// WriteSummary writes the per-θ summary with one top<k> column per entry
// of topK. An unscored r2_spread is left empty.
func WriteSummary(w io.Writer, topK []int, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	header := []string{"theta", "fraction", "samples", "mean_log10", "r2", "mse", "r2_spread"}
	for _, k := range topK {
		header = append(header, "top"+strconv.Itoa(k))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}
	for i, r := range rows {
		if len(r.TopK) != len(topK) {
			return fmt.Errorf("WriteSummary: row %d has %d top-k values, want %d: %w",
				i, len(r.TopK), len(topK), ErrMalformed)
		}
		rec := []string{
			ff(r.Theta), ff(r.Fraction), strconv.Itoa(r.Samples),
			ff(r.MeanLog10), ff(r.R2), ff(r.MSE), fOpt(r.Spread),
		}
		for _, v := range r.TopK {
			rec = append(rec, ff(v))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteSummary: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCoefficients writes one row per θ: intercept, coef_<j> for every
// feature, then smooth_<j>. Every row must carry the same feature count.
func WriteCoefficients(w io.Writer, rows []CoefficientRow) error {
	p := 0
	if len(rows) > 0 {
		p = len(rows[0].Coef)
	}
	cw := csv.NewWriter(w)
	header := []string{"theta", "fraction", "intercept"}
	for j := 0; j < p; j++ {
		header = append(header, "coef_"+strconv.Itoa(j))
	}
	for j := 0; j < p; j++ {
		header = append(header, "smooth_"+strconv.Itoa(j))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteCoefficients: %w", err)
	}
	for i, r := range rows {
		if len(r.Coef) != p || len(r.Smoothed) != p {
			return fmt.Errorf("WriteCoefficients: row %d has %d/%d coefficients, want %d: %w",
				i, len(r.Coef), len(r.Smoothed), p, ErrMalformed)
		}
		rec := make([]string, 0, 3+2*p)
		rec = append(rec, ff(r.Theta), ff(r.Fraction), ff(r.Intercept))
		for _, v := range r.Coef {
			rec = append(rec, ff(v))
		}
		for _, v := range r.Smoothed {
			rec = append(rec, ff(v))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCoefficients: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteLabels writes per-vertex labels.
func WriteLabels(w io.Writer, rows []LabelRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"graph", "vertex", "theta", "events"}); err != nil {
		return fmt.Errorf("WriteLabels: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Graph, strconv.Itoa(r.Vertex), ff(r.Theta), ff(r.Events)}); err != nil {
			return fmt.Errorf("WriteLabels: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteProbes writes exact probe results; divergent rows leave the numeric
// columns empty.
func WriteProbes(w io.Writer, rows []ProbeRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"graph", "seed", "theta", "divergent", "events", "error_bound", "support"}); err != nil {
		return fmt.Errorf("WriteProbes: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.Graph, strconv.Itoa(r.Seed), ff(r.Theta), strconv.FormatBool(r.Divergent), "", "", ""}
		if !r.Divergent {
			rec[4], rec[5], rec[6] = ff(r.Events), ff(r.ErrorBound), strconv.Itoa(r.Support)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteProbes: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
