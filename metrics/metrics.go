// Package metrics collects run counters for an lvhawkes sweep on a private
// Prometheus registry and exports them in the node-exporter textfile format.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for GraphsTotal.
const (
	GraphProcessed = "processed"
	GraphSkipped   = "skipped"
)

// Collector owns every metric of a run. It implements spectral.Observer.
// All methods are safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	// GraphsTotal counts graphs by outcome (processed, skipped).
	GraphsTotal *prometheus.CounterVec

	// DivergentTotal counts (graph, θ) pairs dropped as divergent.
	DivergentTotal prometheus.Counter

	// SamplesTotal counts per-node samples collected across all θ.
	SamplesTotal prometheus.Counter

	// ProbesTotal counts exact probes by outcome (value, divergent).
	ProbesTotal *prometheus.CounterVec

	// DecompositionSeconds tracks eigensolver wall time per solver.
	DecompositionSeconds *prometheus.HistogramVec

	// DecompositionErrors counts failed decompositions per solver.
	DecompositionErrors *prometheus.CounterVec

	// CacheLookups counts decomposition cache lookups by result (hit, miss).
	CacheLookups *prometheus.CounterVec

	// LargestGraph tracks the largest order decomposed so far.
	LargestGraph prometheus.Gauge

	mu      sync.Mutex
	largest float64
}

// NewCollector builds a Collector on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		GraphsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvhawkes_graphs_total",
				Help: "Graphs handled by the sweep, by outcome",
			},
			[]string{"outcome"},
		),
		DivergentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvhawkes_divergent_total",
			Help: "Graph and theta pairs skipped because the process diverges",
		}),
		SamplesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvhawkes_samples_total",
			Help: "Per-node samples collected across all theta values",
		}),
		ProbesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvhawkes_probes_total",
				Help: "Exact single-seed probes, by outcome",
			},
			[]string{"outcome"},
		),
		DecompositionSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvhawkes_decomposition_seconds",
				Help:    "Eigendecomposition wall time",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"solver"},
		),
		DecompositionErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvhawkes_decomposition_errors_total",
				Help: "Failed eigendecompositions",
			},
			[]string{"solver"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvhawkes_cache_lookups_total",
				Help: "Decomposition cache lookups, by result",
			},
			[]string{"result"},
		),
		LargestGraph: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lvhawkes_largest_graph_order",
			Help: "Largest graph order decomposed in this run",
		}),
	}
	c.registry.MustRegister(
		c.GraphsTotal,
		c.DivergentTotal,
		c.SamplesTotal,
		c.ProbesTotal,
		c.DecompositionSeconds,
		c.DecompositionErrors,
		c.CacheLookups,
		c.LargestGraph,
	)

	return c
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveDecomposition records one eigensolver call.
func (c *Collector) ObserveDecomposition(n int, solver string, elapsed time.Duration, err error) {
	if err != nil {
		c.DecompositionErrors.WithLabelValues(solver).Inc()
		return
	}
	c.DecompositionSeconds.WithLabelValues(solver).Observe(elapsed.Seconds())
	c.raiseLargest(float64(n))
}

// ObserveCacheLookup records one decomposition cache lookup.
func (c *Collector) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.CacheLookups.WithLabelValues(result).Inc()
}

// GraphDone records a graph that finished (processed) or was dropped (skipped).
func (c *Collector) GraphDone(outcome string) {
	c.GraphsTotal.WithLabelValues(outcome).Inc()
}

// Divergent records one divergent (graph, θ) pair.
func (c *Collector) Divergent() { c.DivergentTotal.Inc() }

// Samples records n collected samples.
func (c *Collector) Samples(n int) { c.SamplesTotal.Add(float64(n)) }

// Probe records one exact probe.
func (c *Collector) Probe(divergent bool) {
	outcome := "value"
	if divergent {
		outcome = "divergent"
	}
	c.ProbesTotal.WithLabelValues(outcome).Inc()
}

// raiseLargest sets LargestGraph to n when n exceeds the current value.
// Gauge has no compare-and-set, so updates are serialized.
func (c *Collector) raiseLargest(n float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > c.largest {
		c.largest = n
		c.LargestGraph.Set(n)
	}
}

// WriteTextfile writes every metric to path atomically, for the
// node-exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
