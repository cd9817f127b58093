package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/metrics"
	"github.com/katalvlaran/lvhawkes/spectral"
)

var _ spectral.Observer = (*metrics.Collector)(nil)

func TestCollector_Counters(t *testing.T) {
	c := metrics.NewCollector()

	c.GraphDone(metrics.GraphProcessed)
	c.GraphDone(metrics.GraphProcessed)
	c.GraphDone(metrics.GraphSkipped)
	c.Divergent()
	c.Samples(40)
	c.Probe(false)
	c.Probe(true)
	c.Probe(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.GraphsTotal.WithLabelValues(metrics.GraphProcessed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.GraphsTotal.WithLabelValues(metrics.GraphSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DivergentTotal))
	assert.Equal(t, 40.0, testutil.ToFloat64(c.SamplesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ProbesTotal.WithLabelValues("value")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ProbesTotal.WithLabelValues("divergent")))
}

func TestCollector_Decomposition(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveDecomposition(10, "gonum", 2*time.Millisecond, nil)
	c.ObserveDecomposition(30, "gonum", 5*time.Millisecond, nil)
	c.ObserveDecomposition(20, "jacobi", time.Millisecond, nil)
	c.ObserveDecomposition(99, "jacobi", 0, errors.New("boom"))

	assert.Equal(t, 2, testutil.CollectAndCount(c.DecompositionSeconds))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DecompositionErrors.WithLabelValues("jacobi")))
	assert.Equal(t, 30.0, testutil.ToFloat64(c.LargestGraph))
}

func TestCollector_ConcurrentLargest(t *testing.T) {
	c := metrics.NewCollector()
	var wg sync.WaitGroup
	for n := 1; n <= 64; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.ObserveDecomposition(n, "gonum", time.Microsecond, nil)
		}(n)
	}
	wg.Wait()
	assert.Equal(t, 64.0, testutil.ToFloat64(c.LargestGraph))
}

// TestCollector_AsObserver wires the collector into a real Decomposer.
func TestCollector_AsObserver(t *testing.T) {
	c := metrics.NewCollector()
	d := spectral.NewDecomposer(spectral.WithObserver(c))

	g, err := core.NewGraph(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)
	_, err = d.Decompose(g)
	require.NoError(t, err)
	_, err = d.Decompose(g)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.LargestGraph))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.NewCollector()
	c.Divergent()
	c.GraphDone(metrics.GraphProcessed)

	path := filepath.Join(t.TempDir(), "lvhawkes.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "lvhawkes_divergent_total 1")
	assert.Contains(t, text, `lvhawkes_graphs_total{outcome="processed"} 1`)

	expected := `
# HELP lvhawkes_divergent_total Graph and theta pairs skipped because the process diverges
# TYPE lvhawkes_divergent_total counter
lvhawkes_divergent_total 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "lvhawkes_divergent_total"))
}
