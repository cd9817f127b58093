// Package pipeline runs the multi-graph workloads of lvhawkes: loading a
// dataset, sweeping θ over every graph to label its vertices with expected
// event counts, scoring those labels with the regression harness, and
// probing single seeds with the exact evaluator.
//
// Graphs are independent, so each stage fans out over a bounded errgroup.
// A graph that fails to load or decompose is logged and skipped; only
// cancellation or a fully empty dataset aborts a run. Results are gathered
// into per-graph slots and merged in dataset order, so a run is
// deterministic for a given configuration regardless of worker count.
package pipeline
