// Package lvhawkes computes expected event counts of linear Hawkes cascades
// on undirected graphs, one seed vertex at a time or for every vertex at once.
//
// 🚀 What is lvhawkes?
//
//	A small engine plus the batch tooling around it:
//		• Graph model: immutable graphs with a symmetric influence operator
//		• Spectral evaluation: one eigendecomposition, then O(N²) per θ
//		• Exact evaluation: a single seed, solved on its own component
//		• Stability: critical θ = 1/ρ(A) and normalized θ grids
//		• Sweeps: whole datasets in parallel, scored by a regression harness
//
// A cascade seeded at vertex i with branching ratio θ produces, in
// expectation, x_i = [(I − θA)⁻¹ 1]_i events (the seed included). The series
// converges only while θ·ρ(A) < 1; beyond that every evaluator reports a
// Divergent outcome instead of a number.
//
// Packages:
//
//	core/      Graph, Edge and the influence operator (adjacency or normalized)
//	matrix/    dense row-major matrices and the Jacobi eigensolver
//	bfs/       breadth-first search, components and radius-k balls
//	spectral/  cached eigendecompositions and the stability estimator
//	hawkes/    spectral and exact evaluators, θ sweeps, the Outcome type
//	builder/   deterministic fixture topologies (star, wheel, tree, random…)
//	graphio/   graph and graphlet-orbit loaders, dataset pairing, CSV writers
//	harness/   OLS on log counts, R², MSE and top-k overlap
//	pipeline/  parallel dataset sweeps and exact probes
//	metrics/   Prometheus run counters with textfile export
//	config/    YAML run files and the slog logger
//	cmd/       the lvhawkes CLI
//
// Quick example: a wheel of five vertices at half its critical θ.
//
//	g, _ := builder.Build(builder.Wheel(5))
//	d := spectral.NewDecomposer()
//	crit, _ := d.CriticalTheta(g)
//	out, _ := hawkes.EvaluateGraph(d, g, 0.5*crit)
//	if x, ok := out.Get(); ok {
//		fmt.Println(x) // expected events per seed vertex
//	}
//
//	go install github.com/katalvlaran/lvhawkes/cmd/lvhawkes@latest
package lvhawkes
