// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"log/slog"
	"time"
)

// Solver selects the dense symmetric eigensolver.
type Solver int

const (
	// SolverGonum uses gonum's LAPACK-backed mat.EigenSym (default).
	SolverGonum Solver = iota

	// SolverJacobi uses the largest-pivot Jacobi routine in package matrix.
	// Slow; kept for cross-checking small graphs.
	SolverJacobi
)

// String returns the config name of the solver.
func (s Solver) String() string {
	switch s {
	case SolverGonum:
		return "gonum"
	case SolverJacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("solver(%d)", int(s))
	}
}

// ParseSolver maps a config name to a Solver; "" means SolverGonum.
func ParseSolver(s string) (Solver, error) {
	switch s {
	case "", "gonum":
		return SolverGonum, nil
	case "jacobi":
		return SolverJacobi, nil
	default:
		return 0, fmt.Errorf("spectral: unknown solver %q", s)
	}
}

// Observer receives decomposition and cache events. metrics.Collector is
// the production implementation.
type Observer interface {
	ObserveDecomposition(n int, solver string, elapsed time.Duration, err error)
	ObserveCacheLookup(hit bool)
}

type nopObserver struct{}

func (nopObserver) ObserveDecomposition(int, string, time.Duration, error) {}
func (nopObserver) ObserveCacheLookup(bool)                                {}

// Defaults.
const (
	DefaultCacheSize     = 128
	DefaultJacobiTol     = 1e-12
	minJacobiIterations  = 1000
	jacobiIterationScale = 50
)

// Option configures a Decomposer or an uncached Decompose call.
type Option func(*options)

type options struct {
	solver        Solver
	cacheSize     int
	jacobiTol     float64
	jacobiMaxIter int // 0 ⇒ derived from N
	logger        *slog.Logger
	observer      Observer
}

func defaultOptions() options {
	return options{
		solver:    SolverGonum,
		cacheSize: DefaultCacheSize,
		jacobiTol: DefaultJacobiTol,
		logger:    slog.New(slog.DiscardHandler),
		observer:  nopObserver{},
	}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSolver selects the eigensolver.
func WithSolver(s Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithCacheSize bounds the number of cached decompositions.
// Panics on n < 1.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("spectral: WithCacheSize(%d)", n))
	}

	return func(o *options) { o.cacheSize = n }
}

// WithJacobi tunes the Jacobi solver. maxIter 0 derives the budget from N.
// Panics on negative or non-finite arguments.
func WithJacobi(tol float64, maxIter int) Option {
	if !(tol >= 0) || maxIter < 0 {
		panic(fmt.Sprintf("spectral: WithJacobi(%g, %d)", tol, maxIter))
	}

	return func(o *options) {
		o.jacobiTol = tol
		o.jacobiMaxIter = maxIter
	}
}

// WithLogger injects a structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver injects a metrics sink; nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
