// SPDX-License-Identifier: MIT

package hawkes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvhawkes/spectral"
)

// DefaultEpsilon is the smallest admissible resolvent denominator 1 − θd_k.
const DefaultEpsilon = 1e-9

// Option configures EvaluateAll, Sweep and ExactFrom.
type Option func(*config)

type config struct {
	eps         float64
	generations int // < 0 ⇒ exact solve
	spectral    []spectral.Option
	logger      *slog.Logger
	ctx         context.Context
}

func newConfig(opts []Option) config {
	c := config{
		eps:         DefaultEpsilon,
		generations: -1,
		logger:      slog.New(slog.DiscardHandler),
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithEpsilon sets the divergence margin: θ is treated as divergent once any
// 1 − θd_k falls below eps. Panics unless 0 < eps < 1.
func WithEpsilon(eps float64) Option {
	if !(eps > 0 && eps < 1) {
		panic(fmt.Sprintf("hawkes: WithEpsilon(%g)", eps))
	}

	return func(c *config) { c.eps = eps }
}

// WithGenerations switches ExactFrom to a truncated generation sum over the
// BFS ball of radius k around the seed. Panics on k < 0.
func WithGenerations(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("hawkes: WithGenerations(%d)", k))
	}

	return func(c *config) { c.generations = k }
}

// WithSpectralOptions forwards options to the local decomposition ExactFrom
// runs for its stability check.
func WithSpectralOptions(opts ...spectral.Option) Option {
	return func(c *config) { c.spectral = append(c.spectral, opts...) }
}

// WithLogger injects a structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext lets ExactFrom stop early: the component search, the radius-k
// ball and every generation step check ctx. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
