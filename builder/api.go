// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs
//     cons in order against a shared Sketch, then freezes it with core.NewGraph.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvhawkes/core"
)

// Constructor appends a deterministic topology to s using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their vertices through s.AddVertices so composed fixtures
//     occupy disjoint index ranges.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *Sketch, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to an empty Sketch and freezes the result into an
// immutable core.Graph built with gopts.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - ErrConstructFailed for a nil constructor or an empty result.
//   - core.ErrInvalidGraph if the accumulated edges are malformed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := &Sketch{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if s.Order() == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrConstructFailed)
	}
	g, err := core.NewGraph(s.Order(), s.Edges(), gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build is BuildGraph for the common single-constructor case with default
// graph options.
func Build(con Constructor, bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, bopts, con)
}
