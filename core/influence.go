// File: influence.go
// Role: lazily materialize the N×N influence operator.
// Concurrency:
//   - sync.Once publishes the operator; every later reader observes the fully
//     built matrix (single happens-before barrier).

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvhawkes/matrix"
)

// Influence returns the symmetric N×N influence operator of g, building it
// on first call and returning the cached matrix afterwards.
//
// The returned matrix is shared; callers MUST NOT mutate it. Clone it first
// if a writable copy is needed.
//
// The error is only non-nil for a Graph that did not come from NewGraph.
//
// Complexity: O(N² + E) on first call, O(1) afterwards.
func (g *Graph) Influence() (*matrix.Dense, error) {
	g.influenceOnce.Do(func() {
		g.influence, g.influenceErr = g.buildInfluence()
	})
	if g.influenceErr != nil {
		return nil, fmt.Errorf("Influence: %w", g.influenceErr)
	}

	return g.influence, nil
}

// buildInfluence writes A (or its symmetric normalization) into a fresh Dense.
func (g *Graph) buildInfluence() (*matrix.Dense, error) {
	data := make([]float64, g.n*g.n)

	switch g.influenceKind {
	case InfluenceNormalized:
		invSqrt := make([]float64, g.n)
		for v, nbrs := range g.adjacency {
			if d := len(nbrs); d > 0 {
				invSqrt[v] = 1 / math.Sqrt(float64(d))
			}
		}
		for _, e := range g.edges {
			w := invSqrt[e.U] * invSqrt[e.V]
			data[e.U*g.n+e.V] = w
			data[e.V*g.n+e.U] = w
		}
	default:
		for _, e := range g.edges {
			data[e.U*g.n+e.V] = 1
			data[e.V*g.n+e.U] = 1
		}
	}

	return matrix.NewDenseFrom(g.n, g.n, data)
}
