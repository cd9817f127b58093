// Package core defines the immutable Graph and Edge types, the sentinel
// errors, graph options, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidGraph   - malformed topology at construction time.
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvhawkes/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGraph indicates a malformed topology: non-positive vertex
	// count, an endpoint outside [0, N), or a self-loop.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// InfluenceKind selects how the influence operator is derived from the edges.
type InfluenceKind int

const (
	// InfluenceAdjacency uses the raw 0/1 adjacency matrix.
	InfluenceAdjacency InfluenceKind = iota

	// InfluenceNormalized uses the symmetric normalization D^-1/2 A D^-1/2.
	InfluenceNormalized
)

// String returns the lowercase config name of the kind.
func (k InfluenceKind) String() string {
	switch k {
	case InfluenceAdjacency:
		return "adjacency"
	case InfluenceNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("influence(%d)", int(k))
	}
}

// ParseInfluenceKind maps a config name back to its InfluenceKind.
// The empty string resolves to InfluenceAdjacency.
func ParseInfluenceKind(s string) (InfluenceKind, error) {
	switch s {
	case "", "adjacency":
		return InfluenceAdjacency, nil
	case "normalized":
		return InfluenceNormalized, nil
	default:
		return 0, fmt.Errorf("core: unknown influence kind %q", s)
	}
}

// Edge is an undirected edge between two vertex indices.
// Graph always stores edges in canonical form U < V.
type Edge struct {
	U int
	V int
}

// canonical returns the edge with U < V.
func (e Edge) canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithInfluence selects the influence operator materialized by Influence().
func WithInfluence(kind InfluenceKind) GraphOption {
	return func(g *Graph) { g.influenceKind = kind }
}

// nextGraphID hands out process-unique identities for cache keys.
var nextGraphID atomic.Uint64

// Graph is the immutable in-memory graph.
//
// adjacency[v] holds the sorted neighbor list of v. influence is built once,
// on first request, and never modified afterwards.
type Graph struct {
	id            uint64
	n             int
	edges         []Edge  // canonical (U<V), sorted lexicographically
	adjacency     [][]int // sorted neighbor lists
	influenceKind InfluenceKind

	influenceOnce sync.Once
	influence     *matrix.Dense
	influenceErr  error
}

// NewGraph validates and builds an immutable Graph over vertices 0..n-1.
//
// Implementation:
//   - Stage 1: reject n <= 0.
//   - Stage 2: canonicalize each edge, reject out-of-range endpoints and self-loops.
//   - Stage 3: sort, drop duplicates, build sorted adjacency lists.
//
// Errors:
//   - ErrInvalidGraph (wrapped with the offending edge index or count).
//
// Complexity: O(N + E log E) time, O(N + E) space.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrInvalidGraph)
	}

	canon := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d) outside [0,%d): %w", i, e.U, e.V, n, ErrInvalidGraph)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d) is a self-loop: %w", i, e.U, e.V, ErrInvalidGraph)
		}
		canon = append(canon, e.canonical())
	}
	sort.Slice(canon, func(a, b int) bool {
		if canon[a].U != canon[b].U {
			return canon[a].U < canon[b].U
		}
		return canon[a].V < canon[b].V
	})

	// Dedupe in place; canon is sorted so duplicates are adjacent.
	uniq := canon[:0]
	for _, e := range canon {
		if len(uniq) > 0 && e == uniq[len(uniq)-1] {
			continue
		}
		uniq = append(uniq, e)
	}

	adj := make([][]int, n)
	for _, e := range uniq {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	for v := range adj {
		sort.Ints(adj[v])
	}

	g := &Graph{
		id:        nextGraphID.Add(1),
		n:         n,
		edges:     uniq,
		adjacency: adj,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
