// File: methods.go
// Role: read-only queries over an immutable Graph.
// Determinism:
//   - Edges() and Neighbors() return sorted copies; callers may mutate them freely.
// Concurrency:
//   - Every method is safe for concurrent use; nothing here writes to g.

package core

import (
	"fmt"
	"sort"
)

// ID returns the process-unique identity of g, used as a cache key by the
// spectral package. Two graphs built from identical input still differ.
func (g *Graph) ID() uint64 { return g.id }

// Order returns the number of vertices N.
func (g *Graph) Order() int { return g.n }

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int { return len(g.edges) }

// InfluenceKind reports which operator Influence() materializes.
func (g *Graph) InfluenceKind() InfluenceKind { return g.influenceKind }

// Edges returns a copy of the canonical edge list (U<V), sorted by (U,V).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether v lies in [0, N).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns a sorted copy of v's neighbor list.
// Returns ErrVertexNotFound if v is outside [0, N).
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the number of neighbors of v.
// Returns ErrVertexNotFound if v is outside [0, N).
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(g.adjacency[v]), nil
}

// Degrees returns the degree of every vertex, indexed by vertex.
func (g *Graph) Degrees() []int {
	out := make([]int, g.n)
	for v, nbrs := range g.adjacency {
		out[v] = len(nbrs)
	}

	return out
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Out-of-range endpoints simply report false.
// Complexity: O(log deg u).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	nbrs := g.adjacency[u]
	k := sort.SearchInts(nbrs, v)

	return k < len(nbrs) && nbrs[k] == v
}

// EachNeighbor calls fn for every neighbor of v in ascending order without
// allocating. Unknown vertices are a no-op.
func (g *Graph) EachNeighbor(v int, fn func(w int)) {
	if !g.HasVertex(v) {
		return
	}
	for _, w := range g.adjacency[v] {
		fn(w)
	}
}
