// Package core provides the immutable, index-addressed Graph that every
// Hawkes computation in lvhawkes starts from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are the dense integer range 0..N-1; N is fixed at construction.
//   - Edges are undirected, unweighted, unordered pairs {u,v} with u != v.
//   - Duplicate edges (in either orientation) collapse to a single edge.
//   - There are no mutators. A topology change means building a new Graph,
//     which in turn means a fresh identity and a fresh spectral cache entry.
//
// Why immutable?
//
//   - The influence operator and its eigendecomposition are cached per graph;
//     with no mutation there is nothing to invalidate.
//   - A *Graph can be shared read-only across goroutines without locks; the
//     lazily built operator is published through sync.Once.
//
// Configuration Options (GraphOption):
//
//	– WithInfluence(kind)
//	    Selects the influence operator materialized by Influence():
//	    • InfluenceAdjacency  (default): A[i][j] = 1 for every edge.
//	    • InfluenceNormalized: D^-1/2 A D^-1/2 (isolated vertices give zero rows).
//
// Core Methods:
//
//	NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) // O(N + E log E)
//	Order() int                    // O(1)
//	Size() int                     // O(1)
//	Edges() []Edge                 // O(E), canonical U<V, sorted
//	Neighbors(v int) ([]int, error)// O(deg v), sorted
//	Degree(v int) (int, error)     // O(1)
//	HasEdge(u, v int) bool         // O(log deg u)
//	Influence() (*matrix.Dense, error) // O(N²) once, cached
//	Induced(vs []int) (*Graph, []int, error) // O(N + E)
//	ID() uint64                    // process-unique identity
//
// Errors:
//
//	ErrInvalidGraph   – N <= 0, endpoint outside [0,N), or a self-loop
//	ErrVertexNotFound – query for a vertex outside [0,N)
package core
