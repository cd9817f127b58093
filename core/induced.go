// File: induced.go
// Role: vertex-induced subgraphs with dense relabelling.

package core

import (
	"fmt"
	"sort"
)

// Induced builds the subgraph of g induced by vertices and relabels them
// densely as 0..k-1 in ascending order of their index in g.
//
// It returns the new Graph (same influence kind as g) and the local→global
// map, i.e. global[local] is the vertex index in g.
//
// Errors:
//   - ErrInvalidGraph when vertices is empty.
//   - ErrVertexNotFound for an index outside [0, N).
//
// Duplicate entries in vertices are ignored.
// Complexity: O(k log k + Σ deg).
func (g *Graph) Induced(vertices []int) (*Graph, []int, error) {
	if len(vertices) == 0 {
		return nil, nil, fmt.Errorf("Induced: empty vertex set: %w", ErrInvalidGraph)
	}
	global := make([]int, 0, len(vertices))
	seen := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		if !g.HasVertex(v) {
			return nil, nil, fmt.Errorf("Induced(%d): %w", v, ErrVertexNotFound)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		global = append(global, v)
	}
	sort.Ints(global)

	local := make(map[int]int, len(global))
	for i, v := range global {
		local[v] = i
	}

	var edges []Edge
	for i, v := range global {
		for _, w := range g.adjacency[v] {
			// Emit each edge once, from its lower global endpoint.
			if j, ok := local[w]; ok && w > v {
				edges = append(edges, Edge{U: i, V: j})
			}
		}
	}

	sub, err := NewGraph(len(global), edges, WithInfluence(g.influenceKind))
	if err != nil {
		return nil, nil, fmt.Errorf("Induced: %w", err)
	}

	return sub, global, nil
}
