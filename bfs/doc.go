// Package bfs provides breadth-first search over an immutable core.Graph,
// returning unweighted shortest-path distances and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (Unreached if never seen)
//   - Cancellation through WithContext, checked once per dequeued vertex.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Component and Ball wrap BFS to return sorted vertex sets; the exact
//     Hawkes evaluator restricts its linear solve to these sets.
//
// Determinism
//
//	core.Graph keeps neighbor lists sorted and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	comp, err := bfs.Component(g, seed, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside [0, N).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() once the context is cancelled.
package bfs
