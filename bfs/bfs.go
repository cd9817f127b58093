// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with cancellation and depth limiting.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvhawkes/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Component returns the vertices of start's connected component, sorted
// ascending. It is the vertex set of an unlimited BFS.
func Component(g *core.Graph, start int, opts ...Option) ([]int, error) {
	return Ball(g, start, 0, opts...)
}

// Ball returns the vertices within radius hops of start, sorted ascending.
// A radius of 0 means no limit, i.e. the whole connected component.
// The radius overrides any WithMaxDepth in opts.
func Ball(g *core.Graph, start, radius int, opts ...Option) ([]int, error) {
	res, err := BFS(g, start, append(opts[:len(opts):len(opts)], WithMaxDepth(radius))...)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(res.Order))
	copy(out, res.Order)
	sort.Ints(out)

	return out, nil
}

// enqueue marks v discovered at depth d.
func (w *walker) enqueue(v, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor. Neighbors arrive sorted, so the visit order is deterministic.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	w.graph.EachNeighbor(item.v, func(nbr int) {
		if w.res.Depth[nbr] != Unreached {
			return
		}
		w.enqueue(nbr, nextDepth)
	})
}
