// Package bfs walks a core.Graph breadth-first from a single vertex.
//
// The walk is iterative and keeps a seen-set, so it terminates on cyclic
// graphs and reports each vertex once at its shortest hop distance.
// Edge weights are ignored. With WithDirection(Incoming) the walk follows
// edges backwards, which turns "what does X lead to" into "what leads to X".
//
// Neighbours are expanded in the graph's sorted order, so the same graph
// always yields the same Walk.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent2020/core"
)

// BFS walks g from start.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound for bad input.
//   - ErrOptionViolation if an Option rejected its argument.
//   - ErrNeighbors if the graph fails to list a vertex's edges.
//   - ctx.Err() on cancellation; the partial Walk is returned with it.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Walk, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := walkConfig{ctx: context.Background(), dir: Outgoing}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	next := g.SuccessorIDs
	if cfg.dir == Incoming {
		next = g.PredecessorIDs
	}

	w := &Walk{
		Steps: []Step{{ID: start}},
		index: map[string]int{start: 0},
	}
	// Steps doubles as the queue: everything past head is still pending.
	for head := 0; head < len(w.Steps); head++ {
		if err := cfg.ctx.Err(); err != nil {
			return w, err
		}
		cur := w.Steps[head]

		nbrs, err := next(cur.ID)
		if err != nil {
			return w, fmt.Errorf("%w: %q: %v", ErrNeighbors, cur.ID, err)
		}
		for _, id := range nbrs {
			if _, seen := w.index[id]; seen {
				continue
			}
			w.index[id] = len(w.Steps)
			w.Steps = append(w.Steps, Step{ID: id, Parent: cur.ID, Depth: cur.Depth + 1})
		}
	}

	return w, nil
}
