// Package dfs provides depth-first algorithms on directed graphs, including
// topological sort with cycle detection.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned together with
// the offending cycle in the error message.
//
// The traversal keeps an explicit stack instead of recursing, so deeply
// nested inputs cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2020/core"
)

// frame is one entry of the explicit DFS stack: a vertex and the index of
// the next successor to explore.
type frame struct {
	id   string
	nbrs []string
	next int
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of g.
// With WithRoots, only vertices reachable from the roots are ordered.
// Returns ErrGraphNil for a nil graph, ErrStartVertexNotFound for an unknown root,
// ErrCycleDetected if a reachable cycle exists, ErrNeighborFetch if neighbor
// lookup fails, or the context error on cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	roots := opts.roots
	if roots == nil {
		roots = g.Vertices()
	}
	for _, r := range roots {
		if !g.HasVertex(r) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, r)
		}
	}

	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, g.VertexCount()),
		order: make([]string, 0, g.VertexCount()),
	}
	for _, r := range roots {
		if sorter.state[r] != White {
			continue
		}
		if err := sorter.visit(r); err != nil {
			return nil, err
		}
	}

	// post-order reversed is a topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs an iterative three-color DFS from root.
func (s *topoSorter) visit(root string) error {
	push := func(stack []*frame, id string) ([]*frame, error) {
		nbrs, err := s.graph.SuccessorIDs(id)
		if err != nil {
			return stack, fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
		}
		s.state[id] = Gray

		return append(stack, &frame{id: id, nbrs: nbrs}), nil
	}

	stack, err := push(nil, root)
	if err != nil {
		return err
	}
	for len(stack) > 0 {
		select {
		case <-s.opts.ctx.Done():
			return s.opts.ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			s.state[top.id] = Black
			s.order = append(s.order, top.id)
			stack = stack[:len(stack)-1]

			continue
		}
		nbr := top.nbrs[top.next]
		top.next++

		switch s.state[nbr] {
		case White:
			if stack, err = push(stack, nbr); err != nil {
				return err
			}
		case Gray:
			return fmt.Errorf("%w: %s", ErrCycleDetected, cyclePath(stack, nbr))
		}
	}

	return nil
}

// cyclePath renders the Gray segment of the stack that closes at id.
func cyclePath(stack []*frame, id string) string {
	start := 0
	for i, f := range stack {
		if f.id == id {
			start = i
			break
		}
	}
	parts := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		parts = append(parts, f.id)
	}
	parts = append(parts, id)

	return strings.Join(parts, " → ")
}
