// Package dfs defines types and options for depth-first ordering of a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// Visitation states used by the three-color marking scheme.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the explicit stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that a requested root vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort.
type topoOptions struct {
	ctx   context.Context // allows cancellation; defaults to Background
	roots []string        // restrict the sort to vertices reachable from these; nil means all
}

// defaultTopoOptions returns the default options (Background context, whole graph).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRoots restricts the ordering to the subgraph reachable from ids.
func WithRoots(ids ...string) TopoOption {
	return func(o *topoOptions) {
		o.roots = append(o.roots, ids...)
	}
}
