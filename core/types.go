// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and option types plus the package sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors returned by Graph methods.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates that a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph
	// or a negative weight on a weighted one.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed connection From → To carrying an integer Weight.
// ID is unique within one Graph ("e1", "e2", …) and stable for its lifetime.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithWeighted permits positive edge weights. Negative weights are always rejected.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed graph keyed by string vertex IDs.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex

	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	nextEdgeID uint64                      // monotonically increasing edge counter
	vertices   map[string]struct{}         // vertex catalog
	out        map[string]map[string]*Edge // from → to → Edge
	in         map[string]map[string]*Edge // to → from → Edge
}

// NewGraph returns an empty directed graph configured by opts.
// Options are applied left to right.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]*Edge),
		in:       make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
