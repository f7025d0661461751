package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option rejects its argument.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNeighbors wraps a failure to list a vertex's neighbours.
	ErrNeighbors = errors.New("bfs: neighbour lookup failed")
)

// Direction picks which edges the walk follows.
type Direction int

const (
	// Outgoing follows edges From → To.
	Outgoing Direction = iota
	// Incoming follows edges To → From, answering "who reaches me".
	Incoming
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// Step is one vertex as the walk dequeues it.
// Parent is empty for the start vertex.
type Step struct {
	ID     string
	Parent string
	Depth  int
}

// Option adjusts a walk. An Option returning an error aborts BFS before any
// vertex is visited.
type Option func(*walkConfig) error

type walkConfig struct {
	ctx context.Context
	dir Direction
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *walkConfig) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context", ErrOptionViolation)
		}
		c.ctx = ctx
		return nil
	}
}

// WithDirection selects Outgoing (default) or Incoming edges.
func WithDirection(d Direction) Option {
	return func(c *walkConfig) error {
		if d != Outgoing && d != Incoming {
			return fmt.Errorf("%w: %v", ErrOptionViolation, d)
		}
		c.dir = d
		return nil
	}
}

// Walk is the outcome of BFS: every reached vertex in dequeue order.
type Walk struct {
	Steps []Step
	index map[string]int // seen set: ID → position in Steps
}

// Order lists the reached IDs in dequeue order, start first.
func (w *Walk) Order() []string {
	ids := make([]string, len(w.Steps))
	for i, s := range w.Steps {
		ids[i] = s.ID
	}

	return ids
}

// Reached lists the reached IDs without the start vertex.
func (w *Walk) Reached() []string {
	if len(w.Steps) == 0 {
		return nil
	}

	return w.Order()[1:]
}
