// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle plus read-only queries.
// Determinism:
//   - Vertices() sorted by ID.
//   - Successors() sorted by To; Predecessors() sorted by From.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts the directed edge from → to with the given weight,
// auto-creating missing endpoints.
//
// Implementation:
//   - Stage 1: Validate IDs, weight policy and loop policy.
//   - Stage 2: Under the write lock, ensure both vertices exist.
//   - Stage 3: If from → to already exists, fold weight into it and return its ID;
//     otherwise allocate a new Edge and register it in both adjacency indexes.
//
// Errors:
//   - ErrEmptyVertexID if from or to is empty.
//   - ErrBadWeight if weight != 0 on an unweighted graph, or weight < 0.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if weight < 0 || (!g.weighted && weight != 0) {
		return "", fmt.Errorf("%w: %d on %s→%s", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	if e, ok := g.out[from][to]; ok {
		e.Weight += weight

		return e.ID, nil
	}

	g.nextEdgeID++
	e := &Edge{
		ID:     "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:   from,
		To:     to,
		Weight: weight,
	}
	g.out[from][to] = e
	g.in[to][from] = e

	return e.ID, nil
}

// Successors returns copies of all edges leaving id, sorted by To.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) Successors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedEdges(g.out[id], func(e *Edge) string { return e.To }), nil
}

// Predecessors returns copies of all edges entering id, sorted by From.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) Predecessors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedEdges(g.in[id], func(e *Edge) string { return e.From }), nil
}

// SuccessorIDs returns the sorted IDs reachable from id by one edge.
func (g *Graph) SuccessorIDs(id string) ([]string, error) {
	edges, err := g.Successors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// PredecessorIDs returns the sorted IDs that reach id by one edge.
func (g *Graph) PredecessorIDs(id string) ([]string, error) {
	edges, err := g.Predecessors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.From
	}

	return ids, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// ensureVertex registers id and its adjacency buckets. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]*Edge)
	g.in[id] = make(map[string]*Edge)
}

// sortedEdges copies the bucket and sorts it by the supplied key.
func sortedEdges(bucket map[string]*Edge, key func(*Edge) string) []*Edge {
	list := make([]*Edge, 0, len(bucket))
	for _, e := range bucket {
		cp := *e
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return key(list[i]) < key(list[j]) })

	return list
}
