// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2020/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdgeConstraints verifies weight and loop policies.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	plain := core.NewGraph()
	_, err := plain.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = plain.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = plain.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	weighted := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err = weighted.AddEdge("A", "B", -1)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = weighted.AddEdge("A", "B", 0)
	require.NoError(t, err)
	id, err := weighted.AddEdge("A", "A", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	self, err := weighted.SuccessorIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, self)
}

// TestGraph_ParallelEdgesFold verifies that repeated edges accumulate weight.
func TestGraph_ParallelEdgesFold(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	id1, err := g.AddEdge("red", "blue", 2)
	require.NoError(t, err)
	id2, err := g.AddEdge("red", "blue", 3)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)

	succ, err := g.Successors("red")
	require.NoError(t, err)
	require.Len(t, succ, 1)
	assert.Equal(t, core.Edge{ID: id1, From: "red", To: "blue", Weight: 5}, *succ[0])

	back, err := g.Successors("blue")
	require.NoError(t, err)
	assert.Empty(t, back)
}

// TestGraph_DirectionalQueries verifies both adjacency indexes and their ordering.
func TestGraph_DirectionalQueries(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        int64
	}{
		{"A", "C", 1},
		{"A", "B", 2},
		{"D", "B", 4},
		{"B", "C", 3},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	succ, err := g.SuccessorIDs("A")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"B", "C"}, succ); diff != "" {
		t.Errorf("SuccessorIDs(A) mismatch (-want +got):\n%s", diff)
	}

	pred, err := g.PredecessorIDs("B")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A", "D"}, pred); diff != "" {
		t.Errorf("PredecessorIDs(B) mismatch (-want +got):\n%s", diff)
	}

	_, err = g.Successors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Predecessors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	in, err := g.Predecessors("C")
	require.NoError(t, err)
	require.Len(t, in, 2)
	assert.Equal(t, "e1", in[0].ID)
	assert.Equal(t, int64(3), in[1].Weight)
}

// TestGraph_ReturnedEdgesAreCopies verifies callers cannot mutate graph state.
func TestGraph_ReturnedEdgesAreCopies(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	succ, err := g.Successors("A")
	require.NoError(t, err)
	succ[0].Weight = 99

	pred, err := g.Predecessors("B")
	require.NoError(t, err)
	assert.Equal(t, int64(1), pred[0].Weight)
}

// TestGraph_ConcurrentAdds verifies the graph stays consistent under parallel writers.
func TestGraph_ConcurrentAdds(t *testing.T) {
	const n = 64
	g := core.NewGraph(core.WithWeighted())

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.AddEdge("hub", "leaf", 1)
		}()
	}
	wg.Wait()

	succ, err := g.Successors("hub")
	require.NoError(t, err)
	require.Len(t, succ, 1)
	assert.Equal(t, int64(n), succ[0].Weight)
	assert.Equal(t, 2, g.VertexCount())
}
