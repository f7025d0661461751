// SPDX-License-Identifier: MIT

// Package core provides a small, thread-safe, directed in-memory Graph used by the
// puzzle solvers that reason about containment relationships.
//
// The Graph G = (V,E) keeps two adjacency indexes so traversals can run in either
// direction without rebuilding anything:
//
//	out[from][to] = *Edge   // successors ("contains")
//	in[to][from]  = *Edge   // predecessors ("is contained by")
//
// Configuration Options (GraphOption):
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Parallel edges are folded: a second AddEdge(from,to,w) adds w to the existing
// edge weight and returns the existing edge ID. Rule sets that mention the same
// inner colour twice therefore keep their total multiplicity.
//
// Core Methods:
//
//	AddVertex(id string) error                           // O(1)
//	HasVertex(id string) bool                            // O(1)
//	AddEdge(from, to string, weight int64) (string, error) // O(1)
//	Successors(id string) ([]*Edge, error)               // O(d·log d), sorted by To
//	Predecessors(id string) ([]*Edge, error)             // O(d·log d), sorted by From
//	SuccessorIDs / PredecessorIDs                        // sorted IDs
//	Vertices() []string                                  // O(V·log V)
//	VertexCount() int                                    // O(1)
//
// Determinism:
//
//	Every enumeration is sorted, so traversals built on top of core produce the
//	same visit order on every run.
//
// Concurrency:
//
//	A single sync.RWMutex guards the vertex catalog and both adjacency indexes.
//	Mutations take the write lock; queries take the read lock and return copies.
package core
