// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the New constructor.
// Policy:
//   - A Graph is immutable once New returns; every query is read-only.
//   - Edges are undirected and unweighted; parallel edges collapse to one.

package depgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for dependence graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("depgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("depgraph: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("depgraph: self-loop not allowed")

	// ErrGraphNil indicates that a nil *Graph was supplied.
	ErrGraphNil = errors.New("depgraph: graph is nil")
)

// Edge is an undirected dependence between two vertices.
// The order of the endpoints carries no meaning; Normalize sorts them.
type Edge [2]string

// Normalize returns e with its endpoints in ascending order.
func (e Edge) Normalize() Edge {
	if e[1] < e[0] {
		return Edge{e[1], e[0]}
	}

	return e
}

// Graph is an immutable undirected dependence graph.
//
// adjacency[u][v] is present iff the edge {u,v} was declared. Every vertex
// owns an adjacency bucket, possibly empty, so isolated vertices are
// representable and membership checks are O(1).
type Graph struct {
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// New builds a Graph holding every vertex as an isolated node plus the
// declared edges.
//
// Implementation:
//   - Stage 1: Register every vertex (duplicates are idempotent).
//   - Stage 2: Validate each edge (non-empty, declared endpoints, no loop).
//   - Stage 3: Link both directions of the adjacency; repeated edges are no-ops.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed, each wrapped with
//     the offending ID. No partial graph is returned.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func New(vertices []string, edges []Edge) (*Graph, error) {
	g := &Graph{adjacency: make(map[string]map[string]struct{}, len(vertices))}

	for _, id := range vertices {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, ok := g.adjacency[id]; !ok {
			g.adjacency[id] = make(map[string]struct{})
		}
	}

	for _, e := range edges {
		if err := g.link(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// link validates e and records it in both adjacency buckets.
func (g *Graph) link(e Edge) error {
	from, to := e[0], e[1]
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	for _, id := range []string{from, to} {
		if _, ok := g.adjacency[id]; !ok {
			return fmt.Errorf("%w: edge endpoint %q", ErrVertexNotFound, id)
		}
	}
	if _, dup := g.adjacency[from][to]; dup {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}
