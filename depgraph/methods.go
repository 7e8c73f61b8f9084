// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over an immutable Graph, plus Union.
// Determinism:
//   - Vertices(), Edges() and NeighborIDs() return freshly allocated slices
//     sorted lexicographically ascending.

package depgraph

import "sort"

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether the undirected edge {a,b} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adjacency[a][b]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge exactly once, normalized (e[0] < e[1]) and sorted
// by (e[0], e[1]).
//
// Complexity:
//   - Time O(V + E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.adjacency {
		for to := range nbrs {
			if from < to {
				edges = append(edges, Edge{from, to})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	return edges
}

// NeighborIDs returns the sorted IDs adjacent to id.
// Returns ErrVertexNotFound if id is not a vertex.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Union returns a new Graph whose vertex and edge sets are the unions of g's
// and other's. Neither input is modified. No edge is added between the two
// vertex sets: whatever was independent stays independent.
//
// Errors:
//   - ErrGraphNil if either graph is nil.
//
// Complexity:
//   - Time O(V1 + V2 + E1 + E2).
func (g *Graph) Union(other *Graph) (*Graph, error) {
	if g == nil || other == nil {
		return nil, ErrGraphNil
	}
	vertices := append(g.Vertices(), other.Vertices()...)
	edges := append(g.Edges(), other.Edges()...)

	return New(vertices, edges)
}
