// SPDX-License-Identifier: MIT
//
// Package depgraph provides the undirected dependence graph used to decide
// how a product of random variables may be factored into moments.
//
// What
//
//   - A vertex is a random-variable name; an edge marks a declared
//     statistical dependence between two variables.
//   - The absence of an edge is a modelling claim: the two variables are
//     assumed independent and no joint moment may ever be formed across it.
//   - Components(subset) partitions a subset of vertices into maximal groups
//     connected through edges whose endpoints both lie in the subset.
//
// Why
//
//	Two variables land in the same moment iff a dependence path between
//	them exists using only the variables present in the monomial being
//	factored. Components(subset) is exactly that query.
//
// Determinism
//
//	Vertices(), Edges() and NeighborIDs() return sorted slices. Components()
//	sorts each group and orders groups by their smallest member, so repeated
//	calls on identical input produce identical output.
//
// Concurrency
//
//	A Graph is immutable once New returns. All methods are read-only and safe
//	for concurrent use.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - New:        O(V + E)
//   - Components: O(S + E_S) for a subset of size S with E_S induced edges.
//
// Errors
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - an edge endpoint or subset member is not a vertex.
//	ErrLoopNotAllowed - an edge joins a vertex to itself.
//	ErrGraphNil       - a nil *Graph was passed where a graph is required.
package depgraph
