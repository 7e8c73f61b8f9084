// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components of the subgraph induced by a vertex subset.
// Determinism:
//   - Seeds are taken in ascending ID order and neighbours are visited in
//     NeighborIDs order, so groups and their members are reproducible.

package depgraph

import (
	"fmt"
	"sort"
)

// walker holds the mutable state of one breadth-first sweep over an induced
// subgraph. Neighbours outside the subset are filtered out, so only edges
// with both endpoints in the subset are ever followed.
type walker struct {
	graph   *Graph
	inside  map[string]struct{}
	visited map[string]bool
	queue   []string
}

// Components partitions subset into maximal connected groups of the
// subgraph induced by subset.
//
// Implementation:
//   - Stage 1: Deduplicate subset and verify every member is a vertex.
//   - Stage 2: For each unvisited member (ascending), run a BFS that only
//     follows neighbours also present in subset.
//   - Stage 3: Sort each group; groups come out ordered by smallest member.
//
// Behavior highlights:
//   - A member with no neighbour in subset forms its own singleton group.
//   - Two members share a group iff a dependence path joins them using only
//     members of subset.
//   - An empty subset yields an empty (non-nil) partition.
//
// Errors:
//   - ErrGraphNil for a nil receiver.
//   - ErrVertexNotFound (wrapped with the ID) for an unknown member.
//
// Complexity:
//   - Time O(S log S + E_S), Space O(S).
func (g *Graph) Components(subset []string) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	inside := make(map[string]struct{}, len(subset))
	seeds := make([]string, 0, len(subset))
	for _, id := range subset {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
		if _, dup := inside[id]; dup {
			continue
		}
		inside[id] = struct{}{}
		seeds = append(seeds, id)
	}
	sort.Strings(seeds)

	w := &walker{
		graph:   g,
		inside:  inside,
		visited: make(map[string]bool, len(seeds)),
		queue:   make([]string, 0, len(seeds)),
	}

	groups := make([][]string, 0, len(seeds))
	for _, seed := range seeds {
		if w.visited[seed] {
			continue
		}
		group := w.sweep(seed)
		sort.Strings(group)
		groups = append(groups, group)
	}

	return groups, nil
}

// sweep runs BFS from start and returns every vertex reached.
func (w *walker) sweep(start string) []string {
	group := []string{}
	w.visited[start] = true
	w.queue = append(w.queue[:0], start)

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		group = append(group, cur)

		// cur is a vertex, so NeighborIDs cannot fail here.
		nbrs, _ := w.graph.NeighborIDs(cur)
		for _, nbr := range nbrs {
			if _, ok := w.inside[nbr]; !ok || w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.queue = append(w.queue, nbr)
		}
	}

	return group
}
