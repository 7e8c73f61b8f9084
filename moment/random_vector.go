// SPDX-License-Identifier: MIT
package moment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/algmoments/depgraph"
	"github.com/katalvlaran/algmoments/poly"
)

// Dependence declares that two random variables are pairwise dependent.
type Dependence [2]Variable

// RandomVector is an ordered set of random variables together with their
// dependence graph. Variables are kept sorted by name; exponent tuples
// (multi-indices) are aligned to that order.
type RandomVector struct {
	vars   []Variable
	index  map[Variable]int
	byName map[string]Variable
	graph  *depgraph.Graph
}

// NewRandomVector builds a random vector over vars with the given pairwise
// dependencies. Every pair not listed is independent.
//
// Errors:
//   - ErrNotRandom if a variable is a control input.
//   - ErrDuplicateVariable if two variables share a name.
//   - ErrUnknownVariable if a dependence names a variable outside vars.
//   - depgraph errors (e.g. ErrLoopNotAllowed) wrapped as-is.
func NewRandomVector(vars []Variable, deps []Dependence) (*RandomVector, error) {
	rv, names, err := indexVariables(vars)
	if err != nil {
		return nil, err
	}

	edges := make([]depgraph.Edge, 0, len(deps))
	for _, d := range deps {
		for _, v := range d {
			if _, ok := rv.index[v]; !ok {
				return nil, fmt.Errorf("%w: dependence on %s", ErrUnknownVariable, v.name)
			}
		}
		edges = append(edges, depgraph.Edge{d[0].name, d[1].name})
	}

	g, err := depgraph.New(names, edges)
	if err != nil {
		return nil, fmt.Errorf("moment: dependence graph: %w", err)
	}
	rv.graph = g

	return rv, nil
}

// Join returns the random vector over the variables of rv and other. The
// two sides stay mutually independent.
//
// Errors:
//   - ErrDuplicateVariable if a name occurs on both sides.
func (rv *RandomVector) Join(other *RandomVector) (*RandomVector, error) {
	joined, _, err := indexVariables(append(rv.Variables(), other.vars...))
	if err != nil {
		return nil, err
	}
	g, err := rv.graph.Union(other.graph)
	if err != nil {
		return nil, fmt.Errorf("moment: dependence graph: %w", err)
	}
	joined.graph = g

	return joined, nil
}

// indexVariables sorts vars by name and builds the lookup tables of a
// RandomVector without its graph.
func indexVariables(vars []Variable) (*RandomVector, []string, error) {
	sorted := append([]Variable(nil), vars...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	rv := &RandomVector{
		vars:   sorted,
		index:  make(map[Variable]int, len(sorted)),
		byName: make(map[string]Variable, len(sorted)),
	}
	names := make([]string, 0, len(sorted))
	for i, v := range sorted {
		if !v.IsRandom() {
			return nil, nil, fmt.Errorf("%w: %s (%s)", ErrNotRandom, v.name, v.role)
		}
		if _, dup := rv.byName[v.name]; dup {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateVariable, v.name)
		}
		rv.index[v] = i
		rv.byName[v.name] = v
		names = append(names, v.name)
	}

	return rv, names, nil
}

// Variables returns the variables in canonical (name-sorted) order.
func (rv *RandomVector) Variables() []Variable { return append([]Variable(nil), rv.vars...) }

// Len returns the number of variables.
func (rv *RandomVector) Len() int { return len(rv.vars) }

// Graph returns the dependence graph. Graphs are immutable.
func (rv *RandomVector) Graph() *depgraph.Graph { return rv.graph }

// Contains reports whether v belongs to rv.
func (rv *RandomVector) Contains(v Variable) bool {
	_, ok := rv.index[v]

	return ok
}

// Lookup returns the variable called name.
func (rv *RandomVector) Lookup(name string) (Variable, bool) {
	v, ok := rv.byName[name]

	return v, ok
}

// Dependencies returns the declared dependencies, each once, sorted.
func (rv *RandomVector) Dependencies() []Dependence {
	edges := rv.graph.Edges()
	out := make([]Dependence, 0, len(edges))
	for _, e := range edges {
		out = append(out, Dependence{rv.byName[e[0]], rv.byName[e[1]]})
	}

	return out
}

// VPM converts a dense exponent tuple aligned to rv into a sparse map.
func (rv *RandomVector) VPM(multiIdx []int) (VPM, error) {
	if len(multiIdx) != len(rv.vars) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(multiIdx), len(rv.vars))
	}
	out := make(VPM)
	for i, p := range multiIdx {
		switch {
		case p < 0:
			return nil, fmt.Errorf("%w: %s^%d", ErrNegativePower, rv.vars[i].name, p)
		case p > 0:
			out[rv.vars[i]] = p
		}
	}

	return out, nil
}

// MultiIdx converts vpm into a dense exponent tuple aligned to rv.
func (rv *RandomVector) MultiIdx(vpm VPM) ([]int, error) {
	out := make([]int, len(rv.vars))
	for v, p := range vpm {
		if p == 0 {
			continue
		}
		i, ok := rv.index[v]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, v.name)
		}
		out[i] = p
	}

	return out, nil
}

// Components splits vars into the maximal dependent groups of the subgraph
// they induce. Groups are ordered by their smallest name; members sorted.
func (rv *RandomVector) Components(vars []Variable) ([][]Variable, error) {
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		if !rv.Contains(v) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, v.name)
		}
		names = append(names, v.name)
	}
	groups, err := rv.graph.Components(names)
	if err != nil {
		return nil, err
	}
	out := make([][]Variable, 0, len(groups))
	for _, g := range groups {
		comp := make([]Variable, 0, len(g))
		for _, name := range g {
			comp = append(comp, rv.byName[name])
		}
		out = append(out, comp)
	}

	return out, nil
}

// IndexedTerm is one group of a polynomial collected over a random vector:
// every term of the polynomial whose random part has exponent tuple Index,
// with the non-random remainder summed into Coeff.
type IndexedTerm struct {
	Index []int
	Coeff poly.Poly
}

// Collect normalizes p into (coefficient, exponent tuple) pairs aligned to
// rv. Symbols outside rv (controls, constants, moments) stay inside the
// coefficient. The result is ordered by exponent tuple, lexicographically
// descending, so the highest power of the first variable comes first.
func (rv *RandomVector) Collect(p poly.Poly) []IndexedTerm {
	groups := make(map[string]*IndexedTerm)
	for _, t := range p.Terms() {
		idx := make([]int, len(rv.vars))
		rest := make([]poly.Factor, 0, len(t.Factors))
		for _, f := range t.Factors {
			if v, ok := f.Sym.(Variable); ok {
				if i, in := rv.index[v]; in {
					idx[i] += f.Pow
					continue
				}
			}
			rest = append(rest, f)
		}
		k := indexKey(idx)
		g, ok := groups[k]
		if !ok {
			g = &IndexedTerm{Index: idx}
			groups[k] = g
		}
		g.Coeff = g.Coeff.Add(poly.Monomial(t.Coeff, rest...))
	}

	out := make([]IndexedTerm, 0, len(groups))
	for _, g := range groups {
		if !g.Coeff.IsZero() {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lexGreater(out[i].Index, out[j].Index) })

	return out
}

func indexKey(idx []int) string {
	parts := make([]string, len(idx))
	for i, p := range idx {
		parts[i] = strconv.Itoa(p)
	}

	return strings.Join(parts, ",")
}

func lexGreater(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}

	return false
}
