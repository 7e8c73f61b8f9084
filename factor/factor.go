// SPDX-License-Identifier: MIT
package factor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
)

var (
	// ErrNilRandomVector is returned when no random vector is supplied.
	ErrNilRandomVector = errors.New("factor: random vector is nil")

	// ErrNilPool is returned when no moment pool is supplied.
	ErrNilPool = errors.New("factor: moment pool is nil")

	// ErrResidualRandomVariable signals that a random variable survived into
	// a moment form. It indicates a defect, not bad input.
	ErrResidualRandomVariable = errors.New("factor: random variable left in moment form")
)

// MomentForm returns the moment form of expr over rv and the moments newly
// created in pool by this call, in creation order.
//
// Implementation:
//   - Stage 1: rv.Collect normalizes expr into (coefficient, exponent tuple)
//     pairs; coefficients carry every symbol outside rv.
//   - Stage 2: each tuple becomes a VPM; its variables are split into the
//     connected components of the dependence subgraph they induce.
//   - Stage 3: with partial reduction, components outside the reduction set
//     are merged into one lumped component.
//   - Stage 4: each component's restricted VPM is resolved in pool (reuse or
//     create); more than one match aborts with moment.ErrPoolInconsistent.
//   - Stage 5: contribution = coefficient × Π moments; contributions summed.
//
// Errors:
//   - ErrNilRandomVector, ErrNilPool for missing collaborators.
//   - moment.ErrPoolInconsistent, propagated unchanged (wrapped); the pool
//     may already hold moments created earlier in the same call.
//   - ErrResidualRandomVariable if the invariant "no random variable of rv
//     survives" is violated.
//
// Determinism:
//   - Terms are visited in rv.Collect order and components in
//     RandomVector.Components order, so creation order is reproducible.
func MomentForm(expr poly.Poly, rv *moment.RandomVector, pool *moment.Pool, opts ...Option) (poly.Poly, []*moment.Moment, error) {
	if rv == nil {
		return poly.Zero(), nil, ErrNilRandomVector
	}
	if pool == nil {
		return poly.Zero(), nil, ErrNilPool
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var created []*moment.Moment
	result := poly.Zero()
	for _, term := range rv.Collect(expr) {
		vpm, err := rv.VPM(term.Index)
		if err != nil {
			return poly.Zero(), nil, err
		}

		contribution := term.Coeff
		if len(vpm) > 0 {
			comps, err := rv.Components(vpm.Variables())
			if err != nil {
				return poly.Zero(), nil, err
			}
			if o.PartialReduction != nil {
				comps = lump(comps, o.PartialReduction)
			}
			for _, comp := range comps {
				m, isNew, err := pool.Resolve(vpm.Restrict(comp))
				if err != nil {
					return poly.Zero(), nil, fmt.Errorf("factor: resolving %s: %w", vpm.Restrict(comp), err)
				}
				if isNew {
					created = append(created, m)
					o.Logger.Debug("moment created", "moment", m.Name(), "degree", m.Degree())
				}
				contribution = contribution.Mul(poly.Sym(m))
			}
		}
		result = result.Add(contribution)
	}

	if err := checkResidual(result, rv); err != nil {
		return poly.Zero(), nil, err
	}

	return result, created, nil
}

// lump keeps components contained in keep as they are and merges all other
// components into one, placed where the first of them stood.
func lump(comps [][]moment.Variable, keep map[moment.Variable]struct{}) [][]moment.Variable {
	out := make([][]moment.Variable, 0, len(comps))
	lumpAt := -1
	for _, comp := range comps {
		if containedIn(comp, keep) {
			out = append(out, comp)
			continue
		}
		if lumpAt < 0 {
			lumpAt = len(out)
			out = append(out, append([]moment.Variable(nil), comp...))
			continue
		}
		out[lumpAt] = append(out[lumpAt], comp...)
	}

	return out
}

func containedIn(comp []moment.Variable, set map[moment.Variable]struct{}) bool {
	for _, v := range comp {
		if _, ok := set[v]; !ok {
			return false
		}
	}

	return true
}

func checkResidual(p poly.Poly, rv *moment.RandomVector) error {
	for _, s := range p.Symbols() {
		if v, ok := s.(moment.Variable); ok && rv.Contains(v) {
			return fmt.Errorf("%w: %s", ErrResidualRandomVariable, v.Name())
		}
	}

	return nil
}
