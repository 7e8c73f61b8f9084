// SPDX-License-Identifier: MIT
package render

import (
	"io"
	"math/big"
	"strconv"

	"github.com/katalvlaran/algmoments/dynsys"
	"github.com/katalvlaran/algmoments/inequality"
	"github.com/katalvlaran/algmoments/momentexpr"
	"github.com/katalvlaran/algmoments/poly"
)

// octaveStyle uses element-wise operators so generated code also works on
// arrays of samples.
var octaveStyle = poly.Style{
	Mul: ".*",
	Pow: func(base string, n int) string { return base + ".^" + strconv.Itoa(n) },
	Rat: func(r *big.Rat) string { return "(" + r.RatString() + ")" },
}

var octaveDialect = dialect{
	mul:  ".*",
	div:  "./",
	pow2: func(s string) string { return s + ".^2" },
	sqrt: func(s string) string { return "sqrt(" + s + ")" },
}

type octaveRenderer struct{}

func (r *octaveRenderer) Syntax() Syntax { return Octave }

func (r *octaveRenderer) Expr(p poly.Poly) string { return p.Format(octaveStyle) }

func (r *octaveRenderer) MomentSystem(w io.Writer, s *dynsys.MomentStateDynamicalSystem) error {
	p := &printer{w: w}
	p.line("%% Parse required inputs.")
	for _, m := range s.StateMoments() {
		p.line("%s = prev_moment_state.%s;", m, m)
	}
	p.blank()
	for _, m := range s.DisturbanceMoments() {
		p.line("%s = disturbance_moments.%s;", m, m)
	}
	if controls := s.ControlVariables(); len(controls) > 0 {
		p.blank()
		for _, v := range controls {
			p.line("%s = control_inputs.%s;", v, v)
		}
	}
	p.blank()
	p.line("%% Dynamics updates.")
	for _, e := range s.Entries() {
		p.line("moment_state.%s = %s;", e.Moment, r.Expr(e.Update))
	}

	return p.err
}

func (r *octaveRenderer) MomentExpressions(w io.Writer, me *momentexpr.MomentExpressions) error {
	p := &printer{w: w}
	p.line("%% Parse required inputs.")
	for _, m := range me.Moments() {
		p.line("%s = input_moments.%s;", m, m)
	}
	for _, v := range me.Deterministic() {
		p.line("%s = input_deterministic.%s;", v, v)
	}
	p.blank()
	p.line("%% Moment expressions.")
	for _, name := range me.Names() {
		expr, _ := me.Expression(name)
		p.line("%s = %s;", name, r.Expr(expr))
	}

	return p.err
}

func (r *octaveRenderer) Inequality(w io.Writer, ci *inequality.Inequality) error {
	if err := r.MomentExpressions(w, ci.Expressions()); err != nil {
		return err
	}
	bound, condition := octaveDialect.bound(ci.Kind())
	p := &printer{w: w}
	p.blank()
	p.line("%% Establish the probability bound.")
	p.line("%% We need %s<=0 for this bound to hold.", conditionName)
	p.line("%s = %s;", varianceName, octaveDialect.variance())
	p.line("%s = %s;", boundName, bound)
	p.line("%s = %s;", conditionName, condition)

	return p.err
}
