// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/algmoments/dynsys"
	"github.com/katalvlaran/algmoments/inequality"
	"github.com/katalvlaran/algmoments/momentexpr"
	"github.com/katalvlaran/algmoments/poly"
)

var pythonDialect = dialect{
	mul:  "*",
	div:  "/",
	pow2: func(s string) string { return s + "**2" },
	sqrt: func(s string) string { return "(" + s + ")**0.5" },
}

type pythonRenderer struct {
	opts options
}

func (r *pythonRenderer) Syntax() Syntax { return Python }

func (r *pythonRenderer) Expr(p poly.Poly) string { return p.Format(poly.PlainStyle) }

func (r *pythonRenderer) MomentSystem(w io.Writer, s *dynsys.MomentStateDynamicalSystem) error {
	p := &printer{w: w}
	p.line("# Parse required inputs.")
	for _, m := range s.StateMoments() {
		p.line("%s = prev_moment_state[%q]", m, m.Name())
	}
	p.blank()
	for _, m := range s.DisturbanceMoments() {
		p.line("%s = disturbance_moments[%q]", m, m.Name())
	}
	if controls := s.ControlVariables(); len(controls) > 0 {
		p.blank()
		for _, v := range controls {
			p.line("%s = control_inputs[%q]", v, v.Name())
		}
	}
	p.blank()
	p.line("# Dynamics updates.")
	p.line("moment_state = dict()")
	for _, e := range s.Entries() {
		p.line("moment_state[%q] = %s", e.Moment.Name(), r.Expr(e.Update))
	}

	return p.err
}

func (r *pythonRenderer) MomentExpressions(w io.Writer, me *momentexpr.MomentExpressions) error {
	p := &printer{w: w}
	p.line("# Parse required inputs.")
	for _, m := range me.Moments() {
		key := strconv.Quote(m.Name())
		if r.opts.multiIdxKeys {
			idx, err := me.MultiIdx(m)
			if err != nil {
				return fmt.Errorf("render: %s: %w", m, err)
			}
			key = pythonTuple(idx)
		}
		p.line("%s = input_moments[%s]", m, key)
	}
	for _, v := range me.Deterministic() {
		p.line("%s = input_deterministic[%q]", v, v.Name())
	}
	p.blank()
	p.line("# Moment expressions.")
	for _, name := range me.Names() {
		expr, _ := me.Expression(name)
		p.line("%s = %s", name, r.Expr(expr))
	}

	return p.err
}

func (r *pythonRenderer) Inequality(w io.Writer, ci *inequality.Inequality) error {
	if err := r.MomentExpressions(w, ci.Expressions()); err != nil {
		return err
	}
	bound, condition := pythonDialect.bound(ci.Kind())
	p := &printer{w: w}
	p.blank()
	p.line("# Establish the probability bound.")
	p.line("# We need %s<=0 for this bound to hold.", conditionName)
	p.line("%s = %s", varianceName, pythonDialect.variance())
	p.line("%s = %s", boundName, bound)
	p.line("%s = %s", conditionName, condition)

	return p.err
}

// pythonTuple renders idx as a Python tuple literal.
func pythonTuple(idx []int) string {
	parts := make([]string, len(idx))
	for i, n := range idx {
		parts[i] = strconv.Itoa(n)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
