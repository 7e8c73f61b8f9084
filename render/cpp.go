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

// cppStyle keeps rational coefficients in floating point: 1/3 would be
// integer division.
var cppStyle = poly.Style{
	Mul: "*",
	Pow: func(base string, n int) string { return "pow(" + base + ", " + strconv.Itoa(n) + ")" },
	Rat: func(r *big.Rat) string { return "(" + r.Num().String() + ".0/" + r.Denom().String() + ".0)" },
}

var cppDialect = dialect{
	mul:  "*",
	div:  "/",
	pow2: func(s string) string { return "pow(" + s + ", 2)" },
	sqrt: func(s string) string { return "sqrt(" + s + ")" },
}

// cppStruct is one input or output structure: its C++ type, the parameter
// name it is passed as and its double fields.
type cppStruct struct {
	typ    string
	param  string
	fields []string
}

type cppRenderer struct{}

func (r *cppRenderer) Syntax() Syntax { return Cpp }

func (r *cppRenderer) Expr(p poly.Poly) string { return p.Format(cppStyle) }

func (r *cppRenderer) MomentSystem(w io.Writer, s *dynsys.MomentStateDynamicalSystem) error {
	in := momentSystemStructs(s)
	out := cppStruct{typ: in[0].typ, param: "moment_state"}
	assign := make([][2]string, 0, s.Len())
	for _, e := range s.Entries() {
		assign = append(assign, [2]string{e.Moment.Name(), r.Expr(e.Update)})
	}

	return writeCppFunction(w, "PropagateMoments", in, out, "Dynamics updates.", assign, false)
}

func (r *cppRenderer) MomentExpressions(w io.Writer, me *momentexpr.MomentExpressions) error {
	in, assign := r.expressionParts(me)

	return writeCppFunction(w, "EvaluateMomentExpressions", in,
		cppStruct{typ: "MomentExpressions", param: "out"}, "Moment expressions.", assign, true)
}

func (r *cppRenderer) Inequality(w io.Writer, ci *inequality.Inequality) error {
	in, assign := r.expressionParts(ci.Expressions())
	bound, condition := cppDialect.bound(ci.Kind())
	assign = append(assign,
		[2]string{varianceName, cppDialect.variance()},
		[2]string{boundName, bound},
		[2]string{conditionName, condition},
	)

	return writeCppFunction(w, "EvaluateConcentrationInequality", in,
		cppStruct{typ: "ConcentrationInequality", param: "out"}, "Moment expressions and probability bound.", assign, true)
}

func (r *cppRenderer) expressionParts(me *momentexpr.MomentExpressions) ([]cppStruct, [][2]string) {
	moments := cppStruct{typ: "InputMoments", param: "input_moments"}
	for _, m := range me.Moments() {
		moments.fields = append(moments.fields, m.Name())
	}
	det := cppStruct{typ: "InputDeterministic", param: "input_deterministic"}
	for _, v := range me.Deterministic() {
		det.fields = append(det.fields, v.Name())
	}
	assign := make([][2]string, 0, len(me.Names()))
	for _, name := range me.Names() {
		expr, _ := me.Expression(name)
		assign = append(assign, [2]string{name, r.Expr(expr)})
	}

	return []cppStruct{moments, det}, assign
}

// momentSystemStructs returns the input structures of PropagateMoments.
func momentSystemStructs(s *dynsys.MomentStateDynamicalSystem) []cppStruct {
	state := cppStruct{typ: "MomentState", param: "prev_moment_state"}
	for _, m := range s.StateMoments() {
		state.fields = append(state.fields, m.Name())
	}
	dist := cppStruct{typ: "DisturbanceMoments", param: "disturbance_moments"}
	for _, m := range s.DisturbanceMoments() {
		dist.fields = append(dist.fields, m.Name())
	}
	ctl := cppStruct{typ: "Controls", param: "control_inputs"}
	for _, v := range s.ControlVariables() {
		ctl.fields = append(ctl.fields, v.Name())
	}

	return []cppStruct{state, dist, ctl}
}

// writeCppFunction prints the structures and a function that aliases every
// input field and fills out. With locals, each value is first bound to a
// local constant so later assignments can refer to earlier ones, and out is
// declared as a new structure whose fields are the assigned names; otherwise
// out reuses the type of the first input.
func writeCppFunction(w io.Writer, fn string, in []cppStruct, out cppStruct, section string, assign [][2]string, locals bool) error {
	p := &printer{w: w}
	p.line("#include <cmath>")
	p.line("using namespace std;")
	p.blank()

	structs := in
	if locals {
		for _, a := range assign {
			out.fields = append(out.fields, a[0])
		}
		structs = append(append([]cppStruct(nil), in...), out)
	}
	for _, s := range structs {
		p.line("struct %s {", s.typ)
		for _, f := range s.fields {
			p.line("  double %s;", f)
		}
		p.line("};")
		p.blank()
	}

	params := ""
	for _, s := range in {
		params += "const " + s.typ + " *" + s.param + ", "
	}
	p.line("void %s(%s%s *%s) {", fn, params, out.typ, out.param)
	p.line("  // Aliases for the required inputs.")
	for _, s := range in {
		for _, f := range s.fields {
			p.line("  const double &%s = %s->%s;", f, s.param, f)
		}
	}
	p.blank()
	p.line("  // %s", section)
	for _, a := range assign {
		if locals {
			p.line("  const double %s = %s;", a[0], a[1])
			continue
		}
		p.line("  %s->%s = %s;", out.param, a[0], a[1])
	}
	if locals {
		p.blank()
		for _, a := range assign {
			p.line("  %s->%s = %s;", out.param, a[0], a[0])
		}
	}
	p.line("}")

	return p.err
}
