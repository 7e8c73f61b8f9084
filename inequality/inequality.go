// SPDX-License-Identifier: MIT
package inequality

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/momentexpr"
	"github.com/katalvlaran/algmoments/poly"
)

// Names of the generated moment expressions.
const (
	FirstMoment  = "first_moment"
	SecondMoment = "second_moment"
)

var (
	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("inequality: unknown inequality kind")

	// ErrNilExpressions is returned when evaluating an Inequality without
	// moment expressions.
	ErrNilExpressions = errors.New("inequality: no moment expressions")
)

// Kind selects a concentration inequality.
type Kind int

const (
	Cantelli Kind = iota
	VysochanskijPetunin
	Gauss
)

// String returns the short configuration name.
func (k Kind) String() string {
	switch k {
	case Cantelli:
		return "cantelli"
	case VysochanskijPetunin:
		return "vp"
	case Gauss:
		return "gauss"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "cantelli", "vp" (or "vysochanskij-petunin") and "gauss"
// to a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cantelli":
		return Cantelli, nil
	case "vp", "vysochanskij-petunin":
		return VysochanskijPetunin, nil
	case "gauss":
		return Gauss, nil
	default:
		return Cantelli, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Bound returns the probability bound for mean m and variance v.
// Gauss with m == 0 yields +Inf.
func Bound(k Kind, m, v float64) float64 {
	switch k {
	case VysochanskijPetunin:
		return 4.0 / 9.0 * v / (v + m*m)
	case Gauss:
		return 2.0 / 9.0 * v / (m * m)
	default:
		return v / (v + m*m)
	}
}

// Condition returns the necessary condition value; the bound holds only
// when it is <= 0.
func Condition(k Kind, m, v float64) float64 {
	switch k {
	case VysochanskijPetunin:
		return -m + math.Sqrt(5.0*v/3.0)
	case Gauss:
		return -m + 2.0/3.0*math.Sqrt(v)
	default:
		return -m
	}
}

// Inequality is a concentration inequality over a polynomial g together
// with the moment expressions of E[g] and E[g²].
type Inequality struct {
	kind Kind
	g    poly.Poly
	me   *momentexpr.MomentExpressions
}

// New generates the moment expressions of g and g² over rv.
func New(g poly.Poly, rv *moment.RandomVector, deterministic []moment.Variable, kind Kind, opts ...momentexpr.Option) (*Inequality, error) {
	if kind < Cantelli || kind > Gauss {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	g2, err := g.Pow(2)
	if err != nil {
		return nil, err
	}
	me, err := momentexpr.Generate([]momentexpr.Named{
		{Name: FirstMoment, Expr: g},
		{Name: SecondMoment, Expr: g2},
	}, rv, deterministic, opts...)
	if err != nil {
		return nil, fmt.Errorf("inequality: %w", err)
	}

	return &Inequality{kind: kind, g: g, me: me}, nil
}

// Kind returns the inequality kind.
func (ci *Inequality) Kind() Kind { return ci.kind }

// Constraint returns the polynomial g.
func (ci *Inequality) Constraint() poly.Poly { return ci.g }

// Expressions returns the moment expressions of E[g] and E[g²].
func (ci *Inequality) Expressions() *momentexpr.MomentExpressions { return ci.me }

// Result is a numeric evaluation of an Inequality.
type Result struct {
	Mean      float64
	Variance  float64
	Bound     float64
	Condition float64
}

// Valid reports whether the necessary condition holds.
func (r Result) Valid() bool { return r.Condition <= 0 }

// Evaluate computes mean, variance, bound and condition. values maps moment
// names and deterministic variable names to their values.
func (ci *Inequality) Evaluate(values map[string]float64) (Result, error) {
	if ci == nil || ci.me == nil {
		return Result{}, ErrNilExpressions
	}
	first, _ := ci.me.Expression(FirstMoment)
	second, _ := ci.me.Expression(SecondMoment)

	m, err := first.EvalFloat(values)
	if err != nil {
		return Result{}, fmt.Errorf("inequality: %s: %w", FirstMoment, err)
	}
	s, err := second.EvalFloat(values)
	if err != nil {
		return Result{}, fmt.Errorf("inequality: %s: %w", SecondMoment, err)
	}
	v := s - m*m

	return Result{
		Mean:      m,
		Variance:  v,
		Bound:     Bound(ci.kind, m, v),
		Condition: Condition(ci.kind, m, v),
	}, nil
}
