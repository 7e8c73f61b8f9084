// SPDX-License-Identifier: MIT
package hclmodel

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrUnknownVariable indicates a reference to an undeclared variable.
	ErrUnknownVariable = errors.New("hclmodel: unknown variable")

	// ErrUnsupportedExpr indicates HCL syntax outside polynomial arithmetic.
	ErrUnsupportedExpr = errors.New("hclmodel: unsupported expression")

	// ErrBadDivisor indicates division by a non-constant or zero.
	ErrBadDivisor = errors.New("hclmodel: divisor must be a non-zero constant")

	// ErrBadExponent indicates a pow exponent that is not a non-negative
	// integer constant.
	ErrBadExponent = errors.New("hclmodel: exponent must be a non-negative integer constant")
)

// ParseExpr parses src as a polynomial over vars, keyed by variable name.
func ParseExpr(src string, vars map[string]moment.Variable) (poly.Poly, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<expr>", hcl.InitialPos)
	if diags.HasErrors() {
		return poly.Zero(), fmt.Errorf("hclmodel: parse expression: %w", diags)
	}

	return toPoly(expr, vars)
}

// toPoly converts an HCL expression to a polynomial.
func toPoly(expr hcl.Expression, vars map[string]moment.Variable) (poly.Poly, error) {
	syn, ok := expr.(hclsyntax.Expression)
	if !ok {
		return poly.Zero(), fmt.Errorf("%w: %T at %s", ErrUnsupportedExpr, expr, expr.Range())
	}

	return convert(syn, vars)
}

func convert(expr hclsyntax.Expression, vars map[string]moment.Variable) (poly.Poly, error) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		r, err := literal(e.Val)
		if err != nil {
			return poly.Zero(), fmt.Errorf("%w at %s", err, e.SrcRange)
		}
		return poly.ConstRat(r), nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return poly.Zero(), fmt.Errorf("%w: attribute or index access at %s", ErrUnsupportedExpr, e.SrcRange)
		}
		name := e.Traversal.RootName()
		v, ok := vars[name]
		if !ok {
			return poly.Zero(), fmt.Errorf("%w: %s at %s", ErrUnknownVariable, name, e.SrcRange)
		}
		return poly.Sym(v), nil

	case *hclsyntax.ParenthesesExpr:
		return convert(e.Expression, vars)

	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return poly.Zero(), fmt.Errorf("%w: unary operator at %s", ErrUnsupportedExpr, e.SrcRange)
		}
		p, err := convert(e.Val, vars)
		if err != nil {
			return poly.Zero(), err
		}
		return p.Neg(), nil

	case *hclsyntax.BinaryOpExpr:
		return binary(e, vars)

	case *hclsyntax.FunctionCallExpr:
		return call(e, vars)

	default:
		return poly.Zero(), fmt.Errorf("%w: %T at %s", ErrUnsupportedExpr, expr, expr.Range())
	}
}

func binary(e *hclsyntax.BinaryOpExpr, vars map[string]moment.Variable) (poly.Poly, error) {
	lhs, err := convert(e.LHS, vars)
	if err != nil {
		return poly.Zero(), err
	}
	rhs, err := convert(e.RHS, vars)
	if err != nil {
		return poly.Zero(), err
	}

	switch e.Op {
	case hclsyntax.OpAdd:
		return lhs.Add(rhs), nil
	case hclsyntax.OpSubtract:
		return lhs.Sub(rhs), nil
	case hclsyntax.OpMultiply:
		return lhs.Mul(rhs), nil
	case hclsyntax.OpDivide:
		c, ok := constant(rhs)
		if !ok || c.Sign() == 0 {
			return poly.Zero(), fmt.Errorf("%w at %s", ErrBadDivisor, e.RHS.Range())
		}
		return lhs.ScaleRat(c.Inv(c)), nil
	default:
		return poly.Zero(), fmt.Errorf("%w: binary operator at %s", ErrUnsupportedExpr, e.SrcRange)
	}
}

func call(e *hclsyntax.FunctionCallExpr, vars map[string]moment.Variable) (poly.Poly, error) {
	if e.Name != "pow" || len(e.Args) != 2 || e.ExpandFinal {
		return poly.Zero(), fmt.Errorf("%w: function %s at %s", ErrUnsupportedExpr, e.Name, e.Range())
	}
	base, err := convert(e.Args[0], vars)
	if err != nil {
		return poly.Zero(), err
	}
	exp, err := convert(e.Args[1], vars)
	if err != nil {
		return poly.Zero(), err
	}
	n, ok := constant(exp)
	if !ok || !n.IsInt() || n.Sign() < 0 || !n.Num().IsInt64() {
		return poly.Zero(), fmt.Errorf("%w at %s", ErrBadExponent, e.Args[1].Range())
	}

	return base.Pow(int(n.Num().Int64()))
}

// literal converts a cty number to an exact rational through its shortest
// decimal representation.
func literal(v cty.Value) (*big.Rat, error) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
		return nil, fmt.Errorf("%w: %s literal", ErrUnsupportedExpr, v.Type().FriendlyName())
	}
	text := v.AsBigFloat().Text('g', -1)
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, fmt.Errorf("%w: number %s", ErrUnsupportedExpr, text)
	}

	return r, nil
}

// constant returns p's value when p has no symbols.
func constant(p poly.Poly) (*big.Rat, bool) {
	if len(p.Symbols()) > 0 {
		return nil, false
	}

	return p.Coefficient(), true
}
