// SPDX-License-Identifier: MIT
package hclmodel_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/hclmodel"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exprVars = map[string]moment.Variable{
	"x": moment.State("x"),
	"y": moment.State("y"),
	"u": moment.Control("u"),
}

func TestParseExpr(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2*x - 0.5*y + 3", "2*x - 1/2*y + 3"},
		{"pow(x + 1, 2)", "x**2 + 2*x + 1"},
		{"(x - y) / 4", "1/4*x - 1/4*y"},
		{"-x", "-x"},
		{"-(x * u)", "-u*x"},
		{"0.1 * x", "1/10*x"},
		{"1e3 * x", "1000*x"},
		{"pow(x, 0)", "1"},
		{"x - x", "0"},
		{"u * (x + y) * u", "u**2*x + u**2*y"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			p, err := hclmodel.ParseExpr(tc.src, exprVars)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

func TestParseExpr_Errors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"x / y", hclmodel.ErrBadDivisor},
		{"x / (1 - 1)", hclmodel.ErrBadDivisor},
		{"pow(x, 1.5)", hclmodel.ErrBadExponent},
		{"pow(x, -1)", hclmodel.ErrBadExponent},
		{"pow(x, y)", hclmodel.ErrBadExponent},
		{"z + 1", hclmodel.ErrUnknownVariable},
		{"sin(x)", hclmodel.ErrUnsupportedExpr},
		{"pow(x)", hclmodel.ErrUnsupportedExpr},
		{"x > 1", hclmodel.ErrUnsupportedExpr},
		{"x % 2", hclmodel.ErrUnsupportedExpr},
		{`"x"`, hclmodel.ErrUnsupportedExpr},
		{"x.y", hclmodel.ErrUnsupportedExpr},
		{"!x", hclmodel.ErrUnsupportedExpr},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			_, err := hclmodel.ParseExpr(tc.src, exprVars)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := hclmodel.ParseExpr("x +", exprVars)
	assert.Error(t, err)
}
