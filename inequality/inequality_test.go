// SPDX-License-Identifier: MIT
package inequality_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/algmoments/inequality"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]inequality.Kind{
		"cantelli":             inequality.Cantelli,
		"VP":                   inequality.VysochanskijPetunin,
		"vysochanskij-petunin": inequality.VysochanskijPetunin,
		" gauss ":              inequality.Gauss,
	} {
		got, err := inequality.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := inequality.ParseKind("chebyshev")
	assert.ErrorIs(t, err, inequality.ErrUnknownKind)
}

func TestBoundAndCondition(t *testing.T) {
	const m, v = 3.0, 2.0

	assert.InDelta(t, 2.0/11.0, inequality.Bound(inequality.Cantelli, m, v), 1e-12)
	assert.InDelta(t, 8.0/99.0, inequality.Bound(inequality.VysochanskijPetunin, m, v), 1e-12)
	assert.InDelta(t, 4.0/81.0, inequality.Bound(inequality.Gauss, m, v), 1e-12)

	assert.InDelta(t, -3.0, inequality.Condition(inequality.Cantelli, m, v), 1e-12)
	assert.InDelta(t, -3.0+math.Sqrt(10.0/3.0), inequality.Condition(inequality.VysochanskijPetunin, m, v), 1e-12)
	assert.InDelta(t, -3.0+2.0/3.0*math.Sqrt(2.0), inequality.Condition(inequality.Gauss, m, v), 1e-12)

	assert.True(t, math.IsInf(inequality.Bound(inequality.Gauss, 0, 1), 1))
}

func TestNewAndEvaluate(t *testing.T) {
	gx, gy, c := moment.Disturbance("gx"), moment.Disturbance("gy"), moment.Control("c")
	rv, err := moment.NewRandomVector([]moment.Variable{gx, gy}, nil)
	require.NoError(t, err)

	g := poly.Sym(c).Mul(poly.Sym(gx)).Add(poly.Sym(gy))
	ci, err := inequality.New(g, rv, []moment.Variable{c}, inequality.Cantelli)
	require.NoError(t, err)

	assert.Equal(t, inequality.Cantelli, ci.Kind())
	assert.True(t, ci.Constraint().Equal(g))
	assert.Equal(t, []string{inequality.FirstMoment, inequality.SecondMoment}, ci.Expressions().Names())

	res, err := ci.Evaluate(map[string]float64{
		"gxPow1": 1, "gyPow1": 2, "gxPow2": 2, "gyPow2": 5, "c": 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.Mean, 1e-12)
	assert.InDelta(t, 2.0, res.Variance, 1e-12)
	assert.InDelta(t, 2.0/11.0, res.Bound, 1e-12)
	assert.True(t, res.Valid())

	_, err = ci.Evaluate(map[string]float64{"gxPow1": 1})
	assert.ErrorIs(t, err, poly.ErrUnboundSymbol)
}

func TestNew_Errors(t *testing.T) {
	gx := moment.Disturbance("gx")
	rv, err := moment.NewRandomVector([]moment.Variable{gx}, nil)
	require.NoError(t, err)

	_, err = inequality.New(poly.Sym(gx), rv, nil, inequality.Kind(7))
	assert.ErrorIs(t, err, inequality.ErrUnknownKind)

	_, err = inequality.New(poly.Sym(moment.Control("q")), rv, nil, inequality.Gauss)
	assert.Error(t, err)
}
