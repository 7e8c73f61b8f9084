// SPDX-License-Identifier: MIT
package momentexpr_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/momentexpr"
	"github.com/katalvlaran/algmoments/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gx = moment.Disturbance("gx")
	gy = moment.Disturbance("gy")
	c  = moment.Control("c")

	GX, GY, C = poly.Sym(gx), poly.Sym(gy), poly.Sym(c)
)

func vector(t *testing.T, deps ...moment.Dependence) *moment.RandomVector {
	t.Helper()
	rv, err := moment.NewRandomVector([]moment.Variable{gx, gy}, deps)
	require.NoError(t, err)

	return rv
}

func TestGenerate_SharedMoments(t *testing.T) {
	g := C.Mul(GX).Add(GY)
	me, err := momentexpr.Generate([]momentexpr.Named{
		{Name: "first_moment", Expr: g},
		{Name: "second_moment", Expr: g.MustPow(2)},
	}, vector(t), []moment.Variable{c})
	require.NoError(t, err)

	assert.Equal(t, []string{"first_moment", "second_moment"}, me.Names())

	first, ok := me.Expression("first_moment")
	require.True(t, ok)
	assert.Equal(t, "gxPow1*c + gyPow1", first.String())

	second, ok := me.Expression("second_moment")
	require.True(t, ok)
	assert.Equal(t, "2*gxPow1*gyPow1*c + gxPow2*c**2 + gyPow2", second.String())

	names := make([]string, 0)
	for _, m := range me.Moments() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"gxPow1", "gyPow1", "gxPow2", "gyPow2"}, names)
	assert.Equal(t, []moment.Variable{c}, me.Deterministic())

	_, ok = me.Expression("third_moment")
	assert.False(t, ok)
}

func TestGenerate_DependentVariablesJoin(t *testing.T) {
	me, err := momentexpr.Generate([]momentexpr.Named{
		{Name: "g", Expr: GX.Mul(GY).Scale(3)},
	}, vector(t, moment.Dependence{gx, gy}), nil)
	require.NoError(t, err)

	g, _ := me.Expression("g")
	assert.Equal(t, "3*gxPow1_gyPow1", g.String())

	require.Len(t, me.Moments(), 1)
	idx, err := me.MultiIdx(me.Moments()[0])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, idx)
}

func TestGenerate_WithPool(t *testing.T) {
	pool := moment.NewPool()
	rv := vector(t)

	first, err := momentexpr.Generate([]momentexpr.Named{{Name: "a", Expr: GX}}, rv, nil, momentexpr.WithPool(pool))
	require.NoError(t, err)
	second, err := momentexpr.Generate([]momentexpr.Named{{Name: "b", Expr: GX.Add(GY)}}, rv, nil, momentexpr.WithPool(pool))
	require.NoError(t, err)

	require.Len(t, first.Moments(), 1)
	require.Len(t, second.Moments(), 1, "E[gx] came from the shared pool")
	assert.Equal(t, "gyPow1", second.Moments()[0].Name())
	assert.Equal(t, 2, pool.Len())
}

func TestGenerate_Errors(t *testing.T) {
	rv := vector(t)
	z := moment.Control("z")

	cases := []struct {
		name  string
		named []momentexpr.Named
		det   []moment.Variable
		want  error
	}{
		{"bad name", []momentexpr.Named{{Name: "first moment", Expr: GX}}, nil, momentexpr.ErrBadName},
		{"empty name", []momentexpr.Named{{Name: "", Expr: GX}}, nil, momentexpr.ErrBadName},
		{"duplicate", []momentexpr.Named{{Name: "g", Expr: GX}, {Name: "g", Expr: GY}}, nil, momentexpr.ErrDuplicateName},
		{"random as deterministic", []momentexpr.Named{{Name: "g", Expr: GX}}, []moment.Variable{gy}, momentexpr.ErrNotDeterministic},
		{"deterministic shadows random", []momentexpr.Named{{Name: "g", Expr: GX}}, []moment.Variable{moment.Control("gx")}, momentexpr.ErrShadowedName},
		{"undeclared", []momentexpr.Named{{Name: "g", Expr: GX.Mul(poly.Sym(z))}}, nil, momentexpr.ErrUnknownSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			me, err := momentexpr.Generate(tc.named, rv, tc.det)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, me)
		})
	}

	_, err := momentexpr.Generate(nil, nil, nil)
	assert.ErrorIs(t, err, momentexpr.ErrNilRandomVector)
}
