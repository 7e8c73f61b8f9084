// SPDX-License-Identifier: MIT
package moment_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/depgraph"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomVector_OrderAndConversion(t *testing.T) {
	wr := moment.Disturbance("w")
	xr := moment.Disturbance("x")
	rv, err := moment.NewRandomVector([]moment.Variable{xr, wr}, nil)
	require.NoError(t, err)

	assert.Equal(t, []moment.Variable{wr, xr}, rv.Variables())

	vpm, err := rv.VPM([]int{1, 2})
	require.NoError(t, err)
	assert.True(t, vpm.Equal(moment.VPM{wr: 1, xr: 2}))

	idx, err := rv.MultiIdx(vpm)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, idx)

	_, err = rv.VPM([]int{1})
	require.ErrorIs(t, err, moment.ErrDimensionMismatch)
	_, err = rv.MultiIdx(moment.VPM{y: 1})
	require.ErrorIs(t, err, moment.ErrUnknownVariable)

	m := moment.MustNew(map[moment.Variable]int{xr: 4})
	idx, err = m.MultiIdx(rv)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, idx)
}

func TestNewRandomVector_Errors(t *testing.T) {
	_, err := moment.NewRandomVector([]moment.Variable{x, u}, nil)
	require.ErrorIs(t, err, moment.ErrNotRandom)

	_, err = moment.NewRandomVector([]moment.Variable{x, moment.Disturbance("x")}, nil)
	require.ErrorIs(t, err, moment.ErrDuplicateVariable)

	_, err = moment.NewRandomVector([]moment.Variable{x}, []moment.Dependence{{x, y}})
	require.ErrorIs(t, err, moment.ErrUnknownVariable)

	_, err = moment.NewRandomVector([]moment.Variable{x}, []moment.Dependence{{x, x}})
	require.ErrorIs(t, err, depgraph.ErrLoopNotAllowed)
}

func TestRandomVector_Components(t *testing.T) {
	rv, err := moment.NewRandomVector([]moment.Variable{x, y, w}, []moment.Dependence{{y, x}})
	require.NoError(t, err)

	comps, err := rv.Components([]moment.Variable{w, x, y})
	require.NoError(t, err)
	assert.Equal(t, [][]moment.Variable{{w}, {x, y}}, comps)
	assert.Equal(t, []moment.Dependence{{x, y}}, rv.Dependencies())

	_, err = rv.Components([]moment.Variable{u})
	require.ErrorIs(t, err, moment.ErrUnknownVariable)
}

func TestRandomVector_Collect(t *testing.T) {
	rv, err := moment.NewRandomVector([]moment.Variable{x, w}, nil)
	require.NoError(t, err)

	// (u*x + w)**2 + 3*x**2 = (u**2 + 3)*x**2 + 2*u*w*x + w**2
	X, W, U := poly.Sym(x), poly.Sym(w), poly.Sym(u)
	p := U.Mul(X).Add(W).MustPow(2).Add(X.MustPow(2).Scale(3))

	got := rv.Collect(p)
	require.Len(t, got, 3)

	// rv order is (w, x); lexicographically descending tuples.
	assert.Equal(t, []int{2, 0}, got[0].Index)
	assert.Equal(t, "1", got[0].Coeff.String())
	assert.Equal(t, []int{1, 1}, got[1].Index)
	assert.Equal(t, "2*u", got[1].Coeff.String())
	assert.Equal(t, []int{0, 2}, got[2].Index)
	assert.Equal(t, "u**2 + 3", got[2].Coeff.String())
}

func TestRandomVector_Join(t *testing.T) {
	states, err := moment.NewRandomVector([]moment.Variable{x, y}, []moment.Dependence{{x, y}})
	require.NoError(t, err)
	dist, err := moment.NewRandomVector([]moment.Variable{w}, nil)
	require.NoError(t, err)

	sys, err := states.Join(dist)
	require.NoError(t, err)
	assert.Equal(t, []moment.Variable{w, x, y}, sys.Variables())
	assert.True(t, sys.Graph().HasEdge("x", "y"))
	assert.False(t, sys.Graph().HasEdge("w", "x"))
	assert.Equal(t, 2, states.Len())

	_, err = states.Join(states)
	require.ErrorIs(t, err, moment.ErrDuplicateVariable)
}
