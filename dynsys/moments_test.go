// SPDX-License-Identifier: MIT
package dynsys_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/dynsys"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMomentStateDynamicalSystem_Accessors(t *testing.T) {
	mx := moment.MustNew(map[moment.Variable]int{x: 1})
	mw := moment.MustNew(map[moment.Variable]int{w: 1})
	upd := poly.Sym(mx).Add(poly.Sym(mw).Mul(poly.Sym(u)))

	s, err := dynsys.NewMomentStateDynamicalSystem(
		[]dynsys.Entry{{Moment: mx, Update: upd}},
		[]*moment.Moment{mw},
		[]moment.Variable{u},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []*moment.Moment{mx}, s.StateMoments())
	assert.Equal(t, []*moment.Moment{mw}, s.DisturbanceMoments())
	assert.Equal(t, []moment.Variable{u}, s.ControlVariables())

	got, ok := s.Dynamics(mx)
	require.True(t, ok)
	assert.True(t, got.Equal(upd))

	// Lookup is by identity: an equal-VPM moment from elsewhere is unknown.
	_, ok = s.Dynamics(moment.MustNew(map[moment.Variable]int{x: 1}))
	assert.False(t, ok)

	entries := s.Entries()
	entries[0].Moment = mw
	assert.Same(t, mx, s.StateMoments()[0], "accessors return copies")
}

func TestMomentStateDynamicalSystem_Closure(t *testing.T) {
	mx := moment.MustNew(map[moment.Variable]int{x: 1})
	mx2 := moment.MustNew(map[moment.Variable]int{x: 2})
	mw := moment.MustNew(map[moment.Variable]int{w: 1})

	_, err := dynsys.NewMomentStateDynamicalSystem(
		[]dynsys.Entry{{Moment: mx, Update: poly.Sym(mx2)}}, nil, nil)
	require.ErrorIs(t, err, dynsys.ErrNotClosed)

	_, err = dynsys.NewMomentStateDynamicalSystem(
		[]dynsys.Entry{{Moment: mx, Update: poly.Sym(mx).Mul(poly.Sym(u))}}, nil, nil)
	require.ErrorIs(t, err, dynsys.ErrNotClosed, "undeclared control")

	_, err = dynsys.NewMomentStateDynamicalSystem(
		[]dynsys.Entry{{Moment: mx, Update: poly.Sym(x)}}, nil, nil)
	require.ErrorIs(t, err, dynsys.ErrNotClosed, "raw random variable")

	_, err = dynsys.NewMomentStateDynamicalSystem(
		[]dynsys.Entry{{Moment: mx, Update: poly.Sym(mx)}, {Moment: mx, Update: poly.Sym(mx)}}, nil, nil)
	require.ErrorIs(t, err, dynsys.ErrDuplicateMoment)

	_, err = dynsys.NewMomentStateDynamicalSystem(
		[]dynsys.Entry{{Moment: mx, Update: poly.Sym(mw)}}, []*moment.Moment{mw, mw}, nil)
	require.ErrorIs(t, err, dynsys.ErrDuplicateMoment)
}

func TestMomentStateDynamicalSystem_MarshalYAML(t *testing.T) {
	mx := moment.MustNew(map[moment.Variable]int{x: 1})
	mw := moment.MustNew(map[moment.Variable]int{w: 1})
	s, err := dynsys.NewMomentStateDynamicalSystem(
		[]dynsys.Entry{{Moment: mx, Update: poly.Sym(mx).Add(poly.Sym(mw))}},
		[]*moment.Moment{mw},
		[]moment.Variable{u},
	)
	require.NoError(t, err)

	out, err := yaml.Marshal(s)
	require.NoError(t, err)

	var doc struct {
		States []struct {
			Moment string `yaml:"moment"`
			Update string `yaml:"update"`
		} `yaml:"states"`
		Disturbances []string `yaml:"disturbances"`
		Controls     []string `yaml:"controls"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.States, 1)
	assert.Equal(t, "xPow1", doc.States[0].Moment)
	assert.Equal(t, "wPow1 + xPow1", doc.States[0].Update)
	assert.Equal(t, []string{"wPow1"}, doc.Disturbances)
	assert.Equal(t, []string{"u"}, doc.Controls)
}
