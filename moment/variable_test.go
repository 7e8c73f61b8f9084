// SPDX-License-Identifier: MIT
package moment_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/moment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVariable_RejectsWhitespace(t *testing.T) {
	for _, name := range []string{"", "a b", " x", "x\t", "y\n", "z\x00", "q\x1b"} {
		_, err := moment.NewVariable(name, moment.RoleState)
		require.ErrorIs(t, err, moment.ErrBadVariableName, "name %q", name)
	}

	v, err := moment.NewVariable("omega_l", moment.RoleDisturbance)
	require.NoError(t, err)
	assert.Equal(t, "omega_l", v.Name())
	assert.Equal(t, moment.RoleDisturbance, v.Role())
	assert.True(t, v.IsRandom())
	assert.Equal(t, "v:omega_l", v.Key())

	_, err = moment.NewVariable("x", moment.Role(42))
	require.ErrorIs(t, err, moment.ErrUnknownRole)
}

func TestMustVariable_Panics(t *testing.T) {
	assert.Panics(t, func() { moment.MustVariable("bad name", moment.RoleControl) })
	assert.False(t, moment.Control("u").IsRandom())
}

func TestParseRole(t *testing.T) {
	cases := map[string]moment.Role{
		"state":         moment.RoleState,
		"Disturbance":   moment.RoleDisturbance,
		"random":        moment.RoleDisturbance,
		"control":       moment.RoleControl,
		"deterministic": moment.RoleControl,
	}
	for in, want := range cases {
		got, err := moment.ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := moment.ParseRole("observer")
	require.ErrorIs(t, err, moment.ErrUnknownRole)
	assert.Equal(t, "control", moment.RoleControl.String())
}
