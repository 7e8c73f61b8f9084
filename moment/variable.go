// SPDX-License-Identifier: MIT
package moment

import (
	"fmt"
	"strings"
	"unicode"
)

// Role is the part a variable plays in a dynamical system.
type Role int

const (
	// RoleState marks a random state variable propagated by the dynamics.
	RoleState Role = iota
	// RoleDisturbance marks an exogenous random variable supplied each step.
	RoleDisturbance
	// RoleControl marks a deterministic input.
	RoleControl
)

var roleNames = map[Role]string{
	RoleState:       "state",
	RoleDisturbance: "disturbance",
	RoleControl:     "control",
}

// String returns the lower-case role name.
func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}

	return fmt.Sprintf("Role(%d)", int(r))
}

// Random reports whether variables of this role are random.
func (r Role) Random() bool { return r == RoleState || r == RoleDisturbance }

// ParseRole maps "state", "disturbance" (alias "random") and "control"
// (alias "deterministic") to a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "state":
		return RoleState, nil
	case "disturbance", "random":
		return RoleDisturbance, nil
	case "control", "deterministic":
		return RoleControl, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Variable is an atomic symbol with a role. It is a comparable value and is
// used directly as a map key.
type Variable struct {
	name string
	role Role
}

// NewVariable validates name and returns the variable.
// Names must be non-empty and contain no whitespace or control characters.
func NewVariable(name string, role Role) (Variable, error) {
	if name == "" || strings.IndexFunc(name, badNameRune) >= 0 {
		return Variable{}, fmt.Errorf("%w: %q", ErrBadVariableName, name)
	}
	if _, ok := roleNames[role]; !ok {
		return Variable{}, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}

	return Variable{name: name, role: role}, nil
}

func badNameRune(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }

// MustVariable is NewVariable that panics on error. Intended for literals in
// tests and examples.
func MustVariable(name string, role Role) Variable {
	v, err := NewVariable(name, role)
	if err != nil {
		panic(err)
	}

	return v
}

// State, Disturbance and Control are MustVariable shorthands.
func State(name string) Variable       { return MustVariable(name, RoleState) }
func Disturbance(name string) Variable { return MustVariable(name, RoleDisturbance) }
func Control(name string) Variable     { return MustVariable(name, RoleControl) }

// Name returns the variable name.
func (v Variable) Name() string { return v.name }

// Role returns the variable role.
func (v Variable) Role() Role { return v.role }

// IsRandom reports whether v is a state or disturbance variable.
func (v Variable) IsRandom() bool { return v.role.Random() }

// Key implements poly.Symbol.
func (v Variable) Key() string { return "v:" + v.name }

// String implements poly.Symbol.
func (v Variable) String() string { return v.name }
