// SPDX-License-Identifier: MIT
package dynsys

import (
	"fmt"

	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
)

// StateUpdate is the one-step update rule of one state variable.
type StateUpdate struct {
	Var    moment.Variable
	Update poly.Poly
}

// PolyDynamicalSystem is a discrete-time polynomial stochastic system.
type PolyDynamicalSystem struct {
	states   []moment.Variable
	updates  map[moment.Variable]poly.Poly
	controls []moment.Variable

	disturbance *moment.RandomVector
	stateRV     *moment.RandomVector
	systemRV    *moment.RandomVector
}

// NewPolyDynamicalSystem validates and assembles a system.
//
// Implementation:
//   - Stage 1: Check roles: updates carry state variables, controls carry
//     control variables, the disturbance vector holds disturbances only.
//   - Stage 2: Check names are unique across all three roles.
//   - Stage 3: Check every update references declared variables only.
//   - Stage 4: Build the state random vector from stateDeps and the system
//     random vector over state ∪ disturbance with state-internal and
//     disturbance-internal edges only.
//
// A nil disturbances vector means no disturbances. No partial system is
// returned on error.
func NewPolyDynamicalSystem(
	updates []StateUpdate,
	controls []moment.Variable,
	disturbances *moment.RandomVector,
	stateDeps []moment.Dependence,
) (*PolyDynamicalSystem, error) {
	if len(updates) == 0 {
		return nil, ErrNoStates
	}
	if disturbances == nil {
		empty, err := moment.NewRandomVector(nil, nil)
		if err != nil {
			return nil, err
		}
		disturbances = empty
	}

	s := &PolyDynamicalSystem{
		updates:     make(map[moment.Variable]poly.Poly, len(updates)),
		controls:    append([]moment.Variable(nil), controls...),
		disturbance: disturbances,
	}

	declared := make(map[string]moment.Variable)
	declare := func(v moment.Variable, want moment.Role) error {
		if v.Role() != want {
			return fmt.Errorf("%w: %s is %s, want %s", ErrRoleMismatch, v.Name(), v.Role(), want)
		}
		if _, dup := declared[v.Name()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Name())
		}
		declared[v.Name()] = v
		return nil
	}

	for _, su := range updates {
		if err := declare(su.Var, moment.RoleState); err != nil {
			return nil, err
		}
		s.states = append(s.states, su.Var)
		s.updates[su.Var] = su.Update
	}
	for _, v := range disturbances.Variables() {
		if err := declare(v, moment.RoleDisturbance); err != nil {
			return nil, err
		}
	}
	for _, v := range controls {
		if err := declare(v, moment.RoleControl); err != nil {
			return nil, err
		}
	}

	for _, su := range updates {
		for _, sym := range su.Update.Symbols() {
			v, ok := sym.(moment.Variable)
			if !ok || declared[v.Name()] != v {
				return nil, fmt.Errorf("%w: %s in update of %s", ErrUnknownSymbol, sym, su.Var.Name())
			}
		}
	}

	stateRV, err := moment.NewRandomVector(s.states, stateDeps)
	if err != nil {
		return nil, fmt.Errorf("dynsys: state vector: %w", err)
	}
	s.stateRV = stateRV

	systemRV, err := stateRV.Join(disturbances)
	if err != nil {
		return nil, fmt.Errorf("dynsys: system vector: %w", err)
	}
	s.systemRV = systemRV

	return s, nil
}

// StateVariables returns the state variables in declaration order.
func (s *PolyDynamicalSystem) StateVariables() []moment.Variable {
	return append([]moment.Variable(nil), s.states...)
}

// DisturbanceVariables returns the disturbance variables sorted by name.
func (s *PolyDynamicalSystem) DisturbanceVariables() []moment.Variable {
	return s.disturbance.Variables()
}

// ControlVariables returns the control variables in declaration order.
func (s *PolyDynamicalSystem) ControlVariables() []moment.Variable {
	return append([]moment.Variable(nil), s.controls...)
}

// Update returns the update polynomial of state variable v.
func (s *PolyDynamicalSystem) Update(v moment.Variable) (poly.Poly, bool) {
	p, ok := s.updates[v]

	return p, ok
}

// IsState reports whether v is one of the system's state variables.
func (s *PolyDynamicalSystem) IsState(v moment.Variable) bool {
	_, ok := s.updates[v]

	return ok
}

// DisturbanceRandomVector returns the disturbance random vector.
func (s *PolyDynamicalSystem) DisturbanceRandomVector() *moment.RandomVector { return s.disturbance }

// StateRandomVector returns the random vector of the state variables.
func (s *PolyDynamicalSystem) StateRandomVector() *moment.RandomVector { return s.stateRV }

// SystemRandomVector returns the random vector over state ∪ disturbance.
// No edge ever joins a state variable to a disturbance variable.
func (s *PolyDynamicalSystem) SystemRandomVector() *moment.RandomVector { return s.systemRV }
