// SPDX-License-Identifier: MIT
package dynsys

import "errors"

// Sentinel errors for the dynsys package.
var (
	// ErrRoleMismatch indicates a variable declared in a slot of another role.
	ErrRoleMismatch = errors.New("dynsys: variable has the wrong role")

	// ErrDuplicateVariable indicates two declarations sharing a name.
	ErrDuplicateVariable = errors.New("dynsys: duplicate variable")

	// ErrUnknownSymbol indicates an update referencing an undeclared symbol.
	ErrUnknownSymbol = errors.New("dynsys: update references an undeclared symbol")

	// ErrNoStates indicates a system without state variables.
	ErrNoStates = errors.New("dynsys: no state variables")

	// ErrNotClosed indicates an update referencing a moment that is neither
	// a state moment nor a declared disturbance moment.
	ErrNotClosed = errors.New("dynsys: moment system is not closed")

	// ErrDuplicateMoment indicates a moment listed twice in a moment system.
	ErrDuplicateMoment = errors.New("dynsys: duplicate moment")
)
