// SPDX-License-Identifier: MIT
package moment

import "errors"

// Sentinel errors for the moment package.
var (
	// ErrBadVariableName indicates an empty name or one containing whitespace
	// or control characters.
	ErrBadVariableName = errors.New("moment: variable name is empty or contains whitespace or control characters")

	// ErrUnknownRole indicates a role string that names no Role.
	ErrUnknownRole = errors.New("moment: unknown variable role")

	// ErrNegativePower indicates a negative exponent in a variable-power map.
	ErrNegativePower = errors.New("moment: negative power in variable-power map")

	// ErrEmptyVPM indicates a moment over no variables.
	ErrEmptyVPM = errors.New("moment: empty variable-power map")

	// ErrNotRandom indicates a control variable where a random one is required.
	ErrNotRandom = errors.New("moment: variable is not random")

	// ErrDuplicateVariable indicates two variables sharing a name.
	ErrDuplicateVariable = errors.New("moment: duplicate variable name")

	// ErrUnknownVariable indicates a variable outside the random vector.
	ErrUnknownVariable = errors.New("moment: variable not in random vector")

	// ErrDimensionMismatch indicates a multi-index of the wrong length.
	ErrDimensionMismatch = errors.New("moment: multi-index length does not match random vector")

	// ErrPoolInconsistent indicates more than one pooled moment matches a
	// VPM. It signals a broken uniqueness invariant and is never repaired.
	ErrPoolInconsistent = errors.New("moment: pool holds more than one moment for a variable-power map")

	// ErrNameCollision indicates a new moment whose canonical name is already
	// taken by a pooled moment over a different VPM, e.g. a variable named
	// "aPow1_b" next to variables "a" and "b".
	ErrNameCollision = errors.New("moment: canonical name already used by another moment")
)
