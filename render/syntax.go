// SPDX-License-Identifier: MIT
package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedSyntax is returned for a syntax outside the closed set.
var ErrUnsupportedSyntax = errors.New("render: unsupported syntax")

// Syntax is a target language.
type Syntax int

const (
	Python Syntax = iota
	Octave
	Cpp
)

// String returns the canonical syntax name.
func (s Syntax) String() string {
	switch s {
	case Python:
		return "python"
	case Octave:
		return "octave"
	case Cpp:
		return "cpp"
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

// ParseSyntax maps a name to a Syntax. "matlab" is an alias of Octave,
// "py" of Python and "c++" of Cpp. Matching is case-insensitive.
func ParseSyntax(name string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "python", "py":
		return Python, nil
	case "octave", "matlab":
		return Octave, nil
	case "cpp", "c++":
		return Cpp, nil
	default:
		return Python, fmt.Errorf("%w: %q", ErrUnsupportedSyntax, name)
	}
}
