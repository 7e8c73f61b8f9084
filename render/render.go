// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/algmoments/dynsys"
	"github.com/katalvlaran/algmoments/inequality"
	"github.com/katalvlaran/algmoments/momentexpr"
	"github.com/katalvlaran/algmoments/poly"
)

// Renderer prints artifacts in one target syntax.
type Renderer interface {
	// Syntax returns the target syntax.
	Syntax() Syntax

	// Expr renders a single polynomial.
	Expr(p poly.Poly) string

	// MomentSystem prints code mapping the previous moment state,
	// disturbance moments and controls to the next moment state.
	MomentSystem(w io.Writer, s *dynsys.MomentStateDynamicalSystem) error

	// MomentExpressions prints code evaluating each named expression from
	// the required moments and deterministic inputs.
	MomentExpressions(w io.Writer, me *momentexpr.MomentExpressions) error

	// Inequality prints the moment expressions of E[g] and E[g²] followed
	// by the probability bound and its necessary condition.
	Inequality(w io.Writer, ci *inequality.Inequality) error
}

// Option configures New.
type Option func(*options)

type options struct {
	multiIdxKeys bool
}

// WithMultiIdxKeys makes Python moment-expression code read input moments
// by exponent tuple, e.g. input_moments[(1, 2)], instead of by name. Other
// syntaxes ignore it.
func WithMultiIdxKeys() Option {
	return func(o *options) { o.multiIdxKeys = true }
}

// New returns the Renderer for s.
func New(s Syntax, opts ...Option) (Renderer, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	switch s {
	case Python:
		return &pythonRenderer{opts: o}, nil
	case Octave:
		return &octaveRenderer{}, nil
	case Cpp:
		return &cppRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSyntax, s)
	}
}

// printer writes lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) blank() { p.line("") }
