// SPDX-License-Identifier: MIT
package momentexpr

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/katalvlaran/algmoments/factor"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
)

var (
	// ErrNilRandomVector is returned when no random vector is supplied.
	ErrNilRandomVector = errors.New("momentexpr: random vector is nil")

	// ErrBadName indicates an expression name that is not an identifier.
	ErrBadName = errors.New("momentexpr: expression name is not an identifier")

	// ErrDuplicateName indicates two expressions sharing a name.
	ErrDuplicateName = errors.New("momentexpr: duplicate expression name")

	// ErrNotDeterministic indicates a random variable listed as deterministic.
	ErrNotDeterministic = errors.New("momentexpr: deterministic variable is random")

	// ErrShadowedName indicates a deterministic variable named like a
	// variable of the random vector.
	ErrShadowedName = errors.New("momentexpr: deterministic variable shares a random variable's name")

	// ErrUnknownSymbol indicates an expression symbol that is neither in the
	// random vector nor among the deterministic variables.
	ErrUnknownSymbol = errors.New("momentexpr: expression references an undeclared symbol")
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Named is an expression with the identifier it is assigned to.
type Named struct {
	Name string
	Expr poly.Poly
}

// MomentExpressions is the moment form of a list of named expressions.
type MomentExpressions struct {
	names         []string
	exprs         map[string]poly.Poly
	moments       []*moment.Moment
	rv            *moment.RandomVector
	deterministic []moment.Variable
}

// Option configures Generate.
type Option func(*options)

type options struct {
	pool   *moment.Pool
	logger *slog.Logger
}

// WithPool resolves moments in p instead of a fresh pool.
func WithPool(p *moment.Pool) Option {
	return func(o *options) { o.pool = p }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Generate returns the moment form of every named expression over rv.
// Moments() lists the moments the expressions require, in creation order;
// with WithPool only moments created by this call are listed.
func Generate(named []Named, rv *moment.RandomVector, deterministic []moment.Variable, opts ...Option) (*MomentExpressions, error) {
	if rv == nil {
		return nil, ErrNilRandomVector
	}
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		fn(&o)
	}
	if o.pool == nil {
		o.pool = moment.NewPool()
	}

	det := make(map[moment.Variable]struct{}, len(deterministic))
	for _, v := range deterministic {
		if v.IsRandom() {
			return nil, fmt.Errorf("%w: %s", ErrNotDeterministic, v.Name())
		}
		if _, ok := rv.Lookup(v.Name()); ok {
			return nil, fmt.Errorf("%w: %s", ErrShadowedName, v.Name())
		}
		det[v] = struct{}{}
	}

	me := &MomentExpressions{
		exprs:         make(map[string]poly.Poly, len(named)),
		rv:            rv,
		deterministic: append([]moment.Variable(nil), deterministic...),
	}
	for _, n := range named {
		if !identifier.MatchString(n.Name) {
			return nil, fmt.Errorf("%w: %q", ErrBadName, n.Name)
		}
		if _, dup := me.exprs[n.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, n.Name)
		}
		if err := checkSymbols(n, rv, det); err != nil {
			return nil, err
		}

		form, created, err := factor.MomentForm(n.Expr, rv, o.pool, factor.WithLogger(o.logger))
		if err != nil {
			return nil, fmt.Errorf("momentexpr: %s: %w", n.Name, err)
		}
		me.names = append(me.names, n.Name)
		me.exprs[n.Name] = form
		me.moments = append(me.moments, created...)
		o.logger.Debug("moment expression", "name", n.Name, "terms", form.Len(), "created", len(created))
	}

	return me, nil
}

func checkSymbols(n Named, rv *moment.RandomVector, det map[moment.Variable]struct{}) error {
	for _, s := range n.Expr.Symbols() {
		v, ok := s.(moment.Variable)
		if !ok {
			return fmt.Errorf("%w: %s in %s", ErrUnknownSymbol, s, n.Name)
		}
		if _, isDet := det[v]; isDet || rv.Contains(v) {
			continue
		}

		return fmt.Errorf("%w: %s in %s", ErrUnknownSymbol, v.Name(), n.Name)
	}

	return nil
}

// Names returns the expression names in input order.
func (me *MomentExpressions) Names() []string { return append([]string(nil), me.names...) }

// Expression returns the moment form assigned to name.
func (me *MomentExpressions) Expression(name string) (poly.Poly, bool) {
	p, ok := me.exprs[name]

	return p, ok
}

// Moments returns the required moments in creation order.
func (me *MomentExpressions) Moments() []*moment.Moment {
	return append([]*moment.Moment(nil), me.moments...)
}

// Deterministic returns the deterministic variables in input order.
func (me *MomentExpressions) Deterministic() []moment.Variable {
	return append([]moment.Variable(nil), me.deterministic...)
}

// RandomVector returns the random vector the expressions were built over.
func (me *MomentExpressions) RandomVector() *moment.RandomVector { return me.rv }

// MultiIdx returns m's exponent tuple aligned to the random vector.
func (me *MomentExpressions) MultiIdx(m *moment.Moment) ([]int, error) { return m.MultiIdx(me.rv) }
