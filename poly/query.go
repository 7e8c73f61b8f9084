// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Read-only inspection: term iteration, symbols, equality, evaluation
//       and the canonical plain-text rendering.

package poly

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Len returns the number of non-zero terms.
func (p Poly) Len() int { return len(p.terms) }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Terms returns p's terms ordered by total degree descending, then by
// symbol-key order ascending. Coefficients and factor slices are copies.
func (p Poly) Terms() []Term {
	keys := p.sortedKeys()
	out := make([]Term, 0, len(keys))
	for _, k := range keys {
		t := p.terms[k]
		out = append(out, Term{
			Coeff:   new(big.Rat).Set(t.Coeff),
			Factors: append([]Factor(nil), t.Factors...),
		})
	}

	return out
}

func (p Poly) sortedKeys() []string {
	keys := make([]string, 0, len(p.terms))
	order := make(map[string]string, len(p.terms))
	for k, t := range p.terms {
		keys = append(keys, k)
		order[k] = orderKey(t.Factors)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := p.terms[keys[i]].Degree(), p.terms[keys[j]].Degree()
		if di != dj {
			return di > dj
		}
		if order[keys[i]] != order[keys[j]] {
			return order[keys[i]] < order[keys[j]]
		}
		return keys[i] < keys[j]
	})

	return keys
}

// Coefficient returns the coefficient of the monomial described by factors,
// or zero when p has no such term.
func (p Poly) Coefficient(factors ...Factor) *big.Rat {
	t, ok := p.terms[monoKey(normalize(factors))]
	if !ok {
		return new(big.Rat)
	}

	return new(big.Rat).Set(t.Coeff)
}

// Symbols returns every symbol occurring in p, sorted by key.
func (p Poly) Symbols() []Symbol {
	seen := make(map[string]Symbol)
	for _, t := range p.terms {
		for _, f := range t.Factors {
			seen[f.Sym.Key()] = f.Sym
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Symbol, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}

	return out
}

// Degree returns the maximal total degree of p's terms (0 for constants and
// for the zero polynomial).
func (p Poly) Degree() int {
	d := 0
	for _, t := range p.terms {
		d = max(d, t.Degree())
	}

	return d
}

// Equal reports whether p and q have identical terms.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		o, ok := q.terms[k]
		if !ok || t.Coeff.Cmp(o.Coeff) != 0 {
			return false
		}
	}

	return true
}

// Eval evaluates p exactly. env maps a symbol's String() to its value.
// Returns ErrUnboundSymbol (wrapped with the name) for a missing value.
func (p Poly) Eval(env map[string]*big.Rat) (*big.Rat, error) {
	total := new(big.Rat)
	for _, k := range p.sortedKeys() {
		t := p.terms[k]
		v := new(big.Rat).Set(t.Coeff)
		for _, f := range t.Factors {
			x, ok := env[f.Sym.String()]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnboundSymbol, f.Sym.String())
			}
			for i := 0; i < f.Pow; i++ {
				v.Mul(v, x)
			}
		}
		total.Add(total, v)
	}

	return total, nil
}

// EvalFloat is Eval over float64 values.
func (p Poly) EvalFloat(env map[string]float64) (float64, error) {
	exact := make(map[string]*big.Rat, len(env))
	for name, v := range env {
		r := new(big.Rat)
		if r.SetFloat64(v) == nil {
			return 0, fmt.Errorf("poly: value of %s is not finite", name)
		}
		exact[name] = r
	}
	r, err := p.Eval(exact)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()

	return f, nil
}

// String renders p as "c*a*b**2 + ..." with the terms in Terms() order.
// The zero polynomial renders as "0".
func (p Poly) String() string {
	return p.Format(PlainStyle)
}

// Style controls how Format renders numbers, products and powers.
type Style struct {
	// Mul joins factors, e.g. "*" or ".*".
	Mul string
	// Pow renders base raised to n (n >= 2).
	Pow func(base string, n int) string
	// Rat renders a positive non-integer coefficient.
	Rat func(r *big.Rat) string
}

// PlainStyle is the canonical rendering used by String.
var PlainStyle = Style{
	Mul: "*",
	Pow: func(base string, n int) string { return base + "**" + strconv.Itoa(n) },
	Rat: func(r *big.Rat) string { return r.RatString() },
}

// Format renders p in the given style.
func (p Poly) Format(s Style) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, k := range p.sortedKeys() {
		t := p.terms[k]
		abs := new(big.Rat).Abs(t.Coeff)
		neg := t.Coeff.Sign() < 0
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}

		parts := make([]string, 0, len(t.Factors)+1)
		isOne := abs.Cmp(big.NewRat(1, 1)) == 0
		if !isOne || len(t.Factors) == 0 {
			if abs.IsInt() {
				parts = append(parts, abs.Num().String())
			} else {
				parts = append(parts, s.Rat(abs))
			}
		}
		for _, f := range t.Factors {
			if f.Pow == 1 {
				parts = append(parts, f.Sym.String())
				continue
			}
			parts = append(parts, s.Pow(f.Sym.String(), f.Pow))
		}
		b.WriteString(strings.Join(parts, s.Mul))
	}

	return b.String()
}
