// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Symbol, Factor, Term and Poly types; sentinel errors; constructors.

package poly

import (
	"errors"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNegativeExponent is returned by Pow for a negative exponent.
	ErrNegativeExponent = errors.New("poly: negative exponent")

	// ErrUnboundSymbol is returned by Eval when a symbol has no value.
	ErrUnboundSymbol = errors.New("poly: unbound symbol")
)

// Symbol is an atom of a polynomial.
//
// Key must be unique per distinct atom and stable for its lifetime; two
// symbols with equal keys are the same atom. String is the display name.
type Symbol interface {
	Key() string
	String() string
}

// Factor is one symbol raised to a positive power.
type Factor struct {
	Sym Symbol
	Pow int
}

// Term is a coefficient times a monomial. Factors are sorted by Sym.Key().
type Term struct {
	Coeff   *big.Rat
	Factors []Factor
}

// Degree returns the total degree of the monomial.
func (t Term) Degree() int {
	d := 0
	for _, f := range t.Factors {
		d += f.Pow
	}

	return d
}

// Poly is an immutable polynomial. The zero value is the zero polynomial.
type Poly struct {
	// terms maps a monomial key to its term; coefficients are never zero.
	terms map[string]Term
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func One() Poly { return Const(1) }

// Const returns the constant polynomial c.
func Const(c int64) Poly { return ConstRat(new(big.Rat).SetInt64(c)) }

// ConstRat returns the constant polynomial r. r is copied.
func ConstRat(r *big.Rat) Poly { return Monomial(r) }

// Sym returns the polynomial consisting of the single symbol s.
func Sym(s Symbol) Poly { return Monomial(big.NewRat(1, 1), Factor{Sym: s, Pow: 1}) }

// Monomial returns coeff times the product of factors. Factors with a
// non-positive power are dropped and repeated symbols are merged. coeff is
// copied; a nil coeff is treated as 1.
func Monomial(coeff *big.Rat, factors ...Factor) Poly {
	c := big.NewRat(1, 1)
	if coeff != nil {
		c.Set(coeff)
	}
	if c.Sign() == 0 {
		return Zero()
	}
	t := Term{Coeff: c, Factors: normalize(factors)}

	return Poly{terms: map[string]Term{monoKey(t.Factors): t}}
}

// normalize merges repeated symbols, drops non-positive powers and sorts by key.
func normalize(factors []Factor) []Factor {
	if len(factors) == 0 {
		return nil
	}
	byKey := make(map[string]Factor, len(factors))
	for _, f := range factors {
		if f.Pow <= 0 || f.Sym == nil {
			continue
		}
		k := f.Sym.Key()
		if prev, ok := byKey[k]; ok {
			prev.Pow += f.Pow
			byKey[k] = prev
			continue
		}
		byKey[k] = f
	}
	out := make([]Factor, 0, len(byKey))
	for _, f := range byKey {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sym.Key() < out[j].Sym.Key() })

	return out
}

// monoKey is the canonical identity of a sorted factor list. Symbol keys
// are length-prefixed, so keys containing '*' or '^' stay unambiguous.
func monoKey(factors []Factor) string {
	var b strings.Builder
	for _, f := range factors {
		k := f.Sym.Key()
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(f.Pow))
		b.WriteByte(';')
	}

	return b.String()
}

// orderKey is the display sort key of a sorted factor list: "k1^p1*k2^p2".
func orderKey(factors []Factor) string {
	var b strings.Builder
	for i, f := range factors {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(f.Sym.Key())
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(f.Pow))
	}

	return b.String()
}
