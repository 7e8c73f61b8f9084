// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: Ring operations. Every method returns a fresh Poly; receivers and
//       arguments are never modified.

package poly

import (
	"fmt"
	"math/big"
)

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	out := p.clone(len(q.terms))
	for k, t := range q.terms {
		out.accumulate(k, t.Coeff, t.Factors)
	}

	return out
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Neg returns -p.
func (p Poly) Neg() Poly { return p.ScaleRat(big.NewRat(-1, 1)) }

// Scale returns c * p.
func (p Poly) Scale(c int64) Poly { return p.ScaleRat(new(big.Rat).SetInt64(c)) }

// ScaleRat returns r * p.
func (p Poly) ScaleRat(r *big.Rat) Poly {
	if r.Sign() == 0 || len(p.terms) == 0 {
		return Zero()
	}
	out := Poly{terms: make(map[string]Term, len(p.terms))}
	for k, t := range p.terms {
		out.terms[k] = Term{Coeff: new(big.Rat).Mul(t.Coeff, r), Factors: t.Factors}
	}

	return out
}

// Mul returns p * q by full term-by-term expansion.
//
// Complexity: O(|p|·|q|·d) where d is the number of distinct symbols per monomial.
func (p Poly) Mul(q Poly) Poly {
	out := Poly{terms: make(map[string]Term, len(p.terms)*len(q.terms))}
	for _, a := range p.terms {
		for _, b := range q.terms {
			factors := mergeFactors(a.Factors, b.Factors)
			out.accumulate(monoKey(factors), new(big.Rat).Mul(a.Coeff, b.Coeff), factors)
		}
	}

	return out
}

// Pow returns p**n for n >= 0 by repeated squaring. p**0 is 1, including for
// the zero polynomial.
func (p Poly) Pow(n int) (Poly, error) {
	if n < 0 {
		return Zero(), fmt.Errorf("%w: %d", ErrNegativeExponent, n)
	}
	result, base := One(), p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

// MustPow is Pow for exponents known to be non-negative; it panics otherwise.
func (p Poly) MustPow(n int) Poly {
	out, err := p.Pow(n)
	if err != nil {
		panic(err)
	}

	return out
}

// Sum returns the sum of ps (zero for no arguments).
func Sum(ps ...Poly) Poly {
	out := Zero()
	for _, p := range ps {
		out = out.Add(p)
	}

	return out
}

// Product returns the product of ps (one for no arguments).
func Product(ps ...Poly) Poly {
	out := One()
	for _, p := range ps {
		out = out.Mul(p)
	}

	return out
}

// clone copies p's term map, reserving room for extra more terms.
// Term values are shared; accumulate replaces rather than mutates them.
func (p Poly) clone(extra int) Poly {
	out := Poly{terms: make(map[string]Term, len(p.terms)+extra)}
	for k, t := range p.terms {
		out.terms[k] = t
	}

	return out
}

// accumulate adds coeff*factors into p in place. Only used on maps owned by
// the operation under construction.
func (p *Poly) accumulate(key string, coeff *big.Rat, factors []Factor) {
	if prev, ok := p.terms[key]; ok {
		sum := new(big.Rat).Add(prev.Coeff, coeff)
		if sum.Sign() == 0 {
			delete(p.terms, key)
			return
		}
		p.terms[key] = Term{Coeff: sum, Factors: prev.Factors}
		return
	}
	if coeff.Sign() == 0 {
		return
	}
	p.terms[key] = Term{Coeff: new(big.Rat).Set(coeff), Factors: factors}
}

// mergeFactors multiplies two sorted factor lists.
func mergeFactors(a, b []Factor) []Factor {
	out := make([]Factor, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ka, kb := a[i].Sym.Key(), b[j].Sym.Key()
		switch {
		case ka < kb:
			out = append(out, a[i])
			i++
		case kb < ka:
			out = append(out, b[j])
			j++
		default:
			out = append(out, Factor{Sym: a[i].Sym, Pow: a[i].Pow + b[j].Pow})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
