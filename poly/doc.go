// SPDX-License-Identifier: MIT
//
// Package poly is a small exact polynomial algebra over opaque symbols.
//
// A Poly is an immutable sum of terms; each term is an exact rational
// coefficient (math/big.Rat) times a monomial, i.e. a product of symbols
// raised to positive integer powers. Symbols are anything implementing
// Symbol: random variables, control inputs and moments all live side by side
// in the same expression.
//
// Every operation returns a new Poly and never mutates its operands, so a
// Poly can be shared freely once built. Terms() and String() are
// deterministic: terms are ordered by total degree (descending) and then by
// their symbol keys, with an injective monomial key breaking ties.
//
//	x := poly.Sym(sym("x"))
//	w := poly.Sym(sym("w"))
//	p := x.Add(w).Pow(2) // x**2 + 2*w*x + w**2
package poly
