// SPDX-License-Identifier: MIT
//
// Package moment defines the value types the closure machinery works with:
// role-tagged variables, variable-power maps, moments, random vectors and
// the run-scoped moment pool.
//
// Identity rules
//
//   - A Variable is identified by its name; names never contain whitespace.
//   - A VPM (variable-power map) keeps positive exponents only, so two maps
//     that differ only by zero entries are the same monomial.
//   - A Moment is identified by its VPM. Inside one Pool no two distinct
//     *Moment values share an equal VPM; Pool.Resolve enforces this and
//     reports ErrPoolInconsistent the moment the invariant is seen broken.
//
// Canonical naming
//
//	The name of E[w·x³] is "wPow1_xPow3": variables sorted by name, each
//	rendered name+"Pow"+exponent, joined by "_". The name depends only on the
//	VPM, never on insertion order.
//
// Both Variable and *Moment implement poly.Symbol, so a factored expression
// is an ordinary poly.Poly whose atoms are moments and control variables.
package moment
