// SPDX-License-Identifier: MIT
//
// Package momentexpr expresses named polynomials of a random vector in terms
// of its moments.
//
// Given g(x, w) with x deterministic and w random, Generate returns E[g] as
// a polynomial in x and in moments of w. Several expressions generated
// together share one moment pool, so a moment needed by two of them is
// listed (and later supplied) once.
package momentexpr
