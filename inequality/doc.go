// SPDX-License-Identifier: MIT
//
// Package inequality bounds Prob(g(x, w) <= 0) for a polynomial g of
// deterministic x and random w from the first two moments of g.
//
// The mean m = E[g] and second moment E[g²] are generated in moment form
// (see momentexpr); the variance is v = E[g²] - m². Three classical bounds
// are supported, each valid only under a necessary condition c(m, v) <= 0:
//
//	Cantelli               v/(v + m²)          c = -m
//	Vysochanskij-Petunin   (4/9)·v/(v + m²)    c = -m + sqrt(5v/3)
//	Gauss                  (2/9)·v/m²          c = -m + (2/3)·sqrt(v)
//
// The latter two assume a unimodal distribution of g.
package inequality
