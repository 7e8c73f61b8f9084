// SPDX-License-Identifier: MIT
//
// Package factor turns a polynomial in correlated random variables into its
// moment form: a polynomial whose atoms are moments (and any non-random
// symbols the input carried), obtained by taking the expectation of every
// term and splitting each expectation along the dependence graph.
//
// For a term c·x^a·y^b·w^k with x–y dependent and w independent of both,
// the contribution is c·E[x^a·y^b]·E[w^k]. Each E[...] is resolved against a
// caller-owned moment.Pool so one variable-power combination maps to one
// *moment.Moment for the lifetime of the pool.
//
// Partial reduction (WithPartialReduction) coarsens the split: components
// lying entirely inside the given variable set stay individual factors,
// every other component of the term is lumped into a single joint moment.
package factor
