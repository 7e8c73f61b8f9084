// SPDX-License-Identifier: MIT
//
// Package algmoments derives exact moment-propagation code for polynomial
// stochastic systems.
//
// What is algmoments?
//
//	Given polynomial dynamics x⁺ = f(x, w, u) with random state x, random
//	disturbances w and deterministic controls u, and a set of target moments
//	E[x^α], algmoments finds a finite set of state moments that is closed
//	under the dynamics and writes the update of each one as a polynomial in
//	previous moments, disturbance moments and controls.
//
// Packages:
//
//	depgraph/        undirected dependence graphs and their components
//	poly/            exact sparse polynomials over rational coefficients
//	moment/          variables, random vectors, moments and the moment pool
//	factor/          moment form of a polynomial under pairwise independence
//	dynsys/          polynomial and moment-state dynamical systems
//	treering/        closure search from target moments
//	momentexpr/      moment form of named expressions over a random vector
//	inequality/      Cantelli, Vysochanskij–Petunin and Gauss bounds
//	render/          Python, Octave and C++ code emission
//	hclmodel/        HCL model files
//	config/          ALGMOMENTS_* environment settings
//	cmd/algmoments/  command-line front end
//
// Quick example (the scalar random walk x⁺ = x + u·w):
//
//	target   E[x²]
//	closure  E[x²], E[x]
//	update   xPow2 <- 2*wPow1*xPow1*u + wPow2*u**2 + xPow2
//	         xPow1 <- wPow1*u + xPow1
//
//	go install github.com/katalvlaran/algmoments/cmd/algmoments@latest
package algmoments
