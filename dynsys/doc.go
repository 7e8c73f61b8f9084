// SPDX-License-Identifier: MIT
//
// Package dynsys holds the two ends of a closure computation.
//
// PolyDynamicalSystem is the input: a discrete-time polynomial stochastic
// system x⁺ = f(x, w, u) with one update polynomial per state variable, a
// disturbance random vector w and deterministic controls u. Its system
// random vector joins state and disturbance variables without linking them:
// at every step the state is assumed independent of that step's
// disturbances.
//
// MomentStateDynamicalSystem is the output: an ordered, closed set of state
// moments, each with an update written only in previous-step state moments,
// disturbance moments and controls. It is built once and is read-only;
// every accessor returns a copy, in insertion order.
package dynsys
