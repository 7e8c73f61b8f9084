// SPDX-License-Identifier: MIT
//
// Package treering computes a closed moment system for a polynomial
// stochastic system.
//
// Starting from a list of target state moments, Run expands each moment
// through one step of the dynamics, factors the result into moments of the
// previous step and recurses on every state moment it has not seen yet. The
// search stops when every moment on a right-hand side is either a state
// moment with its own update or a disturbance moment. Moments that recur in
// several branches (the rings of the tree) are expanded once.
//
// Key features:
//   - Explicit worklist: depth-first, processing order equals the initial
//     list order, then discovery order. No recursion.
//   - One moment pool per run holding state and disturbance moments, so a
//     variable-power combination maps to a single *moment.Moment.
//   - Modes: ModeReduced factors maximally; ModeUnreduced keeps disturbance
//     components individual and lumps the state components of each term.
//   - Limits: WithMaxMoments bounds the number of state moments.
//   - Cancellation via context.Context (WithContext).
//
// Complexity:
//
//   - Time:   O(S · T) polynomial operations, where S is the closed state
//     size and T the number of terms in an expanded update.
//   - Memory: O(S + D) moments plus the recorded updates.
//
// Errors:
//
//   - ErrNilSystem, ErrNilMoment for missing inputs.
//   - ErrNotStateMoment if an initial moment involves a non-state variable.
//   - ErrDuplicateMoment if two initial moments share a variable-power map.
//   - ErrMomentLimit once the state exceeds WithMaxMoments.
//   - moment.ErrPoolInconsistent, propagated from factoring.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
//
// No partial artifact is returned on error.
package treering
