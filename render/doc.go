// SPDX-License-Identifier: MIT
//
// Package render emits source code that evaluates the artifacts of this
// module in Python, Octave (MATLAB-compatible) or C++.
//
// A Renderer is obtained from New for one Syntax. It prints moment systems
// (the one-step propagation of a closed moment state), moment expressions
// and concentration inequalities. All output follows the insertion order of
// the artifact, so the same artifact always renders to the same text.
//
// CtypesStructs prints Python ctypes mirrors of the C++ input structures, so
// a shared library built from the C++ output can be driven from Python.
package render
