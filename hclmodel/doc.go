// SPDX-License-Identifier: MIT
//
// Package hclmodel loads moment problems from HCL files.
//
// A model file declares variables by role, their pairwise dependencies and
// any of three problems: a closure problem (state updates plus target
// moments), named moment expressions, and a concentration inequality.
//
//	mode = "reduced"
//
//	state "x" { update = x + u * w }
//	disturbance "w" {}
//	control "u" {}
//
//	dependence = [["x", "y"]]
//
//	moment { powers = { x = 2 } }
//
//	expression "g" { value = pow(x, 2) + 0.5 * u }
//	inequality {
//	  kind       = "cantelli"
//	  constraint = x - 1
//	}
//
// "random" and "deterministic" blocks are aliases of "disturbance" and
// "control". Expressions are native HCL arithmetic: + - * /, unary minus,
// parentheses, number literals and pow(e, n) with a non-negative integer n.
// Division is only allowed by a non-zero constant. Number literals are
// converted exactly, so 0.1 is the rational 1/10.
package hclmodel
