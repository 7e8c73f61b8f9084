// SPDX-License-Identifier: MIT
package render

import (
	"github.com/katalvlaran/algmoments/inequality"
)

// Variable names of the inequality epilogue.
const (
	varianceName  = "variance"
	boundName     = "probability_bound"
	conditionName = "necessary_condition"
)

// dialect spells the operators used by the inequality formulas.
type dialect struct {
	mul  string
	div  string
	pow2 func(string) string
	sqrt func(string) string
}

func (d dialect) variance() string {
	return inequality.SecondMoment + " - " + d.pow2(inequality.FirstMoment)
}

// bound returns the probability bound and necessary condition of k in
// terms of first_moment and variance.
func (d dialect) bound(k inequality.Kind) (bound, condition string) {
	m, v := inequality.FirstMoment, varianceName
	cantelli := v + d.div + "(" + v + " + " + d.pow2(m) + ")"
	switch k {
	case inequality.VysochanskijPetunin:
		return "(4.0/9.0)" + d.mul + cantelli,
			"-" + m + " + " + d.sqrt("5.0"+d.mul+v+d.div+"3.0")
	case inequality.Gauss:
		return "(2.0/9.0)" + d.mul + v + d.div + d.pow2(m),
			"-" + m + " + (2.0/3.0)" + d.mul + d.sqrt(v)
	default:
		return cantelli, "-" + m
	}
}
