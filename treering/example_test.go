// SPDX-License-Identifier: MIT
package treering_test

import (
	"fmt"

	"github.com/katalvlaran/algmoments/dynsys"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
	"github.com/katalvlaran/algmoments/treering"
)

// ExampleRun closes the second moment of a random walk x⁺ = x + w driven by
// a control gain u. Asking for E[x²] pulls E[x] into the state.
func ExampleRun() {
	x, w, u := moment.State("x"), moment.Disturbance("w"), moment.Control("u")

	dist, _ := moment.NewRandomVector([]moment.Variable{w}, nil)
	sys, err := dynsys.NewPolyDynamicalSystem(
		[]dynsys.StateUpdate{{Var: x, Update: poly.Sym(x).Add(poly.Sym(u).Mul(poly.Sym(w)))}},
		[]moment.Variable{u}, dist, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ex2 := moment.MustNew(map[moment.Variable]int{x: 2})
	closed, err := treering.Run([]*moment.Moment{ex2}, sys)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range closed.Entries() {
		fmt.Printf("%s <- %s\n", e.Moment, e.Update)
	}
	fmt.Println(closed.DisturbanceMoments())
	// Output:
	// xPow2 <- 2*wPow1*xPow1*u + wPow2*u**2 + xPow2
	// xPow1 <- wPow1*u + xPow1
	// [wPow2 wPow1]
}
