// SPDX-License-Identifier: MIT
//
// Command algmoments derives moment-propagation code for polynomial
// stochastic systems described in HCL model files.
//
//	algmoments closure model.hcl --syntax cpp --ctypes
//	algmoments expressions model.hcl --syntax octave
//	algmoments inequality model.hcl --kind vp
//	algmoments components model.hcl
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/algmoments/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "algmoments:", err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
