// SPDX-License-Identifier: MIT
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/algmoments/dynsys"
)

// CtypesStructs prints ctypes.Structure classes mirroring the input
// structures of the C++ PropagateMoments function for s. Every field is a
// c_double, in the same order as the C++ declaration.
func CtypesStructs(w io.Writer, s *dynsys.MomentStateDynamicalSystem) error {
	p := &printer{w: w}
	p.line("import ctypes")
	p.line("from ctypes import c_double")
	for _, st := range momentSystemStructs(s) {
		fields := make([]string, len(st.fields))
		for i, f := range st.fields {
			fields[i] = "(" + strconv.Quote(f) + ", c_double)"
		}
		p.blank()
		p.blank()
		p.line("class %s(ctypes.Structure):", st.typ)
		p.line("    _fields_ = [%s]", strings.Join(fields, ", "))
	}

	return p.err
}
