// SPDX-License-Identifier: MIT
package moment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// VPM is a variable-power map: variable → positive exponent. A VPM built by
// NewVPM never holds zero entries. Two VPMs describe the same monomial iff
// Equal reports true; key order is irrelevant.
type VPM map[Variable]int

// NewVPM copies m, dropping zero exponents. A negative exponent is rejected
// with ErrNegativePower.
func NewVPM(m map[Variable]int) (VPM, error) {
	out := make(VPM, len(m))
	for v, p := range m {
		switch {
		case p < 0:
			return nil, fmt.Errorf("%w: %s^%d", ErrNegativePower, v.name, p)
		case p > 0:
			out[v] = p
		}
	}

	return out, nil
}

// Clone returns an independent copy of v.
func (v VPM) Clone() VPM {
	out := make(VPM, len(v))
	for k, p := range v {
		out[k] = p
	}

	return out
}

// Equal reports map equality, ignoring zero entries on either side.
func (v VPM) Equal(o VPM) bool {
	n := 0
	for k, p := range v {
		if p == 0 {
			continue
		}
		if o[k] != p {
			return false
		}
		n++
	}
	m := 0
	for _, p := range o {
		if p != 0 {
			m++
		}
	}

	return n == m
}

// Variables returns the variables with a positive exponent, sorted by name.
func (v VPM) Variables() []Variable {
	out := make([]Variable, 0, len(v))
	for k, p := range v {
		if p > 0 {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// Degree returns the sum of exponents.
func (v VPM) Degree() int {
	d := 0
	for _, p := range v {
		d += p
	}

	return d
}

// Restrict returns the sub-map over vars. Variables absent from v are skipped.
func (v VPM) Restrict(vars []Variable) VPM {
	out := make(VPM, len(vars))
	for _, k := range vars {
		if p := v[k]; p > 0 {
			out[k] = p
		}
	}

	return out
}

// Key returns the canonical name of the monomial, e.g. "wPow1_xPow3".
func (v VPM) Key() string {
	vars := v.Variables()
	parts := make([]string, 0, len(vars))
	for _, k := range vars {
		parts = append(parts, k.name+"Pow"+strconv.Itoa(v[k]))
	}

	return strings.Join(parts, "_")
}

// identity is an unambiguous encoding of v: each variable as
// "len:name^pow", joined with ",", in name order.
func (v VPM) identity() string {
	vars := v.Variables()
	parts := make([]string, 0, len(vars))
	for _, k := range vars {
		parts = append(parts, strconv.Itoa(len(k.name))+":"+k.name+"^"+strconv.Itoa(v[k]))
	}

	return strings.Join(parts, ",")
}

// String renders v as "{w:1 x:3}".
func (v VPM) String() string {
	vars := v.Variables()
	parts := make([]string, 0, len(vars))
	for _, k := range vars {
		parts = append(parts, k.name+":"+strconv.Itoa(v[k]))
	}

	return "{" + strings.Join(parts, " ") + "}"
}
