// SPDX-License-Identifier: MIT
package moment

import "fmt"

// Moment is the expected value of a monomial over jointly dependent random
// variables. It is immutable; its identity within a run is its VPM, and the
// Pool guarantees one *Moment per VPM.
type Moment struct {
	vpm  VPM
	name string
	key  string
}

// New validates vpm and returns a moment over it. The map is copied.
//
// Errors:
//   - ErrNegativePower for a negative exponent.
//   - ErrEmptyVPM when no exponent is positive.
//   - ErrNotRandom when a variable is a control input.
func New(vpm map[Variable]int) (*Moment, error) {
	clean, err := NewVPM(vpm)
	if err != nil {
		return nil, err
	}
	if len(clean) == 0 {
		return nil, ErrEmptyVPM
	}
	for v := range clean {
		if !v.IsRandom() {
			return nil, fmt.Errorf("%w: %s", ErrNotRandom, v.name)
		}
	}

	name := clean.Key()

	return &Moment{vpm: clean, name: name, key: "m:" + name + "\x00" + clean.identity()}, nil
}

// MustNew is New that panics on error. Intended for literals in tests and
// examples.
func MustNew(vpm map[Variable]int) *Moment {
	m, err := New(vpm)
	if err != nil {
		panic(err)
	}

	return m
}

// Name returns the canonical name, e.g. "xPow2".
func (m *Moment) Name() string { return m.name }

// Key implements poly.Symbol. It sorts like the canonical name but is
// derived from the VPM itself, so two moments share a key only when their
// VPMs are equal. Moment keys never collide with Variable keys.
func (m *Moment) Key() string { return m.key }

// String implements poly.Symbol.
func (m *Moment) String() string { return m.name }

// VPM returns a copy of the variable-power map.
func (m *Moment) VPM() VPM { return m.vpm.Clone() }

// SameVPM reports whether m is the moment of vpm.
func (m *Moment) SameVPM(vpm VPM) bool { return m.vpm.Equal(vpm) }

// SameAs reports whether m and o describe the same monomial. Two distinct
// *Moment values may be SameAs each other only outside of a Pool.
func (m *Moment) SameAs(o *Moment) bool { return o != nil && m.vpm.Equal(o.vpm) }

// Variables returns the moment's variables sorted by name.
func (m *Moment) Variables() []Variable { return m.vpm.Variables() }

// Power returns the exponent of v (0 when absent).
func (m *Moment) Power(v Variable) int { return m.vpm[v] }

// Degree returns the order of the moment.
func (m *Moment) Degree() int { return m.vpm.Degree() }

// MultiIdx returns the exponent tuple of m aligned to rv's variable order.
// Variables of m outside rv are reported with ErrUnknownVariable.
func (m *Moment) MultiIdx(rv *RandomVector) ([]int, error) {
	return rv.MultiIdx(m.vpm)
}
