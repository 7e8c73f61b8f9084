// SPDX-License-Identifier: MIT
package dynsys

import (
	"fmt"

	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
)

// Entry pairs a state moment with its one-step update.
type Entry struct {
	Moment *moment.Moment
	Update poly.Poly
}

// MomentStateDynamicalSystem is a closed system of state moments.
type MomentStateDynamicalSystem struct {
	entries      []Entry
	byMoment     map[*moment.Moment]int
	disturbances []*moment.Moment
	controls     []moment.Variable
}

// NewMomentStateDynamicalSystem assembles the artifact and checks closure:
// every moment referenced by an update must be one of the state moments or
// one of the disturbance moments, and every variable referenced must be a
// control. Moments are matched by identity.
//
// Errors: ErrDuplicateMoment, ErrNotClosed.
func NewMomentStateDynamicalSystem(
	entries []Entry,
	disturbances []*moment.Moment,
	controls []moment.Variable,
) (*MomentStateDynamicalSystem, error) {
	s := &MomentStateDynamicalSystem{
		entries:      append([]Entry(nil), entries...),
		byMoment:     make(map[*moment.Moment]int, len(entries)),
		disturbances: append([]*moment.Moment(nil), disturbances...),
		controls:     append([]moment.Variable(nil), controls...),
	}

	known := make(map[*moment.Moment]struct{}, len(entries)+len(disturbances))
	for i, e := range s.entries {
		if e.Moment == nil {
			return nil, fmt.Errorf("%w: nil state moment at %d", ErrNotClosed, i)
		}
		if _, dup := s.byMoment[e.Moment]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMoment, e.Moment)
		}
		s.byMoment[e.Moment] = i
		known[e.Moment] = struct{}{}
	}
	for _, m := range s.disturbances {
		if _, dup := known[m]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMoment, m)
		}
		known[m] = struct{}{}
	}
	ctl := make(map[moment.Variable]struct{}, len(controls))
	for _, v := range controls {
		ctl[v] = struct{}{}
	}

	for _, e := range s.entries {
		for _, sym := range e.Update.Symbols() {
			switch t := sym.(type) {
			case *moment.Moment:
				if _, ok := known[t]; !ok {
					return nil, fmt.Errorf("%w: %s references %s", ErrNotClosed, e.Moment, t)
				}
			case moment.Variable:
				if _, ok := ctl[t]; !ok {
					return nil, fmt.Errorf("%w: %s references variable %s", ErrNotClosed, e.Moment, t)
				}
			default:
				return nil, fmt.Errorf("%w: %s references %s", ErrNotClosed, e.Moment, sym)
			}
		}
	}

	return s, nil
}

// Len returns the number of state moments.
func (s *MomentStateDynamicalSystem) Len() int { return len(s.entries) }

// StateMoments returns the state moments in insertion order.
func (s *MomentStateDynamicalSystem) StateMoments() []*moment.Moment {
	out := make([]*moment.Moment, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Moment
	}

	return out
}

// Dynamics returns the update of state moment m.
func (s *MomentStateDynamicalSystem) Dynamics(m *moment.Moment) (poly.Poly, bool) {
	i, ok := s.byMoment[m]
	if !ok {
		return poly.Poly{}, false
	}

	return s.entries[i].Update, true
}

// Entries returns (moment, update) pairs in insertion order.
func (s *MomentStateDynamicalSystem) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// DisturbanceMoments returns the disturbance moments in discovery order.
func (s *MomentStateDynamicalSystem) DisturbanceMoments() []*moment.Moment {
	return append([]*moment.Moment(nil), s.disturbances...)
}

// ControlVariables returns the control variables.
func (s *MomentStateDynamicalSystem) ControlVariables() []moment.Variable {
	return append([]moment.Variable(nil), s.controls...)
}
