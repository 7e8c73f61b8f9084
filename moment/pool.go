// SPDX-License-Identifier: MIT
package moment

import "fmt"

// Pool is the run-scoped registry of moments. It preserves insertion order,
// which downstream consumers rely on for reproducible output.
//
// A Pool is not safe for concurrent mutation; one closure run owns one pool.
type Pool struct {
	moments []*Moment
	// index groups moments by canonical name. Distinct VPMs may in principle
	// render to the same name, so buckets are always re-checked with SameVPM.
	index map[string][]*Moment
}

// NewPool returns a pool seeded with the given moments, verbatim and in
// order. Seeds are not deduplicated: a caller that seeds two moments with
// an equal VPM gets ErrPoolInconsistent from the first Resolve that hits it.
func NewPool(seed ...*Moment) *Pool {
	p := &Pool{index: make(map[string][]*Moment, len(seed))}
	for _, m := range seed {
		if m != nil {
			p.add(m)
		}
	}

	return p
}

// Len returns the number of pooled moments.
func (p *Pool) Len() int { return len(p.moments) }

// Moments returns the pooled moments in insertion order.
func (p *Pool) Moments() []*Moment { return append([]*Moment(nil), p.moments...) }

// Find returns the unique pooled moment whose VPM equals vpm, or nil.
// More than one match yields ErrPoolInconsistent.
func (p *Pool) Find(vpm VPM) (*Moment, error) {
	var found *Moment
	for _, m := range p.index[vpm.Key()] {
		if !m.SameVPM(vpm) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %s", ErrPoolInconsistent, vpm)
		}
		found = m
	}

	return found, nil
}

// Resolve returns the pooled moment for vpm, creating and recording it when
// none exists. created reports whether a new moment was made.
//
// Errors:
//   - ErrPoolInconsistent when more than one pooled moment matches.
//   - ErrNameCollision when the new moment's name belongs to another VPM.
//   - New's validation errors for an invalid vpm.
func (p *Pool) Resolve(vpm VPM) (m *Moment, created bool, err error) {
	m, err = p.Find(vpm)
	if err != nil || m != nil {
		return m, false, err
	}
	m, err = New(vpm)
	if err != nil {
		return nil, false, err
	}
	if taken := p.index[m.name]; len(taken) > 0 {
		return nil, false, fmt.Errorf("%w: %s is %s and %s", ErrNameCollision, m.name, taken[0].vpm, vpm)
	}
	p.add(m)

	return m, true, nil
}

func (p *Pool) add(m *Moment) {
	p.moments = append(p.moments, m)
	p.index[m.name] = append(p.index[m.name], m)
}
