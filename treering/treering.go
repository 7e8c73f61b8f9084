// SPDX-License-Identifier: MIT
package treering

import (
	"fmt"

	"github.com/katalvlaran/algmoments/dynsys"
	"github.com/katalvlaran/algmoments/factor"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/poly"
)

// walker carries the state of one closure run.
type walker struct {
	sys  *dynsys.PolyDynamicalSystem
	opts Options
	pool *moment.Pool

	factorOpts []factor.Option

	stack   []*moment.Moment
	seen    map[*moment.Moment]struct{} // queued or expanded state moments
	entries []dynsys.Entry

	disturbances []*moment.Moment
	distSeen     map[*moment.Moment]struct{}
}

// Run computes the closed moment system of sys reachable from initial.
//
// Implementation:
//   - Stage 1: Validate the initial list and seed the run's pool with it
//     (plus any WithSeed moments).
//   - Stage 2: Push the initial moments so they pop in list order.
//   - Stage 3: Pop a moment, build its raw one-step dynamics
//     Π update(v)^p over its variable-power map and factor it against the
//     system random vector with the run's pool.
//   - Stage 4: Record the update; unseen state moments it references are
//     pushed in reverse discovery order, disturbance moments accumulate.
//   - Stage 5: Assemble the artifact, which re-checks closure.
//
// Returns nil and an error on any failure.
func Run(initial []*moment.Moment, sys *dynsys.PolyDynamicalSystem, opts ...Option) (*dynsys.MomentStateDynamicalSystem, error) {
	// 1. Validate inputs
	if sys == nil {
		return nil, ErrNilSystem
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateInitial(initial, sys); err != nil {
		return nil, err
	}

	// 2. Prepare walker
	w := &walker{
		sys:      sys,
		opts:     o,
		pool:     moment.NewPool(append(append([]*moment.Moment(nil), initial...), o.Seed...)...),
		seen:     make(map[*moment.Moment]struct{}, len(initial)),
		distSeen: make(map[*moment.Moment]struct{}),
	}
	w.factorOpts = []factor.Option{factor.WithLogger(o.Logger)}
	if o.Mode == ModeUnreduced {
		w.factorOpts = append(w.factorOpts, factor.WithPartialReduction(sys.DisturbanceVariables()...))
	}
	for i := len(initial) - 1; i >= 0; i-- {
		w.stack = append(w.stack, initial[i])
		w.seen[initial[i]] = struct{}{}
	}
	if err := w.checkLimit(); err != nil {
		return nil, err
	}

	// 3. Drain the worklist
	for len(w.stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		m := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if err := w.expand(m); err != nil {
			return nil, err
		}
	}

	// 4. Assemble artifact
	out, err := dynsys.NewMomentStateDynamicalSystem(w.entries, w.disturbances, sys.ControlVariables())
	if err != nil {
		return nil, fmt.Errorf("treering: %w", err)
	}
	o.Logger.Info("closure complete",
		"mode", o.Mode.String(),
		"state_moments", out.Len(),
		"disturbance_moments", len(w.disturbances),
		"pool", w.pool.Len())

	return out, nil
}

// validateInitial checks that every initial moment is a non-nil state
// moment of sys and that no two share a variable-power map.
func validateInitial(initial []*moment.Moment, sys *dynsys.PolyDynamicalSystem) error {
	for i, m := range initial {
		if m == nil {
			return fmt.Errorf("%w: index %d", ErrNilMoment, i)
		}
		for _, v := range m.Variables() {
			if !sys.IsState(v) {
				return fmt.Errorf("%w: %s involves %s", ErrNotStateMoment, m, v.Name())
			}
		}
		for _, prev := range initial[:i] {
			if prev.SameAs(m) {
				return fmt.Errorf("%w: %s", ErrDuplicateMoment, m)
			}
		}
	}

	return nil
}

// expand records the one-step update of m and queues what it discovers.
func (w *walker) expand(m *moment.Moment) error {
	// 1. Raw dynamics: substitute updates into the moment's monomial
	raw := poly.One()
	for _, v := range m.Variables() {
		upd, _ := w.sys.Update(v)
		p, err := upd.Pow(m.Power(v))
		if err != nil {
			return fmt.Errorf("treering: expanding %s: %w", m, err)
		}
		raw = raw.Mul(p)
	}

	// 2. Factor against the system random vector
	form, created, err := factor.MomentForm(raw, w.sys.SystemRandomVector(), w.pool, w.factorOpts...)
	if err != nil {
		return fmt.Errorf("treering: factoring %s: %w", m, err)
	}
	w.entries = append(w.entries, dynsys.Entry{Moment: m, Update: form})

	// 3. Classify moments: created first, then pre-existing references
	var fresh []*moment.Moment
	for _, d := range discovered(form, created) {
		isState, err := w.classify(d)
		if err != nil {
			return err
		}
		if isState {
			if _, ok := w.seen[d]; !ok {
				w.seen[d] = struct{}{}
				fresh = append(fresh, d)
			}
			continue
		}
		if _, ok := w.distSeen[d]; !ok {
			w.distSeen[d] = struct{}{}
			w.disturbances = append(w.disturbances, d)
		}
	}
	w.opts.Logger.Debug("moment expanded",
		"moment", m.Name(),
		"terms", form.Len(),
		"created", len(created),
		"new_states", len(fresh))

	// 4. Queue new state moments so the first discovered pops first
	for i := len(fresh) - 1; i >= 0; i-- {
		w.stack = append(w.stack, fresh[i])
	}

	return w.checkLimit()
}

// classify reports whether d is a state moment (true) or a disturbance
// moment (false).
func (w *walker) classify(d *moment.Moment) (bool, error) {
	states, others := 0, 0
	for _, v := range d.Variables() {
		if w.sys.IsState(v) {
			states++
		} else {
			others++
		}
	}
	if states > 0 && others > 0 {
		return false, fmt.Errorf("%w: %s", ErrMixedMoment, d)
	}

	return states > 0, nil
}

func (w *walker) checkLimit() error {
	if w.opts.MaxMoments > 0 && len(w.seen) > w.opts.MaxMoments {
		return fmt.Errorf("%w: %d > %d", ErrMomentLimit, len(w.seen), w.opts.MaxMoments)
	}

	return nil
}

// discovered lists the moments referenced by form: those created by the
// factoring call in creation order, then any other referenced moment in
// symbol order.
func discovered(form poly.Poly, created []*moment.Moment) []*moment.Moment {
	out := append([]*moment.Moment(nil), created...)
	had := make(map[*moment.Moment]struct{}, len(created))
	for _, m := range created {
		had[m] = struct{}{}
	}
	for _, s := range form.Symbols() {
		m, ok := s.(*moment.Moment)
		if !ok {
			continue
		}
		if _, dup := had[m]; !dup {
			had[m] = struct{}{}
			out = append(out, m)
		}
	}

	return out
}
