// SPDX-License-Identifier: MIT
package treering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/algmoments/moment"
)

var (
	// ErrNilSystem is returned when Run receives a nil system.
	ErrNilSystem = errors.New("treering: system is nil")

	// ErrNilMoment is returned for a nil entry in the initial list.
	ErrNilMoment = errors.New("treering: initial moment is nil")

	// ErrNotStateMoment indicates an initial moment over non-state variables.
	ErrNotStateMoment = errors.New("treering: initial moment is not a state moment")

	// ErrDuplicateMoment indicates two initial moments with equal
	// variable-power maps.
	ErrDuplicateMoment = errors.New("treering: duplicate initial moment")

	// ErrMomentLimit is returned once the number of state moments exceeds
	// the configured maximum.
	ErrMomentLimit = errors.New("treering: state moment limit exceeded")

	// ErrMixedMoment signals a factored moment spanning state and
	// disturbance variables. It indicates a defect, not bad input.
	ErrMixedMoment = errors.New("treering: moment mixes state and disturbance variables")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("treering: unknown mode")
)

// Mode selects how expanded updates are factored.
type Mode int

const (
	// ModeReduced factors every term maximally along the dependence graph.
	ModeReduced Mode = iota
	// ModeUnreduced keeps disturbance components individual and lumps the
	// rest of each term into one joint moment.
	ModeUnreduced
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModeReduced:
		return "reduced"
	case ModeUnreduced:
		return "unreduced"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "reduced" / "unreduced" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reduced", "":
		return ModeReduced, nil
	case "unreduced":
		return ModeUnreduced, nil
	default:
		return ModeReduced, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option configures Run.
type Option func(*Options)

// Options holds the Run configuration.
type Options struct {
	// Ctx allows cancellation; checked once per expanded moment.
	Ctx context.Context

	// Mode selects the factoring mode. Default ModeReduced.
	Mode Mode

	// MaxMoments, if positive, bounds the number of state moments.
	// Default 0 (unbounded).
	MaxMoments int

	// Seed lists extra moments admitted verbatim to the run's pool, so the
	// artifact reuses their identities.
	Seed []*moment.Moment

	// Logger receives per-expansion debug records and a summary.
	Logger *slog.Logger
}

// DefaultOptions returns a background context, reduced mode, no limit and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Mode:   ModeReduced,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode sets the factoring mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithMaxMoments bounds the number of state moments; n <= 0 means unbounded.
func WithMaxMoments(n int) Option {
	return func(o *Options) { o.MaxMoments = n }
}

// WithSeed admits moments to the run's pool alongside the initial list.
func WithSeed(ms ...*moment.Moment) Option {
	return func(o *Options) { o.Seed = append(o.Seed, ms...) }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
