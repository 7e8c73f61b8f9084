// SPDX-License-Identifier: MIT
package factor

import (
	"log/slog"

	"github.com/katalvlaran/algmoments/moment"
)

// Option configures MomentForm.
type Option func(*Options)

// Options holds the MomentForm configuration.
type Options struct {
	// PartialReduction, when non-nil, is the variable set whose components
	// factor individually; all other components of a term are lumped.
	// nil means maximal factorization.
	PartialReduction map[moment.Variable]struct{}

	// Logger receives debug records for newly created moments.
	Logger *slog.Logger
}

// DefaultOptions returns maximal factorization and a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// WithPartialReduction forces components inside vars to factor individually
// and lumps every other component of a term into one moment. Passing no
// variables still enables partial reduction, which then lumps every term
// into a single joint moment.
func WithPartialReduction(vars ...moment.Variable) Option {
	return func(o *Options) {
		o.PartialReduction = make(map[moment.Variable]struct{}, len(vars))
		for _, v := range vars {
			o.PartialReduction[v] = struct{}{}
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
