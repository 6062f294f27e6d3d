// SPDX-License-Identifier: MIT

package costmatrix

import "errors"

var (
	// ErrEmpty is returned for a nil or zero-sized count table.
	ErrEmpty = errors.New("costmatrix: empty count table")

	// ErrNonSquare is returned when the count table is not n×n.
	ErrNonSquare = errors.New("costmatrix: count table is not square")

	// ErrIndistinguishable is returned when two different counts share the same
	// floating estimate, which no amount of doubling can separate.
	ErrIndistinguishable = errors.New("costmatrix: counts indistinguishable in float64")

	// ErrNotConverged is returned when separation or exactness needs more
	// doublings than allowed (or the estimates overflow).
	ErrNotConverged = errors.New("costmatrix: normalisation did not converge")
)

// DefaultMaxDoublings bounds the doubling loops. Any finite float64 becomes an
// integer after at most 1074 doublings, so the default never cuts off a
// convergent normalisation.
const DefaultMaxDoublings = 1100

const panicMaxDoublingsInvalid = "costmatrix: WithMaxDoublings: limit must be non-negative"

// Options configures Build.
type Options struct {
	maxDoublings int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{maxDoublings: DefaultMaxDoublings}
}

// WithMaxDoublings bounds the total number of estimate doublings.
// Panics on a negative limit (programmer error).
func WithMaxDoublings(limit int) Option {
	if limit < 0 {
		panic(panicMaxDoublingsInvalid)
	}

	return func(o *Options) { o.maxDoublings = limit }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
