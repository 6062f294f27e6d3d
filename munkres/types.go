// SPDX-License-Identifier: MIT

package munkres

import (
	"errors"

	"github.com/katalvlaran/cratefit/bignum"
)

var (
	// ErrEmpty is returned for a nil or zero-sized cost table.
	ErrEmpty = errors.New("munkres: empty cost table")

	// ErrNonSquare is returned when the cost table is not n×n.
	ErrNonSquare = errors.New("munkres: cost table is not square")

	// ErrNilCost is returned when a cost cell is nil.
	ErrNilCost = errors.New("munkres: nil cost")

	// ErrInvariant reports a broken internal invariant (for instance an
	// underflowing reduction). It never follows from valid input.
	ErrInvariant = errors.New("munkres: internal invariant violated")
)

// State marks a cell during the solve.
type State uint8

const (
	// None is an unmarked cell.
	None State = iota
	// Star is a cell in the current tentative assignment.
	Star
	// Prime is a candidate zero under consideration.
	Prime
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case None:
		return "none"
	case Star:
		return "star"
	case Prime:
		return "prime"
	default:
		return "invalid"
	}
}

// Step enumerates the solver states.
type Step uint8

const (
	// StepReduce row-reduces and seeds stars.
	StepReduce Step = iota + 1
	// StepCover covers starred columns and tests for completion.
	StepCover
	// StepPrime primes uncovered zeros.
	StepPrime
	// StepAugment flips the augmenting path.
	StepAugment
	// StepAdjust shifts costs by the smallest uncovered value.
	StepAdjust
	// StepDone is terminal.
	StepDone
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepReduce:
		return "reduce"
	case StepCover:
		return "cover"
	case StepPrime:
		return "prime"
	case StepAugment:
		return "augment"
	case StepAdjust:
		return "adjust"
	case StepDone:
		return "done"
	default:
		return "invalid"
	}
}

// Objective selects minimisation or maximisation of the total cost.
type Objective uint8

const (
	// Minimize finds the assignment with the smallest total cost.
	Minimize Objective = iota
	// Maximize finds the assignment with the largest total cost.
	Maximize
)

// Location is a (row, column) pair on the augmenting path.
type Location struct {
	Row int
	Col int
}

// Cell is one entry of the working matrix.
type Cell struct {
	Row   int
	Col   int
	Count uint64 // raw count, when solving a costmatrix.Matrix
	State State
	Cost  *bignum.Nat
}

// Result is the outcome of a solve.
type Result struct {
	// Assignment[i] is the column starred in row i.
	Assignment []int

	// Cost is the total of the input costs over the assignment.
	Cost *bignum.Nat

	// Transitions counts state-machine transitions until StepDone.
	Transitions int
}

// Options configures Solve.
type Options struct {
	objective Objective
	trace     func(from, to Step)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Minimize without tracing.
func DefaultOptions() Options {
	return Options{objective: Minimize}
}

// WithObjective selects Minimize or Maximize. Panics on an unknown value.
func WithObjective(obj Objective) Option {
	if obj != Minimize && obj != Maximize {
		panic("munkres: WithObjective: unknown objective")
	}

	return func(o *Options) { o.objective = obj }
}

// WithTrace installs a hook called after every transition.
func WithTrace(fn func(from, to Step)) Option {
	return func(o *Options) { o.trace = fn }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
