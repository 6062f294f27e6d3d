package search

import (
	"errors"

	"github.com/katalvlaran/cratefit/bignum"
)

// MinDimensions is the smallest problem the crate-search command accepts.
const MinDimensions = 2

var (
	// ErrDimensions reports empty or mismatched edge lists, or a zero edge.
	ErrDimensions = errors.New("search: invalid dimensions")

	// ErrNoFit reports that no orientation fits a box in every dimension.
	ErrNoFit = errors.New("search: box does not fit the crate")
)

// Packing is one complete orientation.
type Packing struct {
	// Assignment[i] is the box edge index laid along crate dimension i
	// (input order).
	Assignment []int

	// Boxes is the number of boxes packed.
	Boxes *bignum.Nat

	// Volume is the crate volume occupied by those boxes.
	Volume *bignum.Nat
}

// VisitFunc receives every strictly improving packing in discovery order.
// Returning a non-nil error stops the search with that error.
type VisitFunc func(p Packing) error
