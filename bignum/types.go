// SPDX-License-Identifier: MIT

package bignum

import (
	"errors"
	"math/bits"
)

// Word is a single digit of a Nat in base 2^W.
type Word = uint

const (
	// WordBits is the width W of a Word in bits.
	WordBits = bits.UintSize

	// hexDigits is the number of hexadecimal digits rendered for every
	// non-leading word.
	hexDigits = WordBits / 4

	// MaxWords bounds the length of any Nat. Growth past it is reported as
	// resource exhaustion (ErrCapacity) instead of allocating without limit.
	MaxWords = 1 << 22
)

// maxWords is the effective growth limit (tests lower it).
var maxWords = MaxWords

var (
	// ErrCapacity is returned when an operation would grow a Nat past MaxWords.
	ErrCapacity = errors.New("bignum: word capacity exhausted")

	// ErrUnderflow is returned by Sub when the subtrahend exceeds the receiver.
	ErrUnderflow = errors.New("bignum: subtraction underflow")

	// ErrNotFinite is returned by SetFloat for NaN, ±Inf or negative input.
	ErrNotFinite = errors.New("bignum: value is not a finite non-negative number")

	// ErrSyntax is returned by SetString for malformed hexadecimal text.
	ErrSyntax = errors.New("bignum: invalid hexadecimal text")
)

// Ordering is the result of comparing two Nats.
type Ordering int

const (
	// Less means a < b.
	Less Ordering = iota - 1
	// Equal means a == b.
	Equal
	// Greater means a > b.
	Greater
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}
