// SPDX-License-Identifier: MIT

package bignum

import "math/big"

// zeroWords is the read-only view of a zero-value Nat.
var zeroWords = []Word{0}

// Nat is an arbitrary-precision non-negative integer.
//
// The zero value is ready to use and represents 0.
//
// Invariant (after every exported operation):
//   - len(words) ≥ 1 once the Nat has been written to;
//   - words[len(words)-1] != 0 unless len(words) == 1 (canonical zero).
type Nat struct {
	words []Word // little-endian digits, least significant first
}

// New returns a single-word Nat holding v.
//
// Complexity: O(1).
func New(v Word) *Nat {
	var z Nat
	z.words = make([]Word, 1, 2)
	z.words[0] = v

	return &z
}

// view returns the digits of x, mapping the zero value onto canonical zero.
// The returned slice must not be written through when it is zeroWords.
func (x *Nat) view() []Word {
	if len(x.words) == 0 {
		return zeroWords
	}

	return x.words
}

// norm trims redundant most-significant zero words, keeping one word for 0.
func (z *Nat) norm() {
	var n int
	n = len(z.words)
	for n > 1 && z.words[n-1] == 0 {
		n--
	}
	z.words = z.words[:n]
}

// reserve guarantees cap(z.words) ≥ n without changing the value of z.
// It fails with ErrCapacity (and leaves z untouched) when n > maxWords.
//
// Complexity: O(len(z)) when a reallocation happens, O(1) otherwise.
func (z *Nat) reserve(n int) error {
	if n > maxWords {
		return ErrCapacity
	}
	if cap(z.words) >= n {
		return nil
	}
	// Grow geometrically, bounded by the limit.
	var size int
	size = 2 * cap(z.words)
	if size < n {
		size = n
	}
	if size > maxWords {
		size = maxWords
	}
	grown := make([]Word, len(z.words), size)
	copy(grown, z.words)
	z.words = grown

	return nil
}

// setZero resets z to canonical zero, reusing its storage.
func (z *Nat) setZero() {
	if cap(z.words) == 0 {
		z.words = make([]Word, 1, 2)
	}
	z.words = z.words[:1]
	z.words[0] = 0
}

// Set deep-copies src into z, growing z's storage when its capacity is
// insufficient, and returns z.
//
// Complexity: O(len(src)).
func (z *Nat) Set(src *Nat) (*Nat, error) {
	if z == src {
		return z, nil
	}
	s := src.view()
	if err := z.reserve(len(s)); err != nil {
		return z, err
	}
	z.words = z.words[:len(s)]
	copy(z.words, s)

	return z, nil
}

// Clone returns a deep copy of x.
func (x *Nat) Clone() *Nat {
	s := x.view()
	c := &Nat{words: make([]Word, len(s), len(s)+1)}
	copy(c.words, s)

	return c
}

// Compare orders a against b: by significant word count first, then from
// the most significant word downward.
//
// Complexity: O(len(a)) worst case.
func Compare(a, b *Nat) Ordering {
	x, y := a.view(), b.view()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return Less
		}

		return Greater
	}
	var i int
	for i = len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return Less
			}

			return Greater
		}
	}

	return Equal
}

// Cmp is Compare(x, y) as an integer: -1, 0 or +1.
func (x *Nat) Cmp(y *Nat) int {
	return int(Compare(x, y))
}

// Len reports the number of significant words (1 for zero).
func (x *Nat) Len() int { return len(x.view()) }

// Cap reports the allocated word capacity.
func (x *Nat) Cap() int { return cap(x.words) }

// IsZero reports whether x == 0.
func (x *Nat) IsZero() bool {
	w := x.view()

	return len(w) == 1 && w[0] == 0
}

// Words returns a copy of the little-endian digits of x.
func (x *Nat) Words() []Word {
	w := x.view()
	out := make([]Word, len(w))
	copy(out, w)

	return out
}

// BigInt returns x as a newly allocated *big.Int.
func (x *Nat) BigInt() *big.Int {
	w := x.view()
	digits := make([]big.Word, len(w))
	var i int
	for i = range w {
		digits[i] = big.Word(w[i])
	}

	return new(big.Int).SetBits(digits)
}
