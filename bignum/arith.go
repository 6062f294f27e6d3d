// SPDX-License-Identifier: MIT

package bignum

import (
	"math"
	"math/bits"
)

// mulAddWWW returns the double-width value x*y + c as (hi, lo).
// bits.Mul is the native widening multiply; the add of c reports its own
// carry into hi, which cannot overflow since x*y + c < 2^(2W).
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	var cc Word
	hi, lo = bits.Mul(x, y)
	lo, cc = bits.Add(lo, c, 0)
	hi += cc

	return hi, lo
}

// MulWord multiplies z by the single word v in place.
//
// The product needs at most one extra word; capacity for it is reserved
// before z is touched so a failure leaves z unchanged.
//
// Complexity: O(len(z)).
func (z *Nat) MulWord(v Word) error {
	if v == 0 || z.IsZero() {
		z.setZero()
		return nil
	}
	var n int
	n = len(z.words)
	if err := z.reserve(n + 1); err != nil {
		return err
	}

	var (
		i     int
		carry Word
	)
	for i = 0; i < n; i++ {
		carry, z.words[i] = mulAddWWW(z.words[i], v, carry)
	}
	if carry != 0 {
		z.words = append(z.words, carry)
	}
	z.norm()

	return nil
}

// Add sets z = z + x.
//
// Complexity: O(max(len(z), len(x))).
func (z *Nat) Add(x *Nat) error {
	a, b := z.view(), x.view()
	var need int
	need = len(a)
	if len(b) > need {
		need = len(b)
	}
	if err := z.reserve(need + 1); err != nil {
		return err
	}
	// b may alias z.words; it is only read at index i before z.words[i] is
	// written, so in-place accumulation is safe.
	var old int
	old = len(z.words)
	z.words = z.words[:need]
	for i := old; i < need; i++ {
		z.words[i] = 0
	}

	var (
		i     int
		carry Word
		bi    Word
	)
	for i = 0; i < need; i++ {
		bi = 0
		if i < len(b) {
			bi = b[i]
		}
		z.words[i], carry = bits.Add(z.words[i], bi, carry)
	}
	if carry != 0 {
		z.words = append(z.words, carry)
	}
	z.norm()

	return nil
}

// Sub sets z = z - x. It returns ErrUnderflow, leaving z unchanged, when
// z < x.
//
// Complexity: O(len(z)).
func (z *Nat) Sub(x *Nat) error {
	if Compare(z, x) == Less {
		return ErrUnderflow
	}
	if z == x {
		z.setZero()
		return nil
	}
	b := x.view()
	if len(z.words) == 0 {
		// z is the zero value and x == 0.
		return nil
	}

	var (
		i      int
		borrow Word
		bi     Word
	)
	for i = 0; i < len(z.words); i++ {
		bi = 0
		if i < len(b) {
			bi = b[i]
		}
		if bi == 0 && borrow == 0 && i >= len(b) {
			break
		}
		z.words[i], borrow = bits.Sub(z.words[i], bi, borrow)
	}
	z.norm()

	return nil
}

// SetFloat sets z to the integer part of x by repeatedly extracting
// x mod B as the next word and replacing x with ⌊x/B⌋ while x stays positive.
//
// Errors: ErrNotFinite for NaN, ±Inf or x < 0; ErrCapacity when the result
// would not fit in MaxWords.
//
// Complexity: O(log_B x).
func (z *Nat) SetFloat(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return ErrNotFinite
	}
	const base = float64(1 << WordBits)

	// Collect into scratch first; z is only written after success.
	var (
		digits [1024/WordBits + 2]Word // enough for any finite float64
		n      int
	)
	for {
		digits[n] = Word(math.Mod(x, base))
		n++
		x = math.Floor(x / base)
		if x <= 0 {
			break
		}
	}
	if err := z.reserve(n); err != nil {
		return err
	}
	z.words = z.words[:n]
	copy(z.words, digits[:n])
	z.norm()

	return nil
}

// MulUint64 multiplies z by v. When v does not fit a Word (32-bit
// platforms) the product is assembled from two MulWord passes; z is only
// replaced once both succeed.
func (z *Nat) MulUint64(v uint64) error {
	if v <= uint64(^Word(0)) {
		return z.MulWord(Word(v))
	}
	hi := z.Clone()
	if err := hi.MulWord(Word(v >> 32)); err != nil {
		return err
	}
	// Shift hi by 32 bits as two 16-bit steps so the factor fits any Word.
	if err := hi.MulWord(1 << 16); err != nil {
		return err
	}
	if err := hi.MulWord(1 << 16); err != nil {
		return err
	}
	lo := z.Clone()
	if err := lo.MulWord(Word(v & 0xffffffff)); err != nil {
		return err
	}
	if err := lo.Add(hi); err != nil {
		return err
	}
	_, err := z.Set(lo)

	return err
}
