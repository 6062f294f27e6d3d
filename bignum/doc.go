// SPDX-License-Identifier: MIT

// Package bignum implements an arbitrary-precision non-negative integer
// (Nat) stored as a little-endian sequence of machine words.
//
// The base is B = 2^W where W = bits.UintSize. Every Nat keeps a canonical
// form: no redundant most-significant zero words, and zero is represented
// by a single zero word.
//
// Supported operations:
//
//   - New            — single-word value.
//   - Set / Clone    — deep copy, growing the destination when needed.
//   - Compare / Cmp  — length first, then most significant word downward.
//   - MulWord        — multiply by one machine word (widening word products).
//   - Add / Sub      — in place, carry/borrow propagated word by word.
//   - SetFloat       — seed from a float64 by repeated (x mod B, ⌊x/B⌋).
//   - String         — hexadecimal; most significant word unpadded, the rest
//     zero-padded to W/4 digits.
//
// All mutating operations are in place on the receiver. An operation that
// fails (ErrCapacity, ErrUnderflow, ErrNotFinite) leaves its receiver
// exactly as it was.
//
// A Nat is not safe for concurrent mutation.
package bignum
