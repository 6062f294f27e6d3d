// Package report turns an optimal assignment into the packing result: the
// chosen box edge per crate dimension and the exact number of boxes packed
// (the product of the assigned counts, as a bignum.Nat).
//
// The text format is two lines:
//
//	Assignment 0 1
//	Boxes 6
//
// where the box count is rendered with bignum's canonical hexadecimal form.
// JSON, YAML and CBOR (Core Deterministic Encoding) carry the same fields.
package report
