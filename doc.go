// Package cratefit finds the orientation of a rectangular box that packs the
// most copies into an n-dimensional crate, with every copy in the same
// orientation.
//
// Laying box edge j along crate dimension i packs crate[i]/box[j] boxes in
// that dimension, so each orientation is a permutation and its total is the
// product of the chosen counts. Maximising that product is an assignment
// problem over exact logarithm-like costs.
//
// What lives where:
//
//	bignum/      — arbitrary-precision unsigned integers (hex text, native widening multiply)
//	costmatrix/  — counts → order-preserving exact integer costs
//	munkres/     — Hungarian algorithm as an explicit six-step state machine
//	report/      — assignment + box count in text, JSON, YAML or CBOR
//	packing/     — stdin parsing and the count table
//	search/      — branch-and-bound search over all orientations
//	cmd/         — crate-assign and crate-search
//
// Quick example (crate 5×7, box 7×5):
//
//	counts = {{0, 1},
//	          {1, 1}}
//
// The identity packs 0·1 = 0 boxes; rotating the box packs 1·1 = 1:
//
//	$ echo "2  5 7  7 5" | crate-assign
//	Assignment 1 0
//	Boxes 1
//
//	go install github.com/katalvlaran/cratefit/cmd/...
package cratefit
