// SPDX-License-Identifier: MIT

// Package costmatrix turns an n×n table of raw packing counts into an n×n
// table of exact bignum costs suitable for the Munkres solver.
//
// The cost of a cell is order-isomorphic to its count:
//
//	count[a] < count[b]  ⇔  cost[a] < cost[b]
//
// and the matrix is normalised so the minimum-count cell(s) cost exactly 0.
//
// Algorithm:
//  1. Seed a float estimate per cell: log(count)+1, or 0 when count == 0.
//  2. Convert every estimate to a Nat. While two cells with different counts
//     compare equal, double every estimate and reconvert.
//  3. While any estimate has a fractional part, double again and reconvert,
//     so the Nat equals the estimate exactly.
//  4. Subtract the minimum cost from every cell; the minimum becomes the
//     zero sentinel.
//
// Doubling a float64 is exact, so each doubling strictly widens the gap
// between distinct estimates. The loop is bounded by WithMaxDoublings; in
// practice the estimates stay below ~45 and settle within ~60 doublings.
// Counts so close that float64 rounds their logarithms to the same value can
// never be separated; Build reports ErrIndistinguishable for them.
package costmatrix
