// SPDX-License-Identifier: MIT

// Package munkres solves the n×n assignment problem over exact bignum costs
// with the Munkres (Hungarian) algorithm.
//
// The solver is an explicit state machine. Each Step is handled by a pure
// transition (state, context) → next state over a per-solve context that
// owns the working costs, the STAR/PRIME cell marks, the row/column cover
// vectors and the augmenting path:
//
//	StepReduce  (1) subtract each row minimum; star the first zero of every
//	                row whose column has no star yet (row-major scan).
//	StepCover   (2) cover starred columns; n covered ⇒ StepDone, else StepPrime.
//	StepPrime   (3) prime the first uncovered zero (row-major). If its row has
//	                a star: cover the row, uncover the star's column, rescan.
//	                No uncovered zero ⇒ StepAdjust; primed zero with no star in
//	                its row ⇒ StepAugment.
//	StepAugment (4) walk the STAR/PRIME alternating path from that prime,
//	                flip STAR→NONE and PRIME→STAR along it, erase all primes,
//	                clear both covers ⇒ StepCover.
//	StepAdjust  (5) add the smallest uncovered cost to every covered row,
//	                subtract it from every uncovered column ⇒ StepPrime.
//	StepDone    (6) the stars form a minimum-cost perfect assignment.
//
// Ties are broken by the row-major, left-to-right scan order of StepReduce
// and StepPrime, so identical input always yields the identical assignment.
//
// Maximisation is supported by WithObjective(Maximize): every cost c is
// replaced by max−c before StepReduce, which keeps all costs non-negative.
//
// Complexity: O(n⁴) cell visits in the worst case (O(n²) adjustments, each
// O(n²)), every visit O(L) for L-word costs. Memory: O(n²·L).
package munkres
