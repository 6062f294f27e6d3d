// Package search enumerates box-to-crate orientations by backtracking and
// reports every strictly better packing it finds.
//
// Each crate dimension receives a distinct box edge; the packing holds
// ∏ crate[i]/box[π(i)] boxes and uses ∏ (crate[i] − crate[i] mod box[π(i)])
// of the crate's volume. The used volume is the box count times the box
// volume, so maximising one maximises the other.
//
// Search order:
//   - crate dimensions are visited in ascending edge order;
//   - per dimension, box edges are tried fitting-first, smaller remainder
//     first, then larger count first;
//   - equal box edges are tried once per dimension.
//
// Pruning: before descending, the used volume so far is multiplied by the
// best remaining used length of every unvisited dimension; a branch is cut
// when that bound cannot beat the best packing, or when some dimension has
// no fitting box edge left.
//
// Products are exact (bignum.Nat). Complexity is O(n!) in the worst case.
package search
