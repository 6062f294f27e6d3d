// Package packing reads crate-fitting problems and derives their count
// matrices.
//
// Input is a whitespace-separated stream of integers: the dimension count n,
// then n crate edges, then n box edges. Every value must be a positive
// integer that fits an int64.
//
// The count matrix has one row per crate dimension and one column per box
// edge: count[i][j] = crate[i] / box[j], the number of boxes that fit along
// dimension i when edge j is laid along it.
package packing
