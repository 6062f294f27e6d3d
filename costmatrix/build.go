// SPDX-License-Identifier: MIT

package costmatrix

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cratefit/bignum"
)

// Matrix is a normalised n×n cost table with its source counts.
// A Matrix is immutable after Build; accessors return copies.
type Matrix struct {
	n         int
	counts    [][]uint64
	estimates [][]float64
	costs     [][]*bignum.Nat
	zero      *bignum.Nat
	doublings int
}

// cellRef addresses one cell of the table.
type cellRef struct{ row, col int }

// Build converts counts into exact, order-isomorphic, zero-normalised costs.
//
// Errors: ErrEmpty, ErrNonSquare, ErrIndistinguishable, ErrNotConverged,
// bignum.ErrCapacity.
//
// Complexity: O(D·n²·L) where D is the number of doublings and L the word
// length of a cost, plus O(n² log n) for the count ordering.
func Build(counts [][]uint64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts)

	// Stage 1: shape.
	n, err := validateCounts(counts)
	if err != nil {
		return nil, err
	}

	// Stage 2: seed estimates and their first conversion.
	m := newMatrix(counts, n)
	if err = m.convert(); err != nil {
		return nil, err
	}
	order := m.countOrder()

	// Stage 3: separate distinct counts.
	var separated bool
	for {
		separated, err = m.separated(order)
		if err != nil {
			return nil, err
		}
		if separated {
			break
		}
		if err = m.double(o.maxDoublings); err != nil {
			return nil, err
		}
	}

	// Stage 4: make every estimate an exact integer.
	for !m.exact() {
		if err = m.double(o.maxDoublings); err != nil {
			return nil, err
		}
	}

	// Stage 5: shift so the minimum is zero.
	if err = m.normalize(); err != nil {
		return nil, err
	}

	return m, nil
}

// validateCounts checks for a non-empty square table and returns n.
func validateCounts(counts [][]uint64) (int, error) {
	var n int
	n = len(counts)
	if n == 0 {
		return 0, ErrEmpty
	}
	var i int
	for i = 0; i < n; i++ {
		if len(counts[i]) != n {
			return 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(counts[i]), n, ErrNonSquare)
		}
	}

	return n, nil
}

// newMatrix copies counts and seeds log(count)+1 estimates.
func newMatrix(counts [][]uint64, n int) *Matrix {
	m := &Matrix{
		n:         n,
		counts:    make([][]uint64, n),
		estimates: make([][]float64, n),
		costs:     make([][]*bignum.Nat, n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		m.counts[i] = append([]uint64(nil), counts[i]...)
		m.estimates[i] = make([]float64, n)
		m.costs[i] = make([]*bignum.Nat, n)
		for j = 0; j < n; j++ {
			if counts[i][j] > 0 {
				m.estimates[i][j] = math.Log(float64(counts[i][j])) + 1
			}
			m.costs[i][j] = new(bignum.Nat)
		}
	}

	return m
}

// convert refreshes every cost from its estimate.
func (m *Matrix) convert() error {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if err := m.costs[i][j].SetFloat(m.estimates[i][j]); err != nil {
				return fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}

// double scales every estimate by 2 and reconverts, honouring the limit.
func (m *Matrix) double(limit int) error {
	if m.doublings >= limit {
		return fmt.Errorf("after %d doublings: %w", m.doublings, ErrNotConverged)
	}
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			m.estimates[i][j] *= 2
			if math.IsInf(m.estimates[i][j], 0) {
				return fmt.Errorf("estimate overflow after %d doublings: %w", m.doublings+1, ErrNotConverged)
			}
		}
	}
	m.doublings++

	return m.convert()
}

// countOrder lists all cells by ascending count (row-major among equals).
func (m *Matrix) countOrder() []cellRef {
	order := make([]cellRef, 0, m.n*m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			order = append(order, cellRef{row: i, col: j})
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return m.counts[order[a].row][order[a].col] < m.counts[order[b].row][order[b].col]
	})

	return order
}

// separated reports whether every pair of cells with different counts has
// different costs. Checking neighbours in count order suffices because the
// conversion is monotone in the estimate.
//
// It fails with ErrIndistinguishable when a larger count does not carry a
// strictly larger estimate.
func (m *Matrix) separated(order []cellRef) (bool, error) {
	var (
		k    int
		p, q cellRef
	)
	for k = 1; k < len(order); k++ {
		p, q = order[k-1], order[k]
		if m.counts[p.row][p.col] == m.counts[q.row][q.col] {
			continue
		}
		if m.estimates[p.row][p.col] >= m.estimates[q.row][q.col] {
			return false, fmt.Errorf("counts %d and %d: %w",
				m.counts[p.row][p.col], m.counts[q.row][q.col], ErrIndistinguishable)
		}
		if bignum.Compare(m.costs[p.row][p.col], m.costs[q.row][q.col]) != bignum.Less {
			return false, nil
		}
	}

	return true, nil
}

// exact reports whether every estimate is an integer.
func (m *Matrix) exact() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if m.estimates[i][j] != math.Trunc(m.estimates[i][j]) {
				return false
			}
		}
	}

	return true
}

// normalize subtracts the minimum cost from every cell and records the zero
// sentinel.
func (m *Matrix) normalize() error {
	var (
		i, j   int
		lowest *bignum.Nat
		lowR   int
		lowC   int
		found  bool
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if !found || bignum.Compare(m.costs[i][j], lowest) == bignum.Less {
				lowest, lowR, lowC, found = m.costs[i][j], i, j, true
			}
		}
	}
	lowest = lowest.Clone()
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if err := m.costs[i][j].Sub(lowest); err != nil {
				return fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
		}
	}
	m.zero = m.costs[lowR][lowC].Clone()

	return nil
}

// N returns the matrix order.
func (m *Matrix) N() int { return m.n }

// Doublings returns how many times the estimates were doubled.
func (m *Matrix) Doublings() int { return m.doublings }

// Count returns the raw count at (i, j).
func (m *Matrix) Count(i, j int) uint64 { return m.counts[i][j] }

// Counts returns a copy of the raw counts.
func (m *Matrix) Counts() [][]uint64 {
	out := make([][]uint64, m.n)
	for i := range out {
		out[i] = append([]uint64(nil), m.counts[i]...)
	}

	return out
}

// Cost returns a copy of the cost at (i, j).
func (m *Matrix) Cost(i, j int) *bignum.Nat { return m.costs[i][j].Clone() }

// Costs returns a deep copy of the cost table, ready to hand to a solver.
func (m *Matrix) Costs() [][]*bignum.Nat {
	out := make([][]*bignum.Nat, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		out[i] = make([]*bignum.Nat, m.n)
		for j = 0; j < m.n; j++ {
			out[i][j] = m.costs[i][j].Clone()
		}
	}

	return out
}

// Zero returns a copy of the zero sentinel.
func (m *Matrix) Zero() *bignum.Nat { return m.zero.Clone() }
