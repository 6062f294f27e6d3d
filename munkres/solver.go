// SPDX-License-Identifier: MIT

package munkres

import (
	"fmt"

	"github.com/katalvlaran/cratefit/bignum"
	"github.com/katalvlaran/cratefit/costmatrix"
)

// solver is the per-solve context. Nothing in it outlives the Solve call.
type solver struct {
	n          int
	cells      [][]Cell
	rowCovered []bool
	colCovered []bool
	path       []Location
	primed     Location    // prime that ends StepPrime with no star in its row
	zero       *bignum.Nat // reduced-cost baseline; never mutated
	counted    bool        // cells carry raw counts
}

// Solve returns the optimal assignment for costs. costs is not modified.
//
// Errors: ErrEmpty, ErrNonSquare, ErrNilCost, ErrInvariant (wrapping the
// arithmetic cause), bignum.ErrCapacity.
func Solve(costs [][]*bignum.Nat, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	s, err := newSolver(costs, nil, bignum.New(0), o.objective)
	if err != nil {
		return nil, err
	}

	return s.solve(costs, o)
}

// SolveMatrix solves a normalised cost matrix, recording the raw counts on
// the cells and using the matrix's zero sentinel as the reduced-cost baseline.
//
// Under Maximize a cell whose count is 0 is chosen only when every
// assignment contains such a cell: a zero factor empties the whole product
// however large the other costs are.
func SolveMatrix(m *costmatrix.Matrix, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrEmpty
	}
	o := gatherOptions(opts)
	costs := m.Costs()
	s, err := newSolver(costs, m.Counts(), m.Zero(), o.objective)
	if err != nil {
		return nil, err
	}

	return s.solve(costs, o)
}

// newSolver validates costs and builds the working context. counts may be nil.
func newSolver(costs [][]*bignum.Nat, counts [][]uint64, zero *bignum.Nat, obj Objective) (*solver, error) {
	var n int
	n = len(costs)
	if n == 0 {
		return nil, ErrEmpty
	}
	s := &solver{
		n:          n,
		cells:      make([][]Cell, n),
		rowCovered: make([]bool, n),
		colCovered: make([]bool, n),
		path:       make([]Location, 0, 2*n+1),
		zero:       zero,
		counted:    counts != nil,
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(costs[i]) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(costs[i]), n, ErrNonSquare)
		}
		s.cells[i] = make([]Cell, n)
		for j = 0; j < n; j++ {
			if costs[i][j] == nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNilCost)
			}
			s.cells[i][j] = Cell{Row: i, Col: j, Cost: costs[i][j].Clone()}
			if counts != nil {
				s.cells[i][j].Count = counts[i][j]
			}
		}
	}
	if obj == Maximize {
		if err := s.invert(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// invert replaces every cost c with max−c. With counts known, zero-count
// cells are then raised to n·max+1, above the total of any assignment that
// avoids them.
func (s *solver) invert() error {
	var (
		i, j    int
		highest *bignum.Nat
	)
	highest = s.cells[0][0].Cost
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if bignum.Compare(s.cells[i][j].Cost, highest) == bignum.Greater {
				highest = s.cells[i][j].Cost
			}
		}
	}
	highest = highest.Clone()
	var c *bignum.Nat
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			c = highest.Clone()
			if err := c.Sub(s.cells[i][j].Cost); err != nil {
				return invariantf("invert (%d,%d): %w", i, j, err)
			}
			s.cells[i][j].Cost = c
		}
	}
	if !s.counted {
		return nil
	}

	penalty := highest.Clone()
	if err := penalty.MulWord(bignum.Word(s.n)); err != nil {
		return err
	}
	if err := penalty.Add(bignum.New(1)); err != nil {
		return err
	}
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if s.cells[i][j].Count == 0 {
				s.cells[i][j].Cost = penalty.Clone()
			}
		}
	}

	return nil
}

// solve drives the state machine to StepDone and collects the result.
func (s *solver) solve(costs [][]*bignum.Nat, o Options) (*Result, error) {
	var (
		step, next  Step
		transitions int
		err         error
	)
	step = StepReduce
	for step != StepDone {
		next, err = s.transition(step)
		if err != nil {
			return nil, err
		}
		if o.trace != nil {
			o.trace(step, next)
		}
		step = next
		transitions++
	}

	assignment, err := s.assignment()
	if err != nil {
		return nil, err
	}
	total := bignum.New(0)
	for i, j := range assignment {
		if err = total.Add(costs[i][j]); err != nil {
			return nil, err
		}
	}

	return &Result{Assignment: assignment, Cost: total, Transitions: transitions}, nil
}

// transition performs one state and returns the next one.
func (s *solver) transition(step Step) (Step, error) {
	switch step {
	case StepReduce:
		return s.reduceRows()
	case StepCover:
		return s.coverStarredColumns(), nil
	case StepPrime:
		return s.primeUncoveredZero()
	case StepAugment:
		return s.augmentPath()
	case StepAdjust:
		return s.adjustUncoveredMin()
	case StepDone:
		return StepDone, nil
	default:
		return step, invariantf("unknown step %d", step)
	}
}

// reduceRows subtracts each row's minimum, then stars the first zero of each
// row whose column is still star-free.
func (s *solver) reduceRows() (Step, error) {
	var (
		i, j   int
		lowest *bignum.Nat
	)
	for i = 0; i < s.n; i++ {
		lowest = s.cells[i][0].Cost
		for j = 1; j < s.n; j++ {
			if bignum.Compare(s.cells[i][j].Cost, lowest) == bignum.Less {
				lowest = s.cells[i][j].Cost
			}
		}
		lowest = lowest.Clone()
		for j = 0; j < s.n; j++ {
			if err := s.cells[i][j].Cost.Sub(lowest); err != nil {
				return StepReduce, invariantf("reduce (%d,%d): %w", i, j, err)
			}
		}
	}

	starred := make([]bool, s.n)
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if !starred[j] && s.isZero(i, j) {
				s.cells[i][j].State = Star
				starred[j] = true
				break
			}
		}
	}

	return StepCover, nil
}

// coverStarredColumns covers every column holding a star.
func (s *solver) coverStarredColumns() Step {
	var i, j, covered int
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if s.cells[i][j].State == Star {
				s.colCovered[j] = true
			}
		}
	}
	for j = 0; j < s.n; j++ {
		if s.colCovered[j] {
			covered++
		}
	}
	if covered == s.n {
		return StepDone
	}

	return StepPrime
}

// primeUncoveredZero primes uncovered zeros until one has no star in its row.
func (s *solver) primeUncoveredZero() (Step, error) {
	var (
		loc     Location
		found   bool
		starCol int
	)
	for {
		loc, found = s.findUncoveredZero()
		if !found {
			return StepAdjust, nil
		}
		s.cells[loc.Row][loc.Col].State = Prime
		starCol = s.findInRow(loc.Row, Star)
		if starCol < 0 {
			s.primed = loc
			return StepAugment, nil
		}
		s.rowCovered[loc.Row] = true
		s.colCovered[starCol] = false
	}
}

// augmentPath flips the alternating STAR/PRIME path that starts at the last
// prime, then erases primes and covers.
func (s *solver) augmentPath() (Step, error) {
	var (
		last     Location
		row, col int
		k        int
	)
	s.path = append(s.path[:0], s.primed)
	for {
		last = s.path[len(s.path)-1]
		row = s.findInCol(last.Col, Star)
		if row < 0 {
			break
		}
		s.path = append(s.path, Location{Row: row, Col: last.Col})
		col = s.findInRow(row, Prime)
		if col < 0 {
			return StepAugment, invariantf("augment: star (%d,%d) has no prime in its row", row, last.Col)
		}
		s.path = append(s.path, Location{Row: row, Col: col})
	}

	for k = range s.path {
		cell := &s.cells[s.path[k].Row][s.path[k].Col]
		if cell.State == Star {
			cell.State = None
		} else {
			cell.State = Star
		}
	}
	s.erasePrimes()
	s.clearCovers()

	return StepCover, nil
}

// adjustUncoveredMin adds the smallest uncovered cost to covered rows and
// subtracts it from uncovered columns. Rows are raised before columns are
// lowered so a covered-row cell never dips below zero in between.
func (s *solver) adjustUncoveredMin() (Step, error) {
	var (
		i, j   int
		lowest *bignum.Nat
	)
	for i = 0; i < s.n; i++ {
		if s.rowCovered[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			if s.colCovered[j] {
				continue
			}
			if lowest == nil || bignum.Compare(s.cells[i][j].Cost, lowest) == bignum.Less {
				lowest = s.cells[i][j].Cost
			}
		}
	}
	if lowest == nil {
		return StepAdjust, invariantf("adjust: every cell is covered")
	}
	lowest = lowest.Clone()

	for i = 0; i < s.n; i++ {
		if !s.rowCovered[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			if err := s.cells[i][j].Cost.Add(lowest); err != nil {
				return StepAdjust, err
			}
		}
	}
	for j = 0; j < s.n; j++ {
		if s.colCovered[j] {
			continue
		}
		for i = 0; i < s.n; i++ {
			if err := s.cells[i][j].Cost.Sub(lowest); err != nil {
				return StepAdjust, invariantf("adjust (%d,%d): %w", i, j, err)
			}
		}
	}

	return StepPrime, nil
}

// findUncoveredZero scans row-major for the first zero with row and column
// uncovered.
func (s *solver) findUncoveredZero() (Location, bool) {
	var i, j int
	for i = 0; i < s.n; i++ {
		if s.rowCovered[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			if !s.colCovered[j] && s.isZero(i, j) {
				return Location{Row: i, Col: j}, true
			}
		}
	}

	return Location{}, false
}

// findInRow returns the column of the first cell in row with state st, or -1.
func (s *solver) findInRow(row int, st State) int {
	for j := 0; j < s.n; j++ {
		if s.cells[row][j].State == st {
			return j
		}
	}

	return -1
}

// findInCol returns the row of the first cell in col with state st, or -1.
func (s *solver) findInCol(col int, st State) int {
	for i := 0; i < s.n; i++ {
		if s.cells[i][col].State == st {
			return i
		}
	}

	return -1
}

func (s *solver) isZero(i, j int) bool {
	return bignum.Compare(s.cells[i][j].Cost, s.zero) == bignum.Equal
}

func (s *solver) erasePrimes() {
	var i, j int
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if s.cells[i][j].State == Prime {
				s.cells[i][j].State = None
			}
		}
	}
}

func (s *solver) clearCovers() {
	for i := 0; i < s.n; i++ {
		s.rowCovered[i] = false
		s.colCovered[i] = false
	}
}

// assignment reads the stars, checking one per row and one per column.
func (s *solver) assignment() ([]int, error) {
	out := make([]int, s.n)
	used := make([]bool, s.n)
	var i, j int
	for i = 0; i < s.n; i++ {
		out[i] = -1
		for j = 0; j < s.n; j++ {
			if s.cells[i][j].State != Star {
				continue
			}
			if out[i] >= 0 || used[j] {
				return nil, invariantf("assignment: duplicate star at (%d,%d)", i, j)
			}
			out[i] = j
			used[j] = true
		}
		if out[i] < 0 {
			return nil, invariantf("assignment: row %d has no star", i)
		}
	}

	return out, nil
}

// invariantf wraps ErrInvariant with context; %w verbs in format are kept.
func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
}
