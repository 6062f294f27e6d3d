package munkres

import "github.com/katalvlaran/cratefit/bignum"

// Solver exposes the per-solve context to white-box transition tests.
type Solver = solver

// NewSolverForTest builds a minimising context over costs.
func NewSolverForTest(costs [][]*bignum.Nat) (*Solver, error) {
	return newSolver(costs, nil, bignum.New(0), Minimize)
}

// Step runs exactly one transition.
func (s *solver) Step(step Step) (Step, error) { return s.transition(step) }

// StateAt returns the mark of cell (i, j).
func (s *solver) StateAt(i, j int) State { return s.cells[i][j].State }

// CostAt returns the working cost of cell (i, j) in hex.
func (s *solver) CostAt(i, j int) string { return s.cells[i][j].Cost.String() }

// RowCovered reports the row cover of i.
func (s *solver) RowCovered(i int) bool { return s.rowCovered[i] }

// ColCovered reports the column cover of j.
func (s *solver) ColCovered(j int) bool { return s.colCovered[j] }

// Primed returns the prime that ended the last StepPrime.
func (s *solver) Primed() Location { return s.primed }

// Path returns the last augmenting path.
func (s *solver) Path() []Location { return append([]Location(nil), s.path...) }
