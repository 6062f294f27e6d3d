package report

import (
	"fmt"

	"github.com/katalvlaran/cratefit/bignum"
)

// New validates assignment against counts and computes the exact product of
// the assigned counts by repeated word multiplication.
//
// Complexity: O(n·L) for an L-word product.
func New(counts [][]uint64, assignment []int) (*Result, error) {
	var n int
	n = len(counts)
	if n == 0 || len(assignment) != n {
		return nil, fmt.Errorf("%d rows, %d assigned columns: %w", n, len(assignment), ErrAssignment)
	}
	used := make([]bool, n)
	boxes := bignum.New(1)

	var (
		i, j int
		err  error
	)
	for i, j = range assignment {
		if len(counts[i]) != n || j < 0 || j >= n || used[j] {
			return nil, fmt.Errorf("row %d → column %d: %w", i, j, ErrAssignment)
		}
		used[j] = true
		if err = boxes.MulUint64(counts[i][j]); err != nil {
			return nil, err
		}
	}

	return &Result{Assignment: append([]int(nil), assignment...), Boxes: boxes}, nil
}
