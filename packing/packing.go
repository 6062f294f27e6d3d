package packing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MaxDimensions bounds n so a hostile header cannot force a huge allocation.
const MaxDimensions = 1 << 12

var (
	// ErrInvalidDimensions reports a missing, malformed or out-of-range n.
	ErrInvalidDimensions = errors.New("packing: invalid number of dimensions")

	// ErrInvalidCrateEdge reports a missing, malformed or non-positive crate edge.
	ErrInvalidCrateEdge = errors.New("packing: invalid crate edge")

	// ErrInvalidBoxEdge reports a missing, malformed or non-positive box edge.
	ErrInvalidBoxEdge = errors.New("packing: invalid box edge")
)

// Input is one validated problem.
type Input struct {
	Crate []uint64
	Box   []uint64
}

// N returns the number of dimensions.
func (in *Input) N() int { return len(in.Crate) }

// ReadInput reads n, n crate edges and n box edges from r. n must be at
// least minDimensions. Reading stops at the first offending value.
func ReadInput(r io.Reader, minDimensions int) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := readPositive(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}
	if n < uint64(minDimensions) || n > MaxDimensions {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidDimensions, n, minDimensions, MaxDimensions)
	}

	in := &Input{Crate: make([]uint64, n), Box: make([]uint64, n)}
	var i int
	for i = range in.Crate {
		if in.Crate[i], err = readPositive(sc); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidCrateEdge, i, err)
		}
	}
	for i = range in.Box {
		if in.Box[i], err = readPositive(sc); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidBoxEdge, i, err)
		}
	}

	return in, nil
}

// readPositive scans one token as a positive int64.
func readPositive(sc *bufio.Scanner) (uint64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("%d is not positive", v)
	}

	return uint64(v), nil
}

// Counts returns count[i][j] = crate[i] / box[j]. crate and box must have
// the same length and box edges must be positive.
func Counts(crate, box []uint64) ([][]uint64, error) {
	if len(crate) == 0 || len(crate) != len(box) {
		return nil, fmt.Errorf("%w: %d crate edges, %d box edges", ErrInvalidDimensions, len(crate), len(box))
	}
	var j int
	for j = range box {
		if box[j] == 0 {
			return nil, fmt.Errorf("%w %d: zero", ErrInvalidBoxEdge, j)
		}
	}
	counts := make([][]uint64, len(crate))
	var i int
	for i = range crate {
		counts[i] = make([]uint64, len(box))
		for j = range box {
			counts[i][j] = crate[i] / box[j]
		}
	}

	return counts, nil
}
