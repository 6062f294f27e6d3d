package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cratefit/bignum"
)

// searcher holds the state of one Run.
type searcher struct {
	n          int
	crate      []uint64
	box        []uint64
	order      []int   // crate dimensions, ascending edge
	candidates [][]int // per depth: box indices in try order
	used       []bool
	pick       []int         // pick[k]: box index chosen at depth k
	boxes      []*bignum.Nat // boxes[k]: product over depths < k
	volume     []*bignum.Nat // volume[k]: used volume over depths < k
	bound      *bignum.Nat   // scratch for promising
	best       *Packing
	visit      VisitFunc
}

// Run searches every orientation of box inside crate and returns the best
// packing. visit may be nil.
//
// Errors: ErrDimensions, ErrNoFit, bignum.ErrCapacity, or the first error
// returned by visit.
func Run(crate, box []uint64, visit VisitFunc) (*Packing, error) {
	if len(crate) == 0 || len(crate) != len(box) {
		return nil, fmt.Errorf("%d crate edges, %d box edges: %w", len(crate), len(box), ErrDimensions)
	}
	var i int
	for i = range crate {
		if crate[i] == 0 || box[i] == 0 {
			return nil, fmt.Errorf("zero edge at %d: %w", i, ErrDimensions)
		}
	}

	s := newSearcher(crate, box, visit)
	if err := s.descend(0); err != nil {
		return nil, err
	}
	if s.best == nil {
		return nil, ErrNoFit
	}

	return s.best, nil
}

func newSearcher(crate, box []uint64, visit VisitFunc) *searcher {
	n := len(crate)
	s := &searcher{
		n:          n,
		crate:      crate,
		box:        box,
		order:      make([]int, n),
		candidates: make([][]int, n),
		used:       make([]bool, n),
		pick:       make([]int, n),
		boxes:      make([]*bignum.Nat, n+1),
		volume:     make([]*bignum.Nat, n+1),
		bound:      new(bignum.Nat),
		visit:      visit,
	}
	var i int
	for i = 0; i < n; i++ {
		s.order[i] = i
	}
	sort.SliceStable(s.order, func(a, b int) bool { return crate[s.order[a]] < crate[s.order[b]] })

	for i = 0; i < n; i++ {
		s.candidates[i] = s.rank(crate[s.order[i]])
	}
	for i = 0; i <= n; i++ {
		s.boxes[i] = bignum.New(1)
		s.volume[i] = bignum.New(1)
	}

	return s
}

// rank orders box indices for a crate edge c: fitting edges first, then
// smaller remainder, then larger count.
func (s *searcher) rank(c uint64) []int {
	idx := make([]int, s.n)
	for j := range idx {
		idx[j] = j
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ea, eb := s.box[idx[a]], s.box[idx[b]]
		fa, fb := c/ea, c/eb
		if fa == 0 || fb == 0 {
			return fb == 0 && fa != 0
		}
		if ra, rb := c%ea, c%eb; ra != rb {
			return ra < rb
		}

		return fa > fb
	})

	return idx
}

// descend tries every distinct fitting edge for depth k.
func (s *searcher) descend(k int) error {
	if k == s.n {
		return s.leaf()
	}
	ok, err := s.promising(k)
	if err != nil || !ok {
		return err
	}

	var (
		c        uint64
		edge     uint64
		lastEdge uint64
	)
	c = s.crate[s.order[k]]
	for _, b := range s.candidates[k] {
		if s.used[b] {
			continue
		}
		edge = s.box[b]
		if c/edge == 0 {
			break
		}
		if edge == lastEdge {
			continue
		}
		lastEdge = edge

		if _, err = s.boxes[k+1].Set(s.boxes[k]); err != nil {
			return err
		}
		if err = s.boxes[k+1].MulUint64(c / edge); err != nil {
			return err
		}
		if _, err = s.volume[k+1].Set(s.volume[k]); err != nil {
			return err
		}
		if err = s.volume[k+1].MulUint64(c - c%edge); err != nil {
			return err
		}

		s.used[b] = true
		s.pick[k] = b
		err = s.descend(k + 1)
		s.used[b] = false
		if err != nil {
			return err
		}
	}

	return nil
}

// promising multiplies the used volume so far by the best remaining used
// length of each unvisited dimension, stopping as soon as the partial bound
// beats the best packing.
func (s *searcher) promising(k int) (bool, error) {
	if _, err := s.bound.Set(s.volume[k]); err != nil {
		return false, err
	}
	var (
		d, b int
		c    uint64
	)
	for d = k; d < s.n; d++ {
		c = s.crate[s.order[d]]
		b = s.firstUnused(d)
		if b < 0 || c/s.box[b] == 0 {
			return false, nil
		}
		if err := s.bound.MulUint64(c - c%s.box[b]); err != nil {
			return false, err
		}
		if s.best == nil || bignum.Compare(s.bound, s.best.Volume) == bignum.Greater {
			return true, nil
		}
	}

	return false, nil
}

// firstUnused returns the best-ranked unused box index for depth d, or -1.
func (s *searcher) firstUnused(d int) int {
	for _, b := range s.candidates[d] {
		if !s.used[b] {
			return b
		}
	}

	return -1
}

// leaf records a complete orientation when it strictly improves the best.
func (s *searcher) leaf() error {
	if s.best != nil && bignum.Compare(s.volume[s.n], s.best.Volume) != bignum.Greater {
		return nil
	}
	p := Packing{
		Assignment: make([]int, s.n),
		Boxes:      s.boxes[s.n].Clone(),
		Volume:     s.volume[s.n].Clone(),
	}
	for k := 0; k < s.n; k++ {
		p.Assignment[s.order[k]] = s.pick[k]
	}
	s.best = &p
	if s.visit != nil {
		return s.visit(p)
	}

	return nil
}
