package gridgraph

import "github.com/soniakeys/bits"

// VisitedSet records which cells a partial path has touched.
//
// A VisitedSet is never modified after construction: With returns an
// extended copy, so two branches grown from the same set never see each
// other's cells. The zero value is an empty set that contains nothing.
type VisitedSet struct {
	b bits.Bits
	n int // number of cells marked
}

// NewVisitedSet returns an empty set sized for the cells of gg.
func NewVisitedSet(gg *GridGraph) VisitedSet {
	return VisitedSet{b: bits.New(gg.CellCount())}
}

// Has reports whether c is in the set. Cells outside the set's range are
// never members.
func (v VisitedSet) Has(c Cell) bool {
	if c < 0 || int(c) >= v.b.Num {
		return false
	}

	return v.b.Bit(int(c)) == 1
}

// With returns a copy of v that also contains c.
// It panics if c lies outside the grid the set was sized for.
// Complexity: O(cells/64).
func (v VisitedSet) With(c Cell) VisitedSet {
	var out VisitedSet
	out.b.Set(v.b)
	out.n = v.n
	if out.b.Bit(int(c)) == 0 {
		out.b.SetBit(int(c), 1)
		out.n++
	}

	return out
}

// Len returns the number of cells in the set.
func (v VisitedSet) Len() int { return v.n }

// Cells returns the members of v in ascending order.
func (v VisitedSet) Cells() []Cell {
	if v.n == 0 {
		return nil
	}
	out := make([]Cell, 0, v.n)
	v.b.IterateOnes(func(i int) bool {
		out = append(out, Cell(i))
		return true
	})

	return out
}
