package gridgraph

import (
	"iter"

	"github.com/pkg/errors"
)

// NewGridGraph constructs the grid graph with horizontal extent m and
// vertical extent n, i.e. (m+1)×(n+1) cells.
// Returns ErrNegativeDimension if either extent is negative.
// Complexity: O(1).
func NewGridGraph(m, n int) (*GridGraph, error) {
	if m < 0 || n < 0 {
		return nil, errors.Wrapf(ErrNegativeDimension, "m=%d n=%d", m, n)
	}
	w := m + 1
	gg := &GridGraph{
		m:     m,
		n:     n,
		width: w,
		cells: w * (n + 1),
	}
	// Offsets are indexed by Direction; keep in step with Directions.
	gg.offsets[Down] = w
	gg.offsets[Right] = 1
	gg.offsets[Up] = -w
	gg.offsets[Left] = -1

	return gg, nil
}

// M returns the horizontal extent.
func (gg *GridGraph) M() int { return gg.m }

// N returns the vertical extent.
func (gg *GridGraph) N() int { return gg.n }

// Width returns the number of cells per row (m+1).
func (gg *GridGraph) Width() int { return gg.width }

// Height returns the number of rows (n+1).
func (gg *GridGraph) Height() int { return gg.n + 1 }

// CellCount returns (m+1)(n+1).
func (gg *GridGraph) CellCount() int { return gg.cells }

// Last returns the terminal corner (m,n).
func (gg *GridGraph) Last() Cell { return Cell(gg.cells - 1) }

// InBounds reports whether c is a cell of the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c >= 0 && int(c) < gg.cells
}

// Coordinate converts a cell id to its (row, col) position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(c Cell) (row, col int) {
	return int(c) / gg.width, int(c) % gg.width
}

// Index maps (row, col) back to the row-major cell id.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) Cell {
	return Cell(row*gg.width + col)
}

// Offset returns the id delta of moving one step in direction d.
func (gg *GridGraph) Offset(d Direction) int {
	return gg.offsets[d]
}

// Move returns the cell reached from c by one step in direction d.
// The result is not checked; pass it through CheckTransition before use.
func (gg *GridGraph) Move(c Cell, d Direction) Cell {
	return c + Cell(gg.offsets[d])
}

// CheckTransition reports why moving from current to desired is illegal,
// or nil when the move is allowed. visited holds the cells already on the
// path, current included.
//
// Checks, in order:
//   - desired already visited      → ErrVisited
//   - desired < 0                  → ErrBeforeStart
//   - desired ≥ (m+1)(n+1)         → ErrPastEnd
//   - horizontal step across rows  → ErrRowWrap
//
// A step of ±(m+1) is vertical and cannot wrap. A step of ±1 is horizontal
// and must stay in the row of current. When m == 0 the two coincide and the
// step is treated as vertical; use CheckMove to test a specific direction.
// Complexity: O(1).
func (gg *GridGraph) CheckTransition(current, desired Cell, visited VisitedSet) error {
	if err := gg.checkTarget(desired, visited); err != nil {
		return err
	}
	d := int(desired - current)
	if d == gg.width || d == -gg.width {
		return nil
	}
	if d == 1 || d == -1 {
		return gg.checkSameRow(current, desired)
	}

	return nil
}

// CheckMove computes the cell one step from current in direction d and
// reports whether the step is legal. Right and Left must stay in the row of
// current; Down and Up only have to land inside the grid.
// Complexity: O(1).
func (gg *GridGraph) CheckMove(current Cell, d Direction, visited VisitedSet) (Cell, error) {
	desired := gg.Move(current, d)
	if err := gg.checkTarget(desired, visited); err != nil {
		return desired, err
	}
	if d == Right || d == Left {
		return desired, gg.checkSameRow(current, desired)
	}

	return desired, nil
}

func (gg *GridGraph) checkTarget(desired Cell, visited VisitedSet) error {
	if visited.Has(desired) {
		return ErrVisited
	}
	if desired < 0 {
		return ErrBeforeStart
	}
	if int(desired) >= gg.cells {
		return ErrPastEnd
	}

	return nil
}

func (gg *GridGraph) checkSameRow(current, desired Cell) error {
	if int(current)/gg.width != int(desired)/gg.width {
		return ErrRowWrap
	}

	return nil
}

// AllowedTransition reports whether moving from current to desired is legal.
// It is a pure predicate over its inputs.
func (gg *GridGraph) AllowedTransition(current, desired Cell, visited VisitedSet) bool {
	return gg.CheckTransition(current, desired, visited) == nil
}

// Adjacent reports whether a and b are both cells of the grid and joined by
// an edge: same row and one column apart, or same column and one row apart.
// Complexity: O(1).
func (gg *GridGraph) Adjacent(a, b Cell) bool {
	if !gg.InBounds(a) || !gg.InBounds(b) {
		return false
	}
	switch d := int(a - b); {
	case d == gg.width || d == -gg.width:
		return true
	case d == 1 || d == -1:
		return int(a)/gg.width == int(b)/gg.width
	default:
		return false
	}
}

// Neighbors yields the in-bounds moves from c, in search order, paired with
// the direction that reaches them. Visited state is not considered.
func (gg *GridGraph) Neighbors(c Cell) iter.Seq2[Direction, Cell] {
	return func(yield func(Direction, Cell) bool) {
		var empty VisitedSet
		for _, d := range Directions {
			next, err := gg.CheckMove(c, d, empty)
			if err != nil {
				continue
			}
			if !yield(d, next) {
				return
			}
		}
	}
}
