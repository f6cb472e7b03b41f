package gridgraph

import "fmt"

// Origin is the start corner (0,0) of every grid.
const Origin Cell = 0

// Cell identifies a lattice point by its row-major index.
type Cell int

// Direction is one of the four orthogonal moves on the grid.
type Direction int

const (
	// Down moves one row towards larger n.
	Down Direction = iota
	// Right moves one column towards larger m.
	Right
	// Up moves one row towards row 0.
	Up
	// Left moves one column towards column 0.
	Left
)

// Directions lists every move in the order the search tries them.
// The order fixes the order of enumerated paths.
var Directions = [...]Direction{Down, Right, Up, Left}

var directionNames = [...]string{
	Down:  "down",
	Right: "right",
	Up:    "up",
	Left:  "left",
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if d < Down || d > Left {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// Edge is an unordered pair of adjacent cells. Src and Dst keep the order in
// which a path walked the edge; Equal ignores it.
type Edge struct {
	Src, Dst Cell
}

// Canonical returns e with the smaller cell first.
func (e Edge) Canonical() Edge {
	if e.Src > e.Dst {
		return Edge{Src: e.Dst, Dst: e.Src}
	}

	return e
}

// Equal reports whether e and o join the same two cells, in either order.
func (e Edge) Equal(o Edge) bool {
	return e.Canonical() == o.Canonical()
}

// String formats e as "(src, dst)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.Src, e.Dst)
}

// GridGraph is the rectangular grid graph of (m+1)×(n+1) points.
// It is immutable once built; all methods are safe for concurrent use.
type GridGraph struct {
	m, n    int
	width   int // m+1, the row stride
	cells   int // (m+1)(n+1)
	offsets [len(Directions)]int
}
