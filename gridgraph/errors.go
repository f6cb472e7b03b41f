package gridgraph

import "github.com/pkg/errors"

var (
	// ErrNegativeDimension indicates m or n is below zero.
	ErrNegativeDimension = errors.New("gridgraph: grid extents must be non-negative")

	// ErrVisited indicates the desired cell is already part of the path.
	ErrVisited = errors.New("gridgraph: cell already visited")
	// ErrBeforeStart indicates a move above the first row or left of cell 0.
	ErrBeforeStart = errors.New("gridgraph: cell before beginning")
	// ErrPastEnd indicates a move below the last row or right of the last cell.
	ErrPastEnd = errors.New("gridgraph: cell past end")
	// ErrRowWrap indicates a horizontal move that would cross into another row.
	ErrRowWrap = errors.New("gridgraph: horizontal move across rows")
)
