// Package gridgraph treats the points of an (m+1)×(n+1) lattice as the
// vertices of a rectangular grid graph, numbered row by row.
//
// What:
//
//   - GridGraph fixes the extents m (horizontal) and n (vertical).
//   - Cells are integer ids in [0, (m+1)(n+1)); row = id/(m+1), col = id%(m+1).
//   - Moves are Down, Right, Up and Left, tried in that order.
//   - CheckTransition/AllowedTransition decide whether a move is legal given
//     the cells already visited, including the row-wrap rule for horizontal
//     moves.
//   - VisitedSet is a copy-on-extend bitset of visited cells.
//
// Layout (m=2, n=2):
//
//	0 1 2   ─────► m direction
//	3 4 5
//	6 7 8
//	│
//	▼ n direction
//
// Complexity:
//
//   - CheckTransition, Move, Coordinate, Adjacent: O(1).
//   - VisitedSet.With: O((m+1)(n+1)/64).
//
// Errors:
//
//   - ErrNegativeDimension: m or n below zero.
//   - ErrVisited, ErrBeforeStart, ErrPastEnd, ErrRowWrap: reasons returned by
//     CheckTransition.
package gridgraph
