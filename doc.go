// Package rookpath counts and draws every rook path across a grid: each
// way to walk from corner (0,0) to corner (m,n) of an (m+1)×(n+1) lattice
// moving up, down, left or right without visiting a point twice.
//
// Quick ASCII example (m=2, n=2), one of the 12 solutions:
//
//	0__1  2
//	   |
//	3__4  5
//	|
//	6__7__8
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/  — cell ids, Down/Right/Up/Left moves, transition rules, visited sets
//	simplepath/ — depth-first enumeration: Enumerate, Walk, Count, CountParallel
//	render/     — ASCII diagrams, edge-sequence encodings, length histogram
//	cmd/        — the rookpath command line
//
// The search is exhaustive and its cost grows exponentially with the grid,
// so it is meant for small grids (up to about 6×6 points).
//
//	go install github.com/katalvlaran/rookpath/cmd/rookpath@latest
//	rookpath -s 2 2
package rookpath
