// Package render turns enumerated grid paths into text.
//
// What:
//
//   - Renderer.Diagram draws a path as two lines per grid row: cell labels
//     joined by "__" where the path walks a horizontal edge, then a line
//     with "|" under every cell whose downward edge the path walks.
//   - WriteEdges prints the raw edge sequence as a tuple, JSON or YAML.
//   - LengthHistogram tallies how many paths have each edge count.
//   - Summary prints the closing "Found: <count> solutions" line.
//
// Diagram of ((0, 3), (3, 4), (4, 1), (1, 2), (2, 5)) on the 3×2 grid:
//
//	0  1__2
//	|  |  |
//	3__4  5
//
// Labels are right-aligned to the digit count of the largest cell id.
package render
