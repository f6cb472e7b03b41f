// Package simplepath enumerates every simple path between opposite corners
// of a gridgraph.GridGraph.
//
// What:
//
//   - Enumerate(g, opts...): lazy iter.Seq[Path] of all simple paths from
//     cell 0 to g.Last(), found by depth-first backtracking.
//   - Walk(g, fn, opts...): the same traversal with error reporting.
//   - Count / CountParallel: number of paths, sequential or fork-join.
//   - Path: ordered edge sequence with Cells, Validate and tuple formatting.
//
// Order:
//
//	At every cell the moves are tried Down, Right, Up, Left. The order of
//	emitted paths is therefore fixed and identical across runs.
//
// State per branch:
//
//	Each recursive call owns its partial path (a persistent trail that only
//	ever grows by a new head) and its visited set (copy-on-extend). Sibling
//	branches never observe each other, so subtrees may run concurrently;
//	CountParallel does exactly that.
//
// Complexity:
//
//   - Time: proportional to the number of partial simple paths, exponential
//     in (m+1)(n+1).
//   - Memory: O(((m+1)(n+1))²/64) for visited sets along the recursion,
//     plus O(L) per yielded Path of length L.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked at every cell.
//   - WithLogger(l)        debug trace of steps, rejections and solutions.
//   - WithOnVisit(fn)      pre-order hook; an error aborts the walk.
//   - WithMaxDepth(limit)  prune partial paths longer than limit edges.
//
// Errors:
//
//   - ErrGraphNil          g is nil.
//   - ErrOptionViolation   invalid option value.
//   - context.Canceled / DeadlineExceeded from WithContext.
//   - hook and callback errors, wrapped.
package simplepath
