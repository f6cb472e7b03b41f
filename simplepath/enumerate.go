package simplepath

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rookpath/gridgraph"
)

// walker carries the per-enumeration state that does not vary by branch.
//
// visit is entered once per cell. In order it checks the context and the
// split depth, runs the OnVisit hook, yields the trail if the cell is
// terminal, applies the depth limit, then tries Down, Right, Up, Left.
// Every call owns its extended trail and visited set, so nothing is undone
// on return.
type walker struct {
	g     *gridgraph.GridGraph
	opts  Options
	last  gridgraph.Cell
	log   logrus.FieldLogger
	trace bool
	err   error // first context or hook error; stops the walk

	// splitAt ≥ 0 makes visit record cells reached at that depth into
	// branches instead of exploring them. Used by CountParallel.
	splitAt  int
	branches []branch
}

// branch is an unexplored subtree root: a cell together with the trail and
// visited set that reached it.
type branch struct {
	at      gridgraph.Cell
	trail   *step
	visited gridgraph.VisitedSet
}

func newWalker(g *gridgraph.GridGraph, o Options) *walker {
	return &walker{
		g:       g,
		opts:    o,
		last:    g.Last(),
		log:     o.Log.WithField("grid", gridLabel(g)),
		trace:   debugEnabled(o.Log),
		splitAt: -1,
	}
}

// Enumerate returns a lazy sequence of every simple path of g from the
// origin to g.Last(), in Down, Right, Up, Left trial order.
//
// Each range over the returned sequence runs a fresh search. Breaking out
// of the loop stops the search. A cancelled context or a failing OnVisit
// hook ends the sequence early; use Walk to observe those errors. A nil
// graph or an invalid option yields nothing.
func Enumerate(g *gridgraph.GridGraph, opts ...Option) iter.Seq[Path] {
	return func(yield func(Path) bool) {
		if g == nil {
			return
		}
		o := buildOptions(opts)
		if o.err != nil {
			return
		}
		newWalker(g, o).run(yield)
	}
}

// Walk runs the enumeration and calls fn for each path in order.
// If fn returns ErrStop the walk ends and Walk returns nil; any other error
// from fn ends the walk and is returned wrapped.
// Returns ErrGraphNil, ErrOptionViolation, the context error, or the OnVisit
// hook error otherwise.
func Walk(g *gridgraph.GridGraph, fn func(Path) error, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := buildOptions(opts)
	if o.err != nil {
		return o.err
	}

	var cbErr error
	w := newWalker(g, o)
	w.run(func(p Path) bool {
		if err := fn(p); err != nil {
			cbErr = err
			return false
		}
		return true
	})

	if w.err != nil {
		return w.err
	}
	if cbErr != nil && !errors.Is(cbErr, ErrStop) {
		return errors.Wrap(cbErr, "simplepath: walk callback")
	}

	return nil
}

// run starts the search at the origin.
func (w *walker) run(yield func(Path) bool) {
	visited := gridgraph.NewVisitedSet(w.g).With(gridgraph.Origin)
	w.visit(gridgraph.Origin, nil, visited, yield)
}

// visit explores every simple continuation of trail from at.
// It returns false once the consumer declined a path or an error was
// recorded in w.err; callers must stop immediately in that case.
func (w *walker) visit(at gridgraph.Cell, trail *step, visited gridgraph.VisitedSet, yield func(Path) bool) bool {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		w.err = w.opts.Ctx.Err()
		return false
	default:
	}

	depth := trail.len()

	// 2. Parallel split: hand the subtree to another walker
	if depth == w.splitAt {
		w.branches = append(w.branches, branch{at: at, trail: trail, visited: visited})
		return true
	}

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(at, depth); err != nil {
			w.err = errors.Wrapf(err, "simplepath: OnVisit hook for cell %d", at)
			return false
		}
	}

	if w.trace {
		w.log.WithFields(logrus.Fields{"cell": at, "depth": depth}).Debug("at cell")
	}

	// 4. Terminal: yield and do not move on from here
	if at == w.last {
		p := trail.path()
		if w.trace {
			w.log.WithField("edges", p.Len()).Debugf("found a solution: %v", p)
		}
		return yield(p)
	}

	// 5. Depth limit
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return true
	}

	// 6. Try every direction in fixed order
	for _, d := range gridgraph.Directions {
		next, err := w.g.CheckMove(at, d, visited)
		if err != nil {
			if w.trace {
				w.log.WithFields(logrus.Fields{
					"cell":      at,
					"desired":   next,
					"direction": d,
				}).Debugf("rejected: %v", err)
			}
			continue
		}
		if w.trace {
			w.log.WithFields(logrus.Fields{"cell": at, "desired": next, "direction": d}).Debug("going")
		}
		e := gridgraph.Edge{Src: at, Dst: next}
		if !w.visit(next, trail.extend(e), visited.With(next), yield) {
			return false
		}
	}

	return true
}
