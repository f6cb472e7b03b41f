package simplepath

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rookpath/gridgraph"
)

// parallelSplitDepth is the trail length at which CountParallel stops
// expanding sequentially and hands each remaining subtree to a worker.
const parallelSplitDepth = 6

// Count returns the number of simple paths of g, walking them in order.
// Errors are those of Walk.
func Count(g *gridgraph.GridGraph, opts ...Option) (int, error) {
	n := 0
	err := Walk(g, func(Path) error {
		n++
		return nil
	}, opts...)

	return n, err
}

// CountParallel returns the same number as Count, splitting the search
// tree into independent subtrees counted by up to workers goroutines.
//
// Partial paths are expanded sequentially to parallelSplitDepth edges; every
// subtree below that is counted by its own walker. Subtrees share no mutable
// state. An OnVisit hook, if set, is called from several goroutines and
// must be safe for concurrent use.
//
// Returns ErrOptionViolation if workers < 1. The first error from any
// subtree cancels the others and is returned.
func CountParallel(ctx context.Context, g *gridgraph.GridGraph, workers int, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if workers < 1 {
		return 0, errors.Wrapf(ErrOptionViolation, "workers must be positive, got %d", workers)
	}
	o := buildOptions(opts)
	if o.err != nil {
		return 0, o.err
	}
	if ctx != nil {
		o.Ctx = ctx
	}

	// 1. Sequential expansion down to the split depth
	var total atomic.Int64
	count := func(Path) bool {
		total.Add(1)
		return true
	}
	root := newWalker(g, o)
	root.splitAt = parallelSplitDepth
	root.run(count)
	if root.err != nil {
		return 0, root.err
	}
	root.log.WithField("branches", len(root.branches)).Debug("split search tree")

	// 2. Fork: one task per subtree
	eg, egCtx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(workers)
	for _, b := range root.branches {
		eg.Go(func() error {
			bo := o
			bo.Ctx = egCtx
			w := newWalker(g, bo)
			w.visit(b.at, b.trail, b.visited, count)
			return w.err
		})
	}

	// 3. Join
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return int(total.Load()), nil
}

// gridLabel names g in log fields, e.g. "2x2".
func gridLabel(g *gridgraph.GridGraph) string {
	return fmt.Sprintf("%dx%d", g.M(), g.N())
}

// debugEnabled reports whether l would emit debug entries, so the search
// can skip building trace fields when it would not.
func debugEnabled(l logrus.FieldLogger) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}
