package simplepath

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rookpath/gridgraph"
)

var (
	// ErrGraphNil is returned when a nil *gridgraph.GridGraph is passed.
	ErrGraphNil = errors.New("simplepath: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simplepath: invalid option supplied")

	// ErrStop may be returned by a Walk callback to end the walk early
	// without an error.
	ErrStop = errors.New("simplepath: stop walk")
)

// Option configures enumeration via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Walk,
// Count and CountParallel; Enumerate yields nothing.
type Option func(*Options)

// Options holds the parameters of one enumeration.
type Options struct {
	// Ctx allows cancellation; checked once per cell entered.
	Ctx context.Context

	// Log receives the debug trace. Defaults to a logger that discards.
	Log logrus.FieldLogger

	// OnVisit, if non-nil, runs when the search enters a cell, with the
	// number of edges walked so far. Returning an error aborts the walk.
	OnVisit func(c gridgraph.Cell, depth int) error

	// MaxDepth, if non-negative, prunes partial paths that already have
	// MaxDepth edges and have not reached the terminal cell.
	// Default -1 (no limit).
	MaxDepth int

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - a logger that discards output
//   - no OnVisit hook
//   - no depth limit (MaxDepth = -1)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Log:      discardLogger(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext sets the context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes the search trace to l at debug level.
// Passing nil keeps the discarding logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits partial paths to limit edges.
//
//	limit ≥ 0: prune beyond limit edges
//	limit == -1: no limit
//	limit < -1: invalid option → ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < -1 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be %d", limit)
			return
		}
		o.MaxDepth = limit
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}
