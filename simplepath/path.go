package simplepath

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/rookpath/gridgraph"
)

// Validation errors reported by Path.Validate.
var (
	ErrBadStart     = errors.New("simplepath: path does not start at the origin")
	ErrBadEnd       = errors.New("simplepath: path does not end at the terminal cell")
	ErrDisconnected = errors.New("simplepath: consecutive edges do not share an endpoint")
	ErrNotAdjacent  = errors.New("simplepath: edge joins cells that are not adjacent")
	ErrRepeatedCell = errors.New("simplepath: cell visited more than once")
)

// Path is an ordered sequence of edges from gridgraph.Origin to the terminal
// cell. Each edge's Dst is the next edge's Src. The empty Path is the single
// path of a 1×1 grid.
type Path []gridgraph.Edge

// Len returns the number of edges.
func (p Path) Len() int { return len(p) }

// Start returns the first cell of p.
func (p Path) Start() gridgraph.Cell {
	if len(p) == 0 {
		return gridgraph.Origin
	}

	return p[0].Src
}

// End returns the last cell of p.
func (p Path) End() gridgraph.Cell {
	if len(p) == 0 {
		return gridgraph.Origin
	}

	return p[len(p)-1].Dst
}

// Cells returns the vertex sequence of p: Start followed by each edge's Dst.
func (p Path) Cells() []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(p)+1)
	out = append(out, p.Start())
	for _, e := range p {
		out = append(out, e.Dst)
	}

	return out
}

// Contains reports whether p walks e in either direction.
func (p Path) Contains(e gridgraph.Edge) bool {
	for _, x := range p {
		if x.Equal(e) {
			return true
		}
	}

	return false
}

// String formats p as a tuple of edge pairs, e.g. "((0, 1), (1, 3))".
// The empty path is "()".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

// Validate checks that p is a simple path of g from the origin to g.Last().
// The first violation found is returned, wrapped with its position.
// Complexity: O(L) for L edges.
func (p Path) Validate(g *gridgraph.GridGraph) error {
	if g == nil {
		return ErrGraphNil
	}
	if p.Start() != gridgraph.Origin {
		return errors.Wrapf(ErrBadStart, "starts at %d", p.Start())
	}
	if p.End() != g.Last() {
		return errors.Wrapf(ErrBadEnd, "ends at %d, want %d", p.End(), g.Last())
	}

	seen := gridgraph.NewVisitedSet(g).With(gridgraph.Origin)
	for i, e := range p {
		if i > 0 && p[i-1].Dst != e.Src {
			return errors.Wrapf(ErrDisconnected, "edge %d %v after %v", i, e, p[i-1])
		}
		if !g.Adjacent(e.Src, e.Dst) {
			return errors.Wrapf(ErrNotAdjacent, "edge %d %v", i, e)
		}
		if seen.Has(e.Dst) {
			return errors.Wrapf(ErrRepeatedCell, "cell %d at edge %d", e.Dst, i)
		}
		seen = seen.With(e.Dst)
	}

	return nil
}

// step is one link of a persistent trail: the edge walked last and the
// trail it extends. A nil *step is the empty trail.
type step struct {
	edge   gridgraph.Edge
	parent *step
	depth  int
}

// extend returns a new trail with e appended; t is left unchanged.
func (t *step) extend(e gridgraph.Edge) *step {
	return &step{edge: e, parent: t, depth: t.len() + 1}
}

func (t *step) len() int {
	if t == nil {
		return 0
	}

	return t.depth
}

// path materialises the trail, oldest edge first.
func (t *step) path() Path {
	p := make(Path, t.len())
	for s := t; s != nil; s = s.parent {
		p[s.depth-1] = s.edge
	}

	return p
}
