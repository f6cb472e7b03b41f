package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/rookpath/gridgraph"
	"github.com/katalvlaran/rookpath/simplepath"
)

// Renderer draws paths of one grid. The label width is computed once.
type Renderer struct {
	g     *gridgraph.GridGraph
	width int
}

// NewRenderer returns a Renderer for g.
func NewRenderer(g *gridgraph.GridGraph) *Renderer {
	return &Renderer{
		g:     g,
		width: len(strconv.Itoa(int(g.Last()))),
	}
}

// LabelWidth returns the field width used for cell labels.
func (r *Renderer) LabelWidth() int { return r.width }

// Diagram writes the two-lines-per-row drawing of p to w.
func (r *Renderer) Diagram(w io.Writer, p simplepath.Path) error {
	edges := hashset.New()
	for _, e := range p {
		edges.Add(e.Canonical())
	}
	linked := func(a, b int) bool {
		return edges.Contains(gridgraph.Edge{Src: gridgraph.Cell(a), Dst: gridgraph.Cell(b)})
	}

	var sb strings.Builder
	stride, m := r.g.Width(), r.g.M()
	for rowStart := 0; rowStart < r.g.CellCount(); rowStart += stride {
		// labels and horizontal links
		fmt.Fprintf(&sb, "%*d", r.width, rowStart)
		for c := rowStart; c < rowStart+m; c++ {
			link := "  "
			if linked(c, c+1) {
				link = "__"
			}
			fmt.Fprintf(&sb, "%s%*d", link, r.width, c+1)
		}
		sb.WriteByte('\n')

		// vertical links
		for c := rowStart; c <= rowStart+m; c++ {
			mark := " "
			if linked(c, c+stride) {
				mark = "|"
			}
			fmt.Fprintf(&sb, "%*s  ", r.width, mark)
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "render: write diagram")
	}

	return nil
}

// Diagram draws p on g to w. Use a Renderer to draw many paths of one grid.
func Diagram(w io.Writer, g *gridgraph.GridGraph, p simplepath.Path) error {
	return NewRenderer(g).Diagram(w, p)
}

// Summary writes the closing count line.
func Summary(w io.Writer, count int) error {
	_, err := fmt.Fprintf(w, "Found: %d solutions\n", count)

	return errors.Wrap(err, "render: write summary")
}
