package render_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rookpath/gridgraph"
	"github.com/katalvlaran/rookpath/render"
	"github.com/katalvlaran/rookpath/simplepath"
)

func mustGrid(t testing.TB, m, n int) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(m, n)
	require.NoError(t, err)

	return gg
}

func e(src, dst gridgraph.Cell) gridgraph.Edge {
	return gridgraph.Edge{Src: src, Dst: dst}
}

//----------------------------------------------------------------------------//
// Diagram
//----------------------------------------------------------------------------//

func TestDiagram_2x2(t *testing.T) {
	g := mustGrid(t, 1, 1)
	var buf bytes.Buffer
	require.NoError(t, render.Diagram(&buf, g, simplepath.Path{e(0, 2), e(2, 3)}))
	assert.Equal(t, ""+
		"0  1\n"+
		"|     \n"+
		"2__3\n"+
		"      \n", buf.String())
}

func TestDiagram_ReversedEdges(t *testing.T) {
	// edges walked right-to-left and bottom-to-top still draw
	g := mustGrid(t, 2, 1)
	var buf bytes.Buffer
	p := simplepath.Path{e(0, 3), e(3, 4), e(4, 1), e(1, 2), e(2, 5)}
	require.NoError(t, render.Diagram(&buf, g, p))
	assert.Equal(t, ""+
		"0  1__2\n"+
		"|  |  |  \n"+
		"3__4  5\n"+
		"         \n", buf.String())
}

func TestDiagram_WideLabels(t *testing.T) {
	// 0..11, largest id has two digits
	g := mustGrid(t, 3, 2)
	r := render.NewRenderer(g)
	assert.Equal(t, 2, r.LabelWidth())

	p := simplepath.Path{e(0, 1), e(1, 2), e(2, 3), e(3, 7), e(7, 11)}
	var buf bytes.Buffer
	require.NoError(t, r.Diagram(&buf, p))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, " 0__ 1__ 2__ 3", lines[0])
	assert.Equal(t, "             |  ", lines[1])
	assert.Equal(t, " 4   5   6   7", lines[2])
	assert.Equal(t, "             |  ", lines[3])
	assert.Equal(t, " 8   9  10  11", lines[4])
	assert.Equal(t, strings.Repeat(" ", 16), lines[5])
}

func TestDiagram_LabelWidthUsesLargestID(t *testing.T) {
	// 10 cells: ids 0..9, so one digit is enough
	assert.Equal(t, 1, render.NewRenderer(mustGrid(t, 9, 0)).LabelWidth())
	assert.Equal(t, 2, render.NewRenderer(mustGrid(t, 10, 0)).LabelWidth())
	assert.Equal(t, 1, render.NewRenderer(mustGrid(t, 0, 0)).LabelWidth())
}

func TestDiagram_SingleCell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Diagram(&buf, mustGrid(t, 0, 0), nil))
	assert.Equal(t, "0\n   \n", buf.String())
}

func TestDiagram_AllPathsDraw(t *testing.T) {
	g := mustGrid(t, 2, 2)
	r := render.NewRenderer(g)
	for p := range simplepath.Enumerate(g) {
		var buf bytes.Buffer
		require.NoError(t, r.Diagram(&buf, p))
		links := strings.Count(buf.String(), "__") + strings.Count(buf.String(), "|")
		assert.Equal(t, p.Len(), links, "every edge drawn exactly once for %v", p)
	}
}

//----------------------------------------------------------------------------//
// Edges
//----------------------------------------------------------------------------//

func TestParseFormat(t *testing.T) {
	for _, name := range render.Formats() {
		f, err := render.ParseFormat(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	_, err := render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
	assert.Equal(t, "Format(7)", render.Format(7).String())
}

func TestWriteEdges(t *testing.T) {
	p := simplepath.Path{e(0, 2), e(2, 3)}
	cases := []struct {
		f    render.Format
		want string
	}{
		{render.FormatTuple, "((0, 2), (2, 3))\n"},
		{render.FormatJSON, "[[0,2],[2,3]]\n"},
		{render.FormatYAML, "- [0, 2]\n- [2, 3]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.WriteEdges(&buf, p, tc.f))
			assert.Equal(t, tc.want, buf.String())
		})
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, render.WriteEdges(&buf, p, render.Format(9)), render.ErrUnknownFormat)
}

func TestWriteEdges_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteEdges(&buf, simplepath.Path{}, render.FormatTuple))
	require.NoError(t, render.WriteEdges(&buf, simplepath.Path{}, render.FormatJSON))
	assert.Equal(t, "()\n[]\n", buf.String())
}

//----------------------------------------------------------------------------//
// Histogram and summary
//----------------------------------------------------------------------------//

func TestLengthHistogram(t *testing.T) {
	g := mustGrid(t, 2, 2)
	h := render.NewLengthHistogram()
	for p := range simplepath.Enumerate(g) {
		h.Add(p)
	}
	assert.Equal(t, 12, h.Total())
	// 3×3 points: 6 shortest paths, 4 of length 6, 2 Hamiltonian of length 8
	assert.Equal(t, []int{4, 6, 8}, h.Lengths())
	assert.Equal(t, 6, h.Count(4))
	assert.Equal(t, 4, h.Count(6))
	assert.Equal(t, 2, h.Count(8))
	assert.Zero(t, h.Count(5))

	var buf bytes.Buffer
	require.NoError(t, h.Write(&buf))
	assert.Equal(t, "Length 4: 6\nLength 6: 4\nLength 8: 2\n", buf.String())
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Summary(&buf, 12))
	assert.Equal(t, "Found: 12 solutions\n", buf.String())
}

func TestLengthHistogram_SumsToTotal(t *testing.T) {
	g := mustGrid(t, 3, 3)
	h := render.NewLengthHistogram()
	paths := slices.Collect(simplepath.Enumerate(g))
	for _, p := range paths {
		h.Add(p)
	}
	sum := 0
	for _, l := range h.Lengths() {
		sum += h.Count(l)
	}
	assert.Equal(t, len(paths), sum)
	assert.Equal(t, 184, h.Total())
}
