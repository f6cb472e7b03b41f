package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rookpath/simplepath"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognised name.
var ErrUnknownFormat = errors.New("render: unknown edge format")

// Format selects how WriteEdges prints a path's edge sequence.
type Format int

const (
	// FormatTuple prints "((0, 1), (1, 3))".
	FormatTuple Format = iota
	// FormatJSON prints "[[0,1],[1,3]]".
	FormatJSON
	// FormatYAML prints one "- [src, dst]" line per edge.
	FormatYAML
)

var formatNames = map[Format]string{
	FormatTuple: "tuple",
	FormatJSON:  "json",
	FormatYAML:  "yaml",
}

// Formats lists the names accepted by ParseFormat.
func Formats() []string {
	return []string{"tuple", "json", "yaml"}
}

// String returns the name of f.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}

	return FormatTuple, errors.Wrapf(ErrUnknownFormat, "%q (want one of %s)", s, strings.Join(Formats(), ", "))
}

// pairs flattens p to [src, dst] integer pairs. Never nil.
func pairs(p simplepath.Path) [][2]int {
	out := make([][2]int, 0, len(p))
	for _, e := range p {
		out = append(out, [2]int{int(e.Src), int(e.Dst)})
	}

	return out
}

// WriteEdges writes the edge sequence of p to w in format f, followed by a
// newline.
func WriteEdges(w io.Writer, p simplepath.Path, f Format) error {
	var err error
	switch f {
	case FormatTuple:
		_, err = fmt.Fprintln(w, p.String())
	case FormatJSON:
		err = json.NewEncoder(w).Encode(pairs(p))
	case FormatYAML:
		err = writeYAML(w, p)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%v", f)
	}

	return errors.Wrapf(err, "render: write %s edges", f)
}

// writeYAML emits the pairs as a block sequence of flow-style pairs.
func writeYAML(w io.Writer, p simplepath.Path) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, pr := range pairs(p) {
		doc.Content = append(doc.Content, &yaml.Node{
			Kind:  yaml.SequenceNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: strconv.Itoa(pr[0])},
				{Kind: yaml.ScalarNode, Value: strconv.Itoa(pr[1])},
			},
		})
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
