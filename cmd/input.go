package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/rookpath/render"
)

// ErrInvalidExtent is returned when a grid extent is not a non-negative
// integer.
var ErrInvalidExtent = errors.New("grid extents must be non-negative integers")

// Input contains the input for the root command
type Input struct {
	debug     bool
	solutions bool
	paths     bool
	lengths   bool
	jobs      int
	format    formatValue
	m, n      int
}

// Extents returns the parsed grid extents m and n.
func (i *Input) Extents() (m, n int) {
	return i.m, i.n
}

// Format returns the encoding selected for -p output.
func (i *Input) Format() render.Format {
	return render.Format(i.format)
}

func parseExtent(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidExtent, "%s=%q", name, s)
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrInvalidExtent, "%s=%d", name, v)
	}

	return v, nil
}

// formatValue adapts render.Format to a pflag.Value.
type formatValue render.Format

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return render.Format(*f).String() }

func (f *formatValue) Set(s string) error {
	v, err := render.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatValue(v)

	return nil
}

func (f *formatValue) Type() string { return "format" }
