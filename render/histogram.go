package render

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"

	"github.com/katalvlaran/rookpath/simplepath"
)

// LengthHistogram counts paths by number of edges, reported in ascending
// length order. The zero value is not usable; call NewLengthHistogram.
type LengthHistogram struct {
	counts *treemap.Map // int length → int count
	total  int
}

// NewLengthHistogram returns an empty histogram.
func NewLengthHistogram() *LengthHistogram {
	return &LengthHistogram{counts: treemap.NewWithIntComparator()}
}

// Add records p.
func (h *LengthHistogram) Add(p simplepath.Path) {
	n := 0
	if v, ok := h.counts.Get(p.Len()); ok {
		n = v.(int)
	}
	h.counts.Put(p.Len(), n+1)
	h.total++
}

// Total returns the number of paths added.
func (h *LengthHistogram) Total() int { return h.total }

// Count returns how many added paths have length edges.
func (h *LengthHistogram) Count(length int) int {
	if v, ok := h.counts.Get(length); ok {
		return v.(int)
	}

	return 0
}

// Lengths returns the distinct lengths seen, ascending.
func (h *LengthHistogram) Lengths() []int {
	keys := h.counts.Keys()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.(int)
	}

	return out
}

// Write prints one "Length <k>: <count>" line per distinct length.
func (h *LengthHistogram) Write(w io.Writer) error {
	it := h.counts.Iterator()
	for it.Next() {
		if _, err := fmt.Fprintf(w, "Length %d: %d\n", it.Key(), it.Value()); err != nil {
			return errors.Wrap(err, "render: write histogram")
		}
	}

	return nil
}
