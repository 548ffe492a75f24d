package tetris

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// Diff lists the cells changed by one Commit, each in row-major order.
type Diff struct {
	Erased []Coord
	Drawn  []Coord
}

// IsZero reports whether the commit changed nothing.
func (d Diff) IsZero() bool {
	return len(d.Erased) == 0 && len(d.Drawn) == 0
}

// DiffRenderer collects diffs from one or more commits and pushes only the
// changed cells to a Sink. When several diffs touch the same cell, the last
// write wins, so a cell erased by one commit and redrawn by the next is sent
// once as Filled.
type DiffRenderer struct {
	columns int
	rows    int
	pending *intmap.Map[int, Symbol]
}

// NewDiffRenderer creates a renderer for a columns x rows field.
func NewDiffRenderer(columns, rows int) *DiffRenderer {
	return &DiffRenderer{
		columns: columns,
		rows:    rows,
		pending: intmap.New[int, Symbol](16),
	}
}

// Queue merges a commit's changes into the pending set.
func (r *DiffRenderer) Queue(d Diff) {
	for _, c := range d.Erased {
		r.put(c, Empty)
	}
	for _, c := range d.Drawn {
		r.put(c, Filled)
	}
}

func (r *DiffRenderer) put(c Coord, s Symbol) {
	if c.X < 0 || c.X >= r.columns || c.Y < 0 || c.Y >= r.rows {
		return
	}
	r.pending.Put(c.Y*r.columns+c.X, s)
}

// Pending returns the number of cells waiting to be flushed.
func (r *DiffRenderer) Pending() int {
	return r.pending.Len()
}

// Flush sends pending cells to sink in row-major order and refreshes it.
// Nothing is sent, and Refresh is skipped, when no cell changed.
func (r *DiffRenderer) Flush(sink Sink) int {
	n := r.pending.Len()
	if n == 0 {
		return 0
	}
	idx := make([]int, 0, n)
	r.pending.ForEach(func(k int, _ Symbol) bool {
		idx = append(idx, k)
		return true
	})
	sort.Ints(idx)
	for _, k := range idx {
		s, _ := r.pending.Get(k)
		sink.SetPoint(k%r.columns, k/r.columns, s)
	}
	r.pending.Clear()
	sink.Refresh()
	return n
}

// Reset drops pending cells without drawing them, for use after a full
// redraw.
func (r *DiffRenderer) Reset() {
	r.pending.Clear()
}
