// Package tetris is the falling-block engine: piece geometry, rotation,
// collision against a settled grid, and incremental frame diffs.
// It has no dependency on any terminal or timing code.
package tetris

import (
	"fmt"
	"sort"
)

// Coord is a grid position. X grows to the right, Y grows downward.
// Coords are plain values; every operation returns a new one.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Below returns the cell one row down.
func (c Coord) Below() Coord {
	return Coord{X: c.X, Y: c.Y + 1}
}

// Above returns the cell one row up.
func (c Coord) Above() Coord {
	return Coord{X: c.X, Y: c.Y - 1}
}

// LeftOf returns the cell one column to the left.
func (c Coord) LeftOf() Coord {
	return Coord{X: c.X - 1, Y: c.Y}
}

// RightOf returns the cell one column to the right.
func (c Coord) RightOf() Coord {
	return Coord{X: c.X + 1, Y: c.Y}
}

// IsLeftOf reports whether c lies in a column left of o.
func (c Coord) IsLeftOf(o Coord) bool {
	return c.X < o.X
}

// IsRightOf reports whether c lies in a column right of o.
func (c Coord) IsRightOf(o Coord) bool {
	return c.X > o.X
}

// RotateClockwiseAbout rotates c by +90 degrees around pivot.
// With Y pointing down, (dx, dy) maps to (-dy, dx). The arithmetic is exact.
func (c Coord) RotateClockwiseAbout(pivot Coord) Coord {
	d := c.Sub(pivot)
	return pivot.Add(Coord{X: -d.Y, Y: d.X})
}

// RotateAnticlockwiseAbout is the inverse of RotateClockwiseAbout.
func (c Coord) RotateAnticlockwiseAbout(pivot Coord) Coord {
	d := c.Sub(pivot)
	return pivot.Add(Coord{X: d.Y, Y: -d.X})
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CoordSet is a set of cells keyed by value.
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set from the given cells.
func NewCoordSet(cells ...Coord) CoordSet {
	s := make(CoordSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c.
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Has reports whether c is a member.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s CoordSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s CoordSet) Clone() CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Map returns a new set with f applied to every member.
func (s CoordSet) Map(f func(Coord) Coord) CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[f(c)] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same cells.
func (s CoordSet) Equal(o CoordSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the members in row-major order (Y, then X).
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sortRowMajor(out)
	return out
}

func sortRowMajor(cells []Coord) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
