// Package core provides fundamental types shared by the game and the
// platform layers. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an axis-aligned screen area.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Fits reports whether a w x h area fits inside the rectangle.
func (r Rect) Fits(w, h int) bool {
	return w <= r.W && h <= r.H
}

// CenterIn returns a w x h rectangle centered inside r.
// Areas larger than r are pinned to r's top-left corner.
func (r Rect) CenterIn(w, h int) Rect {
	x := r.X + Clamp((r.W-w)/2, 0, r.W)
	y := r.Y + Clamp((r.H-h)/2, 0, r.H)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
