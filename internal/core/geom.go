// Package core holds the platform types shared by games and the terminal layer:
// screens, input frames, colors and layout. It does not import Bubble Tea so that
// game logic stays testable without a terminal.
package core

// Rect is a screen area measured in character cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the area inside a one-cell border drawn on r.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(0, r.W-2), H: max(0, r.H-2)}
}

// FitsIn reports whether a rectangle of r's size fits on a w×h screen.
func (r Rect) FitsIn(w, h int) bool {
	return r.W <= w && r.H <= h
}

// CenterIn moves r to the middle of a w×h screen. When r is larger than the
// screen it is pinned to the top-left corner.
func (r Rect) CenterIn(w, h int) Rect {
	r.X = max(0, (w-r.W)/2)
	r.Y = max(0, (h-r.H)/2)
	return r
}
