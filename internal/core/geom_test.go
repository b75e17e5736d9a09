package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	in := r.Inner()
	if in != NewRect(6, 11, 18, 13) {
		t.Errorf("Inner() = %+v", in)
	}
	if tiny := NewRect(0, 0, 1, 1).Inner(); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inner() of a 1x1 rect = %+v, expected empty", tiny)
	}
}

func TestRectLayout(t *testing.T) {
	board := NewRect(0, 0, 32, 17)

	tests := []struct {
		name string
		w, h int
		fits bool
		x, y int
	}{
		{"exact", 32, 17, true, 0, 0},
		{"wide", 80, 24, true, 24, 3},
		{"too narrow", 31, 24, false, 0, 3},
		{"too short", 80, 16, false, 24, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.FitsIn(tc.w, tc.h); got != tc.fits {
				t.Errorf("FitsIn(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.fits)
			}
			c := board.CenterIn(tc.w, tc.h)
			if c.X != tc.x || c.Y != tc.y || c.W != board.W || c.H != board.H {
				t.Errorf("CenterIn(%d, %d) = %+v, expected at (%d, %d)", tc.w, tc.h, c, tc.x, tc.y)
			}
		})
	}
}

func TestInputFrameLastDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	if f.Last != ActionLeft {
		t.Errorf("Last = %v, expected Left", f.Last)
	}
	if !f.Has(ActionPause) || !f.Has(ActionUp) {
		t.Error("Has should report every action set this frame")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) || f.Last != ActionNone {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionUp) || clone.Last != ActionLeft {
		t.Error("Clone should be independent of the original")
	}
}

func TestPaletteColorWraps(t *testing.T) {
	if PaletteColor(0) != PaletteColor(len(Palette)) {
		t.Error("PaletteColor should wrap around the palette")
	}
	if PaletteColor(-1) != PaletteColor(1) {
		t.Error("PaletteColor should accept negative indices")
	}
}
