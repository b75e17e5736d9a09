package snake

// Fixed board geometry. CellSize and OriginOffset are pixel values for image export.
const (
	BoardSize    = 30
	CellSize     = 20
	OriginOffset = 10
)

// Cell is a discrete board coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by v.
func (c Cell) Add(v Cell) Cell {
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// Grid is a square board of Size×Size cells, valid coordinates in [0, Size).
type Grid struct {
	Size int
}

// NewGrid creates a grid of the given size.
func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Size * g.Size
}

// Cells returns every board cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
