package snake

// Chain is the ordered list of body cells, head first.
type Chain struct {
	cells []Cell
	prev  []Cell // reused snapshot buffer for Advance
}

// NewChain creates a chain of the given length whose head is at head and whose
// body trails behind it, opposite to dir.
func NewChain(head Cell, length int, dir Direction) *Chain {
	length = max(1, length)
	back := dir.Opposite().Vector()

	cells := make([]Cell, length)
	cells[0] = head
	for i := 1; i < length; i++ {
		cells[i] = cells[i-1].Add(back)
	}
	return &Chain{cells: cells}
}

// ChainOf creates a chain from explicit cells, head first.
func ChainOf(cells ...Cell) *Chain {
	c := &Chain{cells: make([]Cell, len(cells))}
	copy(c.cells, cells)
	return c
}

// Len returns the number of segments.
func (c *Chain) Len() int {
	return len(c.cells)
}

// Head returns the first segment.
func (c *Chain) Head() Cell {
	return c.cells[0]
}

// Tail returns the last segment.
func (c *Chain) Tail() Cell {
	return c.cells[len(c.cells)-1]
}

// Cells returns a copy of the segments, head first.
func (c *Chain) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Advance moves the chain one cell in dir.
// Every segment takes the cell its predecessor held before this call, working from
// the tail towards the head, then the head moves by dir's vector. Positions are read
// from a snapshot so no segment ever sees a cell already updated in this move.
func (c *Chain) Advance(dir Direction) {
	c.prev = append(c.prev[:0], c.cells...)
	for i := len(c.cells) - 1; i > 0; i-- {
		c.cells[i] = c.prev[i-1]
	}
	c.cells[0] = c.prev[0].Add(dir.Vector())
}

// Grow appends a segment on the current tail cell. It separates from the tail on
// the next Advance.
func (c *Chain) Grow() {
	c.cells = append(c.cells, c.Tail())
}
