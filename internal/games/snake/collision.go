package snake

// SelfCollision reports whether the head shares a cell with any other segment.
// Chains shorter than three segments cannot fold back onto themselves.
func SelfCollision(c *Chain) bool {
	head := c.Head()
	for _, seg := range c.cells[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether p lies outside [0, N) on either axis.
func OutOfBounds(g Grid, p Cell) bool {
	return !g.Contains(p)
}
