package snake

// Direction represents the snake's heading.
// The order is clockwise so that turning right is +1.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// Vector returns the one-cell movement for this heading.
func (d Direction) Vector() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirRight:
		return Cell{X: 1, Y: 0}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnRight rotates clockwise: Up→Right→Down→Left→Up.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// TurnLeft rotates counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// Facing returns the 1-based facing code fed to controllers (1=Up, 2=Right, 3=Down, 4=Left).
func (d Direction) Facing() int {
	return int(d) + 1
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Command is a source of direction changes, consumed once per step.
type Command interface {
	// Steer returns the heading to use given the current one.
	Steer(current Direction) Direction
}

// Absolute requests a specific heading.
// A request for the exact reverse of the current heading is ignored.
type Absolute struct {
	Dir Direction
}

// Steer implements Command.
func (a Absolute) Steer(current Direction) Direction {
	if !a.Dir.Valid() || a.Dir == current.Opposite() {
		return current
	}
	return a.Dir
}

// Turn is a relative heading change. Reversal cannot be expressed.
type Turn int

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
)

// Steer implements Command.
func (t Turn) Steer(current Direction) Direction {
	switch t {
	case TurnLeft:
		return current.TurnLeft()
	case TurnRight:
		return current.TurnRight()
	default:
		return current
	}
}

// Decision is the output of a controller. Left is applied before Right,
// so a decision with both set leaves the heading unchanged.
type Decision struct {
	Left  bool
	Right bool
}

// Steer implements Command.
func (d Decision) Steer(current Direction) Direction {
	if d.Left {
		current = current.TurnLeft()
	}
	if d.Right {
		current = current.TurnRight()
	}
	return current
}
