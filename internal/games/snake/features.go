package snake

// Features is the controller input vector:
// head x, head y, head x − food x, head y − food y, length, facing code.
type Features [6]float64

// Features returns the controller input for the current state.
// Without food the distance terms are zero.
func (s *Snake) Features() Features {
	head := s.chain.Head()
	var dx, dy int
	if s.hasFood {
		dx = head.X - s.food.X
		dy = head.Y - s.food.Y
	}
	return Features{
		float64(head.X),
		float64(head.Y),
		float64(dx),
		float64(dy),
		float64(s.chain.Len()),
		float64(s.dir.Facing()),
	}
}

// Controller maps features to a turn decision.
type Controller interface {
	Decide(f Features) Decision
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func(f Features) Decision

// Decide implements Controller.
func (fn ControllerFunc) Decide(f Features) Decision {
	return fn(f)
}

// Greedy heads straight for the food, horizontal distance first.
// It never looks at its own body, so it is a baseline, not a player.
var Greedy = ControllerFunc(func(f Features) Decision {
	dx, dy := f[2], f[3]
	current := Direction(int(f[5]) - 1)

	want := current
	switch {
	case dx > 0:
		want = DirLeft
	case dx < 0:
		want = DirRight
	case dy > 0:
		want = DirUp
	case dy < 0:
		want = DirDown
	}

	switch want {
	case current.TurnLeft():
		return Decision{Left: true}
	case current.TurnRight(), current.Opposite():
		return Decision{Right: true}
	default:
		return Decision{}
	}
})
