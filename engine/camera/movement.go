package camera

// Movement is a direction the camera can translate in, relative to its own basis.
type Movement int

const (
	// MovementForward moves along +front.
	MovementForward Movement = iota
	// MovementBackward moves along -front.
	MovementBackward
	// MovementLeft moves along -right.
	MovementLeft
	// MovementRight moves along +right.
	MovementRight

	movementCount
)

func (m Movement) String() string {
	switch m {
	case MovementForward:
		return "forward"
	case MovementBackward:
		return "backward"
	case MovementLeft:
		return "left"
	case MovementRight:
		return "right"
	default:
		return "unknown"
	}
}
