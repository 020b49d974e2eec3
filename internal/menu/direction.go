package menu

// Direction is the layout axis a menu navigates along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	Grid
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

// State is a frame's lifecycle position.
type State int

const (
	StateConstructed State = iota
	StateActive
	StatePaused
	StatePopped
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StatePopped:
		return "popped"
	default:
		return "unknown"
	}
}
