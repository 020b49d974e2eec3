package menu

type EventKind int

const (
	EventNavigate EventKind = iota
	EventActivate
	EventCancel
)

// Event is one discrete input delivered to the stack.
type Event struct {
	Seq   uint64
	Kind  EventKind
	Delta int
	Axis  Direction
}

// Navigate builds a selection-step event.
func Navigate(seq uint64, delta int, axis Direction) Event {
	return Event{Seq: seq, Kind: EventNavigate, Delta: delta, Axis: axis}
}

func Activate(seq uint64) Event { return Event{Seq: seq, Kind: EventActivate} }

func Cancel(seq uint64) Event { return Event{Seq: seq, Kind: EventCancel} }
